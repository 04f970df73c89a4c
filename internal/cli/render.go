package cli

import (
	"io"
	"os"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Output never truncates below this width
const minNameWidth = 12

const ellipsis = "…"

// styles used for terminal output; all plain when color is off
type styles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{heading: plain, label: plain, muted: plain, ok: plain, fail: plain}
	}
	return styles{
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:   lipgloss.NewStyle().Bold(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		fail:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// colorEnabled decides whether to style output written to w
func colorEnabled(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(w)
}

// terminalWidth returns the width of w, or 0 when w is not a terminal
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// table lays out rows in aligned columns. Widths count display cells so
// accented and wide characters line up.
type table struct {
	header  []string
	rows    [][]string
	numeric []bool
}

func (t *table) widths() []int {
	w := make([]int, len(t.header))
	for i, h := range t.header {
		w[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > w[i] {
				w[i] = cw
			}
		}
	}
	return w
}

// fit shrinks the first column so a line fits maxWidth. 0 means unlimited.
func fit(widths []int, gap, maxWidth int) []int {
	if maxWidth <= 0 {
		return widths
	}
	total := gap * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	if over := total - maxWidth; over > 0 {
		widths[0] = max(widths[0]-over, minNameWidth)
	}
	return widths
}

func (t *table) render(w io.Writer, st styles, maxWidth int) error {
	const gap = 2
	widths := fit(t.widths(), gap, maxWidth)

	line := func(cells []string, style func(string) string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			cell = runewidth.Truncate(cell, widths[i], ellipsis)
			if i < len(t.numeric) && t.numeric[i] {
				parts[i] = runewidth.FillLeft(cell, widths[i])
			} else {
				parts[i] = runewidth.FillRight(cell, widths[i])
			}
		}
		return style(strings.TrimRight(strings.Join(parts, strings.Repeat(" ", gap)), " "))
	}

	if _, err := io.WriteString(w, line(t.header, st.label.Render)+"\n"); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := io.WriteString(w, line(row, identity)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func identity(s string) string { return s }

// keyValues renders label/value pairs with the values aligned
func keyValues(w io.Writer, st styles, pairs [][2]string) error {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p[0]))
	}
	for _, p := range pairs {
		label := runewidth.FillRight(p[0], width)
		if _, err := io.WriteString(w, st.label.Render(label)+"  "+p[1]+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
