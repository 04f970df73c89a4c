package dataset

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// AreaUnit is appended to formatted areas
const AreaUnit = "km²"

// Formatter renders numbers with the grouping and decimal marks of a language.
// Spanish, the default, groups thousands with "." (45.000.000).
type Formatter struct {
	p *message.Printer
}

// NewFormatter returns a formatter for tag
func NewFormatter(tag language.Tag) Formatter {
	return Formatter{p: message.NewPrinter(tag)}
}

// DefaultFormatter formats the way the dataset's source locale does
func DefaultFormatter() Formatter {
	return NewFormatter(language.Spanish)
}

// Int formats v truncated toward zero with thousands grouping
func (f Formatter) Int(v float64) string {
	return f.p.Sprintf("%d", int64(math.Trunc(v)))
}

// Area formats v with two decimals and the area unit
func (f Formatter) Area(v float64) string {
	return f.p.Sprintf("%.2f %s", v, AreaUnit)
}

// Population formats a stored population value; unparsable text is returned as is
func (f Formatter) Population(raw string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw
	}
	return f.Int(v)
}
