package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/countries/internal/dataset"
)

// Notifier shows messages to the user
type Notifier interface {
	Info(title, message string)
	Warn(title, message string)
	Error(title string, err error)
}

// dialogNotifier shows modal Fyne dialogs over a window
type dialogNotifier struct {
	window  fyne.Window
	dismiss func() string
}

// NewDialogNotifier returns a Notifier backed by modal dialogs on window
func NewDialogNotifier(window fyne.Window, loc *Localization) Notifier {
	return &dialogNotifier{
		window:  window,
		dismiss: func() string { return loc.GetText(KeyClose) },
	}
}

func (n *dialogNotifier) Info(title, message string) {
	n.show(title, theme.InfoIcon(), message)
}

func (n *dialogNotifier) Warn(title, message string) {
	n.show(title, theme.WarningIcon(), message)
}

func (n *dialogNotifier) Error(title string, err error) {
	n.show(title, theme.ErrorIcon(), err.Error())
}

func (n *dialogNotifier) show(title string, icon fyne.Resource, message string) {
	content := container.NewBorder(nil, nil, widget.NewIcon(icon), nil, widget.NewLabel(message))
	dialog.ShowCustom(title, n.dismiss(), content, n.window)
}

// noticeText returns the localized title and message for a notice
func noticeText(loc *Localization, n *dataset.Notice) (title, message string) {
	switch n.Code {
	case dataset.NoticeNoData:
		return loc.GetText(KeyNotice), loc.GetText(KeyNoData)
	case dataset.NoticeNoSearchMatches:
		return loc.GetText(KeySearch), loc.Format(KeyNoSearchMatches, n.Query)
	case dataset.NoticeNoFilterMatches:
		return loc.GetText(KeyFilterTitle), loc.GetText(KeyNoFilterMatches)
	case dataset.NoticeNoStats:
		return loc.GetText(KeyStatsTitle), loc.GetText(KeyNoStats)
	case dataset.NoticeNoSortColumn:
		return loc.GetText(KeyWarning), loc.GetText(KeyNoSortColumn)
	default:
		return loc.GetText(KeyNotice), ""
	}
}

// errorTitle picks the dialog title for a handler error
func errorTitle(loc *Localization, err error) string {
	switch {
	case errors.Is(err, dataset.ErrInvalidNumber), errors.Is(err, dataset.ErrInvalidExpression):
		return loc.GetText(KeyInputError)
	case errors.Is(err, dataset.ErrDataFileNotFound):
		return loc.GetText(KeyError)
	default:
		return loc.GetText(KeyDataError)
	}
}

// errorForUser adds a localized hint in front of input errors
func errorForUser(loc *Localization, err error) error {
	if errors.Is(err, dataset.ErrInvalidNumber) {
		return errors.New(loc.GetText(KeyInvalidNumber) + "\n" + err.Error())
	}
	return err
}
