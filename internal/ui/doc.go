// Package ui contains the Fyne-based desktop viewer for the merged country
// dataset. It wires buttons and dialogs to the dataset handlers, renders the
// current View in a table, and reports notices and errors through a Notifier.
// All UI strings are localized via Localization.
package ui
