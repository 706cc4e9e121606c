package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// RootUI renders the single download state handed to it by download.Session
// and turns button presses into download requests. All UI strings are
// localized via Localization.
