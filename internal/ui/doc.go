package ui

// Package ui contains the Fyne-based user interface of the island. It hosts
// the island state machine in a custom widget, drives its frame clock, builds
// the button row from the document and wires button presses to the launch
// dispatcher. Settings and the app editor run in their own small windows.
// All UI strings are localized via Localization.
