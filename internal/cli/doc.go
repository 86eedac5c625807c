// Package cli wires the command line flags to the island: it builds the
// logger, the platform adapters and the UI, then runs the Fyne event loop.
package cli
