package logger

// Package logger builds the zap logger shared by every component.
