package platform

// Package platform contains OS integration: spawning processes, opening URLs
// and protocol handlers, sending media keys, and scanning for installed apps.
