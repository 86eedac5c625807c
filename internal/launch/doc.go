package launch

// Package launch turns app entries into actions and runs them. Each entry is
// resolved once into a tagged Action; the Dispatcher executes actions against
// a Host so process spawning and URL opening can be faked in tests.
