package model

// Package model defines domain data structures shared across the app: launchable
// entries, their kinds, and the island's logical states. Entries have positional
// identity only; nothing in this package assigns them stable keys.
