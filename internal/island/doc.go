package island

// Package island models the launcher pill and its animated controls as plain
// state machines. Rendering code reads VisualState and the Paint* contracts;
// time only moves when the host calls Step.
