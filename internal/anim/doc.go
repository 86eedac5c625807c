package anim

// Package anim holds explicit animation records and a frame-stepped one-shot
// timer. Nothing here owns a clock: the host event loop calls Step with the
// time elapsed since the previous frame.
