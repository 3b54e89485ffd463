// Package engine implements the rules of a bluffing-and-deduction card game
// in the Coup family: a pure, deterministic state machine that arbitrates
// player actions, claims, blocks, challenges, and forced revelations under
// partial information.
//
// The package is deliberately dependency-free. It exposes InitialState and
// Transition as the only entry points; callers own the returned State value
// and decide whether to persist, copy, or discard it. Nothing here performs
// I/O, spawns goroutines, or reaches outside the process.
package engine
