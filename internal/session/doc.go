// Package session implements the review session state machine: building
// the working queue of due words, advancing on know / don't-know
// decisions, the unknown-word training sub-loop, shuffle, cursor undo,
// and completion detection. Decisions are two-phase (apply, then settle)
// so a renderer can interpose an animation delay without the session
// ever racing a stale cursor.
package session
