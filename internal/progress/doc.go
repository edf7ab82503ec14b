// Package progress persists per-set review state: the SRS progress map
// (translation → WordProgress) and the unknown-word queue. Both are
// keyed by (dictionary name, original set index) so that state survives
// re-chunking and re-import of the same dictionary. Malformed persisted
// values are recovered locally as empty state and logged, never
// propagated to the user.
package progress
