// Package prayertimes computes Islamic prayer times for an observer
// position and a single calendar date using a Meeus low-precision solar
// series, an iterative hour-angle/transit refinement, and a small set of
// high-latitude fallback rules.
//
// The package is a pure, deterministic numerical library: it performs no
// I/O, never blocks, and returns absolute times as milliseconds since the
// POSIX epoch (UTC). Timezone and human-readable formatting are left to
// the caller.
package prayertimes
