// Package tetris implements the simulation core of a falling-block puzzle
// game: the playing field, the active piece, the 7-bag piece supply and the
// rules for movement, SRS rotation with wall kicks, gravity, lock delay,
// line clearing and scoring.
//
// A Session is single-threaded and owned by one caller. The caller applies
// player commands (Shift, Rotate, SoftDrop, HardDrop, Hold) and calls
// FrameAdvance once per fixed time step, conventionally 60 times a second.
// All timing inside the package is expressed in frames.
//
// Board coordinates are (row, column) with row 0 at the top. Rows 0-19 are
// a hidden buffer above the visible play area, rows 20-39 are visible.
package tetris
