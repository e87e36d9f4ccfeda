// Package fen encodes a sparse piece placement plus game metadata into a
// Forsyth-Edwards Notation string.
//
// Input squares use row 0 for rank 8 and row 7 for rank 1; columns map to
// files a..h unchanged. Encoding is a pure function: the placement is only
// read, and every call builds its own transient grid.
package fen
