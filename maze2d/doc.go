// Package maze2d is a reference domain for the search package: a
// rectangular grid of walkable and blocked cells, adapted from the
// gridgraph package's Conn4/Conn8 neighbor model and from this project's
// original maze_2d.rs problem.
//
// State packs (X, Y) into a single comparable value so the search
// package's arena and state map hash and compare it without an
// indirection. Action is one of eight compass directions; orthogonal
// moves cost 100, diagonal moves cost 141 (the Chebyshev-friendly
// integer approximation of sqrt(2)*100 used throughout this package's
// heuristics).
package maze2d
