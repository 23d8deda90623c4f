// Package machinae solves button-press machine puzzles: given a machine
// whose buttons each bump a fixed subset of counters (or toggle a fixed
// subset of lights), find the minimum number of presses that drives the
// all-zero state to a target.
//
// 🚀 What is machinae?
//
//	A small, single-purpose library that brings together:
//		• machine — the data model (buttons, counter states, targets)
//		  and a pure parser for the one-machine-per-line input grammar
//		• press   — minimum-press search over counter states: BFS for
//		  unit-cost buttons, Dijkstra as the general reference solver
//		• lights  — minimum-press search over toggle (XOR) states
//		• cmd/machinae — a batch CLI: one input file in, one answer per
//		  machine out, plus a summary total
//
// ✨ Why choose machinae?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – pure value types, no hidden state between solves
//   - Pure Go – no cgo, tiny dependency surface
//   - Extensible – functional options and hooks (OnExpand…) for custom logic
//
// Under the hood, everything is organized under three subpackages:
//
//	machine/ — Machine, Button, State types & the input-line parser
//	press/   — shortest-cost search over counter vectors
//	lights/  — breadth-first search over light bitmasks
//
// Quick ASCII example — one machine per input line:
//
//	(0) (1) (0,1) {2,2}
//
//	three buttons: two touch a single counter, one touches both;
//	the target is counter values [2,2]. Pressing the joint button
//	twice is optimal, so the answer is 2.
//
// Dive into README-less doc.go files per package for contracts,
// complexity notes, and runnable examples.
//
//	go get github.com/machinae/machinae
package machinae
