// Package amoskeag implements a purely functional, sandboxed expression
// language for embedding business rules, templates, and spreadsheet-style
// formulas inside a host application.
//
// A host calls Compile once with a source string and the set of symbol
// literals it permits; Compile runs the lexer, parser, and validator and
// returns an immutable Program. The host then calls Program.Evaluate any
// number of times against JSON-shaped data to produce a Value. Evaluation
// is deterministic and side-effect-free: there is no I/O, no mutable
// state, no user-defined functions, and no way for evaluated source to
// escape the evaluator.
//
// This package is a library only. It exposes no command-line front end,
// host-language FFI wrapper, or build tooling; those are thin consumers
// of the Program and Value types defined here.
package amoskeag
