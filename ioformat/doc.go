// Package ioformat implements spec.md §6's external interfaces: the
// DIMACS CNF and symmetry-graph input formats, the variable/value/
// prefix declaration records, and the three emission output formats
// (textual, CNF re-emission, incremental cube). The engine itself
// never touches text — ioformat is the sole boundary between bytes
// and the pre-parsed graph.Graph/engine.Assignment structures the rest
// of the module works with.
//
// Grounded on matrix/impl_builder.go's line-oriented parsing style:
// read a record, validate it against the declared shape, fail fast
// with a sentinel error on the first malformed line.
package ioformat
