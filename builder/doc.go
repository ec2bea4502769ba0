// Package builder provides deterministic graph-fixture constructors:
// Path and Complete for generic testing, Companion for the A000088
// pair-incidence gadget used to enumerate unlabeled graphs up to
// isomorphism, and AppendBooleanValues to attach the {false, true}
// value vertices spec.md's scenarios repeatedly need.
//
// Grounded on builder/impl_path.go, builder/impl_complete.go's
// constructor shape — deterministic vertex/edge emission order, a
// file-local minimum-size constant, sentinel errors on malformed
// input — trimmed to the handful of constructors this domain needs;
// see DESIGN.md "Dropped teacher modules" for the rest.
package builder
