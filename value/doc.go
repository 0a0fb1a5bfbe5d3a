// Package value holds the two value-level primitives the dispatch engine is
// built on:
//
//   - Equal, the structural equality used everywhere two dispatch conditions
//     are compared
//   - ClassOf / IsPrimitive, the runtime classifier that decides whether a
//     condition can live in the fast dispatch index
//
// Equality is structural, not referential: two independently built slices,
// maps or structs with the same contents are the same condition. Dynamic
// types must agree, so int(1) and float64(1) are different conditions.
package value
