// Package pure provides bounded memoization for pure functions.
//
// Memoize assumes referential transparency: the wrapped function must return
// the same output for the same input and must not depend on time, I/O or any
// other ambient state. Under that assumption a function can be treated as a
// lazily filled lookup table.
//
// The table keeps two generations of entries. Once the head generation holds
// maxTableSize entries it becomes the tail, the old tail is dropped, and new
// entries go to a fresh head. Lookups consult the head first, then the tail.
//
// WARNING: Do not Memoize impure functions.
package pure
