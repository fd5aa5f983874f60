// Package grid provides two-dimensional containers: a fixed-size dense Grid,
// an unbounded sparse InfiniteGrid addressed by signed coordinates, and View,
// a rectangular window that works the same over either of them.
//
// Views are row-major everywhere: iteration, equality, hashing, copying and
// String all walk y in the outer loop and x in the inner loop.
//
// Contract violations (reading outside a dense grid, writing through a
// read-only view, copying between views of different size) panic with an
// error wrapping one of the sentinels in this package. Bounds checks on the
// hot indexing path only run in builds tagged griddebug.
package grid
