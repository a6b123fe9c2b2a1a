// Package ops implements the rank-polymorphic algorithm family over the
// tensor contract: multi-index access with fancy-indexing gather/scatter,
// reductions over arbitrary axis subsets, permutation, nonzero search, and
// scatter-accumulation.
//
// Each operation that benefits from a concrete-rank loop nest draws its
// routine from a package-level rank-specialization cache (package nest),
// one cache per loop-nest template. Traversal is always axis 1 fastest, in
// storage order; fancy-index gather and scatter share that order, so a
// gather/scatter pair with the same specifiers round-trips by construction.
package ops
