// Package tensor defines the generic tensor contract and the operations
// derived purely from it.
//
// A Tensor[T] is anything that can report its shape, get and set elements
// by 1-based linear index, and allocate a similar tensor. Everything else —
// copying, filling, reshaping, iteration, and the whole elementwise
// operator family — is built once against that capability set and works
// uniformly over any conforming type of any rank, dense buffers and
// sub-views alike.
//
// The linear order is column-major with axis 1 fastest; see package shape
// for the index algebra this implies.
package tensor
