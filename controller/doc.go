// Package controller holds the partial Mealy machine under construction
// and the per-edge extension-iterator generator that the OR step uses to
// propose new (q', a) candidates for a (q, o) edge.
//
// Controller is not safe for concurrent use — like the rest of this
// module it is only ever touched from a single synchronous search call
// stack — but it does preserve strict insertion order, which the OR
// step's LIFO undo (PopLast) depends on for correctness.
package controller
