// Package matrix is a dense matrix engine generic over any field.Element.
//
// What & Why:
//
//	The cipher multiplies plaintext blocks by a structured key matrix and
//	recovers them by triangular substitution or by relaxation. This package
//	provides exactly that algebra, once, for every element type: the Float32
//	path the cipher runs on and the exact Rat path used to check the algebra.
//
// Semantics:
//
//	Every kernel returns a freshly allocated *Dense; operands are never
//	mutated or aliased. In-place variants (RoundInPlace, ScaleInPlace, Apply)
//	are explicit methods and assume exclusive ownership of the receiver.
//	Shape problems surface as ErrDimensionMismatch, never as silent
//	truncation or padding.
//
// Concurrency:
//
//	Mul splits its work by output row across a bounded worker pool; each task
//	writes only its own row, so the product is deterministic regardless of
//	scheduling.
//
// Complexity:
//
//	At/Set O(1); Row O(c); Col O(r); Clone, Add, Sub, Hadamard, Scale, Round,
//	Transpose, Tril, Triu O(r*c); Mul O(r*n*c); LU and Det O(n^3);
//	substitution O(n^2) per right-hand side; SOR O(iterations*n^2).
package matrix
