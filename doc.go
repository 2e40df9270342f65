// Package lucipher is a symmetric block cipher whose encryption is a matrix
// product and whose decryption is a linear solve.
//
// 🚀 What is lucipher?
//
//	A small, pure-Go toolkit that brings together:
//		• A numeric field abstraction: float32 for speed, exact rationals for proofs
//		• A generic dense matrix engine with parallel multiply, LU and solvers
//		• Key generation with a unit diagonal, so det(L·U) = 1
//		• Direct (triangular substitution) and iterative (SOR) decryption
//		• A nibble codec and carriers for text files and 16-bit PCM WAV
//
// ⚠️ Not for secrets
//
//	Key space and diffusion are not analyzed. There is no authentication
//	tag and no key derivation. Treat it as a study of invertible linear
//	transforms, not as a confidentiality tool.
//
// Under the hood, everything is organized into subpackages:
//
//	field/     - Element/Field interfaces, Float32 and Rat
//	matrix/    - Dense[E], Mul, Tril/Triu, LU, Det, substitution, SOR
//	entropy/   - explicit random sources (system CSPRNG, SHAKE256 stream)
//	cipher/    - Key, GenerateKey, Encrypt, DecryptDirect, DecryptIterative
//	codec/     - nibbles, block reshape and padding, bit-pattern serialization
//	keyfile/   - big-endian key file layout
//	carrier/   - text and WAV adapters, file naming and dispatch
//	cmd/lucipher - the command line tool
//
// Quick pipeline:
//
//	"te" → 7 4 6 5 → [7 6; 4 5] → K·X → float32 bits → letters a..p
//
// where each column of X is one block of n nibbles and K = tril(K_raw)·triu(K_raw).
//
//	go install github.com/katalvlaran/lucipher/cmd/lucipher@latest
package lucipher
