// Package natural provides the numeric domains used to count and index
// discrete spaces.
//
// What:
//
//   - Natural[N] is the narrow capability set every indexing algorithm is
//     written against: +, -, *, /, %, ordering, exact integer square root,
//     shifts and conversion from small literals.
//   - Uint is the fixed-width domain (uint64, wrapping on overflow).
//   - Big is the arbitrary-precision domain (math/big, immutable values).
//   - Shared helpers (Tri, TriRoot, Factorial, Pow2, Product) are written
//     once against Natural and used by both domains.
//
// Why:
//
//   - Small spaces index fastest in machine words; towers such as
//     Homotopy or power sets of pairs overflow 64 bits after a few levels.
//     Writing every algorithm exactly once against Natural keeps both
//     domains in lock-step: the same dimension always yields the same
//     position no matter which domain computed the index.
//
// Exactness:
//
//   - Division floors in both domains.
//   - Sqrt is the exact floor square root in both domains (no float
//     rounding), so triangular-root unranking needs at most one fix-up step.
//   - Big.Sub saturates at zero; Uint.Sub wraps like uint64.
package natural
