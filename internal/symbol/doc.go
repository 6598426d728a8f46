// Package symbol provides an exact symbolic expression kernel.
//
// Expressions are immutable trees built from a small set of node types:
//
//   - [Num]: exact rational constant (math/big.Rat)
//   - [Sym]: named symbolic variable
//   - [Add], [Mul], [Pow]: arithmetic combinations
//   - [Fn]: elementary functions (sin, cos)
//
// Every public constructor returns a simplified expression with a
// deterministic term ordering, so two expressions that are algebraically
// identical compare equal with [Expr.Equal] and print identically.
//
// [Sympify] is the coercion entry point: it converts Go numerics, strings,
// and existing expressions into the Expr representation, and is what the
// mechanics layer uses to validate assigned scalars.
package symbol
