// Package mathx implements the integer arithmetic underneath RSA key
// derivation: greatest common divisor, least common multiple, binary modular
// exponentiation, the extended Euclidean algorithm, and modular inverses.
//
// All functions operate on arbitrary-precision math/big integers, never
// mutate their arguments, and run iteratively so adversarially large inputs
// cannot exhaust the call stack.
package mathx
