// Package primes provides probabilistic primality testing and prime search
// for RSA key generation.
//
// The tester runs the Miller-Rabin algorithm: each round draws a fresh random
// witness and either proves the candidate composite or passes inconclusively.
// After k passing rounds the candidate is declared probably prime with a
// false-positive probability of at most (1/4)^k; composite verdicts are
// always certain. A compound variant recognizes Sophie-Germain primes, which
// back the safe-prime search used for hardened RSA moduli.
//
// Search loops scan linearly from a starting point and accept a
// context.Context so long-running searches on large bit lengths can be
// cancelled. Safe-prime searches are far sparser than plain prime searches
// and proportionally slower.
package primes
