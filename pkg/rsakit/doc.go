// Package rsakit implements the RSA cryptosystem from first principles:
// probabilistic prime generation, modular-inverse key derivation, and a
// minimal string encode/encrypt/decrypt pipeline.
//
// SECURITY WARNING: This is TEXTBOOK RSA, not a hardened implementation!
//
// The message codec pads with a zero terminator and random filler rather
// than OAEP or PKCS#1 v1.5, performs no authentication, and makes no attempt
// at constant-time arithmetic. It exists to make the number theory behind
// RSA inspectable, not to protect production traffic. Use crypto/rsa for
// anything that matters.
//
// Key properties that do hold:
//   - Primes come from Miller-Rabin testing with a per-call confidence
//     parameter k; a "prime" verdict is wrong with probability at most
//     (1/4)^k.
//   - Generated factor pairs satisfy |p-q| >= 2*n^(1/4), rejecting moduli
//     vulnerable to Fermat factorization.
//   - The private exponent is the inverse of the public exponent modulo the
//     Carmichael totient lcm(p-1, q-1).
//   - Optionally, factors are safe primes (2p'+1 with p' prime), keeping
//     p-1 and q-1 free of small smooth structure.
//
// The codec maps one byte per character code point; code points above 255
// are truncated. Because the padded integer carries no fixed width, a
// leading 0x00 byte collapses: an empty message, or one whose first
// character truncates to 0x00, decrypts to the random filler rather than
// round-tripping. These are documented limitations of the scheme, not bugs
// to fix; round trips are only guaranteed for non-empty text whose first
// character is a nonzero Latin-1 code point.
package rsakit
