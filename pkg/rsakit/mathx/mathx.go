package mathx

import (
	"errors"
	"math/big"
)

var (
	// ErrNotInvertible indicates that no modular inverse exists because
	// gcd(a, n) != 1.
	ErrNotInvertible = errors.New("mathx: argument is not invertible modulo n")

	// ErrUndefinedLCM indicates lcm(0, 0), which has no value.
	ErrUndefinedLCM = errors.New("mathx: lcm(0, 0) is undefined")

	// ErrNegativeExponent indicates a negative exponent passed to PowMod.
	ErrNegativeExponent = errors.New("mathx: exponent must be non-negative")

	// ErrNonPositiveModulus indicates a modulus <= 0 passed to PowMod or
	// ModInverse.
	ErrNonPositiveModulus = errors.New("mathx: modulus must be positive")
)

var one = big.NewInt(1)

// GCD returns the greatest common divisor of a and b. GCD(0, 0) is 0.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Mod(x, y)
		x, y = y, x
	}
	return x
}

// LCM returns the least common multiple of a and b. It fails with
// ErrUndefinedLCM when both arguments are zero.
func LCM(a, b *big.Int) (*big.Int, error) {
	g := GCD(a, b)
	if g.Sign() == 0 {
		return nil, ErrUndefinedLCM
	}
	l := new(big.Int).Div(new(big.Int).Abs(a), g)
	l.Mul(l, new(big.Int).Abs(b))
	return l, nil
}

// PowMod returns base^exponent mod modulus using binary square-and-multiply,
// in O(log exponent) modular multiplications. The exponent must be
// non-negative and the modulus positive.
func PowMod(base, exponent, modulus *big.Int) (*big.Int, error) {
	if exponent.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	if modulus.Sign() <= 0 {
		return nil, ErrNonPositiveModulus
	}

	r := new(big.Int).Mod(one, modulus)
	sq := new(big.Int).Mod(base, modulus)
	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) == 1 {
			r.Mul(r, sq)
			r.Mod(r, modulus)
		}
		sq.Mul(sq, sq)
		sq.Mod(sq, modulus)
	}
	return r, nil
}

// ExtendedGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b).
// The loop is iterative so call depth stays constant regardless of input
// size.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	r0, r1 := new(big.Int).Set(a), new(big.Int).Set(b)
	s0, s1 := big.NewInt(1), big.NewInt(0)
	t0, t1 := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r1.Sign() != 0 {
		q.Quo(r0, r1)
		r0.Sub(r0, tmp.Mul(q, r1))
		r0, r1 = r1, r0
		s0.Sub(s0, tmp.Mul(q, s1))
		s0, s1 = s1, s0
		t0.Sub(t0, tmp.Mul(q, t1))
		t0, t1 = t1, t0
	}
	return r0, s0, t0
}

// ModInverse returns the multiplicative inverse of a modulo n, normalized
// into [0, n). It fails with ErrNotInvertible when gcd(a, n) != 1.
func ModInverse(a, n *big.Int) (*big.Int, error) {
	if n.Sign() <= 0 {
		return nil, ErrNonPositiveModulus
	}
	g, x, _ := ExtendedGCD(a, n)
	if g.CmpAbs(one) != 0 {
		return nil, ErrNotInvertible
	}
	// Euclidean Mod already lands in [0, n) for n > 0.
	return x.Mod(x, n), nil
}
