package primes

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"

	"github.com/primelab/rsakit/pkg/rsakit/mathx"
)

// DefaultConfidence is the number of Miller-Rabin rounds used when a caller
// passes a non-positive confidence. Twenty rounds bound the false-positive
// probability by (1/4)^20, about 9.1e-13.
const DefaultConfidence = 20

// ErrRandomSource wraps a failure to read from the randomness source.
var ErrRandomSource = errors.New("primes: randomness source failed")

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Tester runs probabilistic primality tests, drawing witnesses from a single
// randomness source.
//
// The zero value is not usable; construct with NewTester. A Tester is safe
// for concurrent use if and only if its randomness source is.
type Tester struct {
	rand io.Reader
}

// NewTester returns a Tester drawing witnesses from r. Passing nil binds the
// tester to crypto/rand.Reader. Supplying a deterministic reader reproduces
// exact witness sequences, which is intended for tests only.
func NewTester(r io.Reader) *Tester {
	if r == nil {
		r = rand.Reader
	}
	return &Tester{rand: r}
}

var defaultTester = NewTester(nil)

// IsProbablyPrime reports whether n passes k independent Miller-Rabin rounds
// using the process-wide secure randomness source. See Tester.IsProbablyPrime.
func IsProbablyPrime(n *big.Int, k int) (bool, error) {
	return defaultTester.IsProbablyPrime(n, k)
}

// IsSophieGermain reports whether both n and 2n+1 pass k Miller-Rabin rounds
// using the process-wide secure randomness source.
func IsSophieGermain(n *big.Int, k int) (bool, error) {
	return defaultTester.IsSophieGermain(n, k)
}

// IsProbablyPrime reports whether n passes k independent Miller-Rabin
// rounds. A false result is certain; a true result is wrong with probability
// at most (1/4)^k. Non-positive k selects DefaultConfidence.
func (t *Tester) IsProbablyPrime(n *big.Int, k int) (bool, error) {
	if k <= 0 {
		k = DefaultConfidence
	}
	if n.Cmp(two) == 0 || n.Cmp(three) == 0 {
		return true, nil
	}
	if n.Cmp(two) < 0 || n.Bit(0) == 0 {
		return false, nil
	}

	// Decompose n-1 = 2^s * q with q odd.
	q := new(big.Int).Sub(n, one)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	for i := 0; i < k; i++ {
		pass, err := t.round(n, q, s)
		if err != nil {
			return false, err
		}
		if !pass {
			return false, nil
		}
	}
	return true, nil
}

// IsSophieGermain reports whether n is a probable Sophie-Germain prime: both
// n and 2n+1 must pass k Miller-Rabin rounds. When it returns true, 2n+1 is
// the corresponding safe prime.
func (t *Tester) IsSophieGermain(n *big.Int, k int) (bool, error) {
	ok, err := t.IsProbablyPrime(n, k)
	if err != nil || !ok {
		return false, err
	}
	safe := new(big.Int).Lsh(n, 1)
	safe.Add(safe, one)
	return t.IsProbablyPrime(safe, k)
}

// round performs a single Miller-Rabin round on odd n >= 5 with
// n-1 = 2^s * q, q odd. It computes the witness sequence r_0 = b^q mod n,
// r_i = r_{i-1}^2 mod n and inspects the first occurrence of 1: the round
// passes when the exponent is zero or the preceding value is n-1, and proves
// n composite otherwise (a nontrivial square root of unity).
func (t *Tester) round(n, q *big.Int, s int) (bool, error) {
	// Witness drawn uniformly from [2, n-2].
	b, err := rand.Int(t.rand, new(big.Int).Sub(n, three))
	if err != nil {
		return false, errors.Join(ErrRandomSource, err)
	}
	b.Add(b, two)

	cur, err := mathx.PowMod(b, q, n)
	if err != nil {
		return false, err
	}
	seq := make([]*big.Int, 0, s+1)
	seq = append(seq, cur)
	for i := 0; i < s; i++ {
		cur = new(big.Int).Mul(cur, cur)
		cur.Mod(cur, n)
		seq = append(seq, cur)
	}

	e := -1
	for i, r := range seq {
		if r.Cmp(one) == 0 {
			e = i
			break
		}
	}
	if e < 0 {
		return false, nil // 1 never appears: composite for certain
	}
	if e == 0 {
		return true, nil
	}
	nMinus1 := new(big.Int).Sub(n, one)
	return seq[e-1].Cmp(nMinus1) == 0, nil
}
