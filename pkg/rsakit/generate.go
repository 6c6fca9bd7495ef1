package rsakit

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/primelab/rsakit/pkg/rsakit/logging"
	"github.com/primelab/rsakit/pkg/rsakit/mathx"
	"github.com/primelab/rsakit/pkg/rsakit/primes"
)

// generateConfidence is the Miller-Rabin round count used for every prime
// accepted into a key pair, bounding the per-prime error by (1/4)^32.
const generateConfidence = 32

const (
	defaultBits           = 1024
	defaultPublicExponent = 65537
	minimumBits           = 32
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// GenerateOptions controls key pair generation. The zero value selects a
// 1024-bit modulus, a public exponent starting at 65537, ordinary primes,
// the process-wide secure randomness source, and no logging.
type GenerateOptions struct {
	// Bits is the approximate bit length of the modulus. Each prime factor
	// is drawn at half this size.
	Bits int

	// PublicExponent is the starting hint for the public exponent. When it
	// shares a factor with the Carmichael totient, the generator advances it
	// to the next probable prime and retries, so the exponent in the
	// returned key pair may be larger than the hint.
	PublicExponent *big.Int

	// SafePrimes selects safe primes (2p+1 with p prime) for both factors,
	// keeping p-1 and q-1 hard for Pollard's p-1 method. Safe primes are
	// sparse; expect generation to take much longer.
	SafePrimes bool

	// Rand supplies randomness for prime initializers, Miller-Rabin
	// witnesses and codec filler. Nil selects crypto/rand.Reader. The reader
	// must be safe for concurrent use: the two prime searches run in
	// parallel.
	Rand io.Reader

	// Logger receives search progress. Nil discards everything. Private key
	// material is never logged, only redaction markers and public sizes.
	Logger logging.Logger
}

// Generate creates an RSA key pair.
//
// Two random half-size integers seed linear searches for the probable primes
// p and q (confidence 32 rounds each, error at most (1/4)^32 per prime). A
// pair whose factors sit closer than 2*n^(1/4) is discarded wholesale and
// redrawn, since Fermat's method factors such moduli quickly. The private
// exponent is the inverse of the public exponent modulo lcm(p-1, q-1).
//
// The search continues until it succeeds or ctx is cancelled; for standard
// bit lengths convergence is effectively certain, but no internal timeout is
// imposed. The prime factors are wiped before Generate returns.
func Generate(ctx context.Context, opts GenerateOptions) (*KeyPair, error) {
	bits := opts.Bits
	if bits == 0 {
		bits = defaultBits
	}
	if bits < minimumBits {
		return nil, opError("Generate", errors.New("modulus bit length too small"))
	}
	hint := opts.PublicExponent
	if hint == nil {
		hint = big.NewInt(defaultPublicExponent)
	}
	if hint.Cmp(two) < 0 {
		return nil, opError("Generate", errors.New("public exponent hint must be at least 2"))
	}
	random := opts.Rand
	if random == nil {
		random = rand.Reader
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	tester := primes.NewTester(random)

	halfBits := bits / 2
	drawBits := halfBits
	if opts.SafePrimes {
		// NextSafe returns at least 2*initializer+1, one bit above the
		// draw, so draw a bit short to land near halfBits.
		drawBits = halfBits - 1
	}

	var p, q, n *big.Int
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, opError("Generate", err)
		}

		var err error
		p, q, err = searchFactors(ctx, tester, random, drawBits, opts.SafePrimes)
		if err != nil {
			return nil, opError("Generate", err)
		}
		n = new(big.Int).Mul(p, q)

		if factorsTooClose(p, q, n) {
			log.Debug(ctx, "factors too close, redrawing pair",
				"attempt", attempt, "bits", bits)
			continue
		}
		log.Debug(ctx, "factor pair accepted",
			"attempt", attempt, "modulus_bits", n.BitLen(),
			logging.Redacted("p"), logging.Redacted("q"))
		break
	}

	pMinus1 := new(big.Int).Sub(p, one)
	qMinus1 := new(big.Int).Sub(q, one)
	totient, err := mathx.LCM(pMinus1, qMinus1)
	if err != nil {
		return nil, opError("Generate", err)
	}

	e, d, err := deriveExponents(ctx, tester, hint, totient)
	if err != nil {
		return nil, opError("Generate", err)
	}

	kp := &KeyPair{n: n, e: e, d: d}

	// p and q must not outlive generation.
	ZeroizeBig(p)
	ZeroizeBig(q)
	ZeroizeBig(pMinus1)
	ZeroizeBig(qMinus1)
	ZeroizeBig(totient)

	log.Info(ctx, "key pair generated",
		"modulus_bits", n.BitLen(), "public_exponent", e.String(),
		logging.Redacted("private_exponent"))
	return kp, nil
}

// searchFactors draws two independent random initializers and runs the two
// prime searches concurrently. Both searches use the same randomness source
// for witnesses.
func searchFactors(ctx context.Context, tester *primes.Tester, random io.Reader, drawBits int, safe bool) (*big.Int, *big.Int, error) {
	search := tester.Next
	if safe {
		search = tester.NextSafe
	}

	limit := new(big.Int).Lsh(one, uint(drawBits))
	factors := make([]*big.Int, 2)

	g, gctx := errgroup.WithContext(ctx)
	for i := range factors {
		i := i
		init, err := rand.Int(random, limit)
		if err != nil {
			return nil, nil, err
		}
		g.Go(func() error {
			f, err := search(gctx, init, generateConfidence)
			if err != nil {
				return err
			}
			factors[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return factors[0], factors[1], nil
}

// factorsTooClose reports whether |p-q| < 2*n^(1/4), the gap under which
// Fermat factorization recovers p and q from n in a handful of steps.
func factorsTooClose(p, q, n *big.Int) bool {
	gap := new(big.Int).Sub(p, q)
	gap.Abs(gap)
	bound := new(big.Int).Sqrt(n)
	bound.Sqrt(bound)
	bound.Lsh(bound, 1)
	return gap.Cmp(bound) < 0
}

// deriveExponents finds the first usable public exponent at or after hint
// and its inverse modulo the totient. Hints that share a factor with the
// totient are skipped by advancing to the next probable prime, so the loop
// terminates for any totient with at least one coprime prime below it.
func deriveExponents(ctx context.Context, tester *primes.Tester, hint, totient *big.Int) (e, d *big.Int, err error) {
	e = new(big.Int).Set(hint)
	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		d, err = mathx.ModInverse(e, totient)
		if err == nil {
			return e, d, nil
		}
		if !errors.Is(err, mathx.ErrNotInvertible) {
			return nil, nil, err
		}
		e, err = tester.Next(ctx, new(big.Int).Add(e, one), generateConfidence)
		if err != nil {
			return nil, nil, err
		}
	}
}
