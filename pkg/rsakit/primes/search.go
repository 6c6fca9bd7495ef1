package primes

import (
	"context"
	"math/big"
)

// Next returns the smallest probable prime p >= n, scanning candidates
// linearly and testing each with k Miller-Rabin rounds using the
// process-wide secure randomness source.
func Next(ctx context.Context, n *big.Int, k int) (*big.Int, error) {
	return defaultTester.Next(ctx, n, k)
}

// NextSafe returns the safe prime 2p+1 for the smallest probable
// Sophie-Germain prime p >= n, using the process-wide secure randomness
// source.
func NextSafe(ctx context.Context, n *big.Int, k int) (*big.Int, error) {
	return defaultTester.NextSafe(ctx, n, k)
}

// Next returns the smallest probable prime p >= n. Each candidate is tested
// with k Miller-Rabin rounds (non-positive k selects DefaultConfidence), so
// the result is composite with probability at most (1/4)^k. The scan checks
// ctx between candidates and stops with ctx.Err() on cancellation; there is
// no other bound on its runtime.
func (t *Tester) Next(ctx context.Context, n *big.Int, k int) (*big.Int, error) {
	p := new(big.Int).Set(n)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := t.IsProbablyPrime(p, k)
		if err != nil {
			return nil, err
		}
		if ok {
			return p, nil
		}
		p.Add(p, one)
	}
}

// NextSafe scans for the smallest probable Sophie-Germain prime p >= n and
// returns the corresponding safe prime 2p+1. Sophie-Germain primes are far
// sparser than primes, so this search is substantially slower than Next;
// callers accept proportionally higher latency. Cancellation works as in
// Next.
func (t *Tester) NextSafe(ctx context.Context, n *big.Int, k int) (*big.Int, error) {
	p := new(big.Int).Set(n)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := t.IsSophieGermain(p, k)
		if err != nil {
			return nil, err
		}
		if ok {
			safe := new(big.Int).Lsh(p, 1)
			return safe.Add(safe, one), nil
		}
		p.Add(p, one)
	}
}
