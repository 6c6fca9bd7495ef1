// Command rsakit generates a textbook RSA key pair and round-trips a message
// through it, printing the keys in hexadecimal. It demonstrates the library;
// it is not a key management tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/big"
	"os"
	"os/signal"
	"time"

	"github.com/primelab/rsakit/pkg/rsakit"
	"github.com/primelab/rsakit/pkg/rsakit/logging"
)

func main() {
	bits := flag.Int("bits", 1024, "modulus bit length")
	exponent := flag.Int64("e", 65537, "public exponent hint")
	safe := flag.Bool("safe", false, "use safe primes (much slower)")
	message := flag.String("message", "attack at dawn", "message to encrypt and decrypt")
	verbose := flag.Bool("v", false, "log search progress to stderr")
	timeout := flag.Duration("timeout", 0, "abort generation after this duration (0 = none)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	opts := rsakit.GenerateOptions{
		Bits:           *bits,
		PublicExponent: big.NewInt(*exponent),
		SafePrimes:     *safe,
	}
	if *verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts.Logger = logging.New(slog.New(handler))
	}

	log.Printf("rsakit %s: generating %d-bit key pair (safe primes: %v)", rsakit.Version, *bits, *safe)
	start := time.Now()
	kp, err := rsakit.Generate(ctx, opts)
	if err != nil {
		log.Fatalf("key generation failed: %v", err)
	}
	log.Printf("generated in %s", time.Since(start).Round(time.Millisecond))

	hex := kp.Hex()
	fmt.Printf("modulus:          %s\n", hex.Modulus)
	fmt.Printf("public exponent:  %s\n", hex.PublicExponent)
	fmt.Printf("private exponent: %s\n", hex.PrivateExponent)

	ciphertext, err := kp.Public().Encrypt(*message)
	if err != nil {
		log.Fatalf("encryption failed: %v", err)
	}
	fmt.Printf("ciphertext:       %s\n", ciphertext)

	plaintext, err := kp.Decrypt(ciphertext)
	if err != nil {
		log.Fatalf("decryption failed: %v", err)
	}
	fmt.Printf("round trip:       %q\n", plaintext)
	if plaintext != *message {
		log.Fatal("round trip mismatch")
	}
}
