package rsakit

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"strings"

	"github.com/primelab/rsakit/pkg/rsakit/mathx"
)

// Encrypt encodes plaintext into a padded integer below the modulus and
// raises it to the public exponent.
//
// The encoding takes the low byte of each character's code point (code
// points above 255 are truncated; see the package documentation), appends a
// single zero terminator, and fills the remaining capacity with secure
// random bytes so equal plaintexts encrypt differently. It fails with
// ErrMessageTooLarge when the message leaves no room for the terminator
// below the modulus.
//
// The integer carries no fixed width, so leading zero bytes collapse: a
// message that is empty, or whose first character truncates to 0x00, loses
// its terminator and decrypts to the random filler instead of round-tripping.
// This matches the >255 truncation caveat in the package documentation.
func (pub *PublicKey) Encrypt(plaintext string) (*big.Int, error) {
	return pub.encrypt(rand.Reader, plaintext)
}

func (pub *PublicKey) encrypt(random io.Reader, plaintext string) (*big.Int, error) {
	if pub.N == nil || pub.E == nil || pub.N.Sign() <= 0 {
		return nil, opError("Encrypt", ErrInvalidKeyPair)
	}
	chars := []rune(plaintext)

	// Largest byte count whose big-endian value is guaranteed below n.
	maxBytes := (pub.N.BitLen() - 1) / 8
	if len(chars) >= maxBytes-1 {
		return nil, opError("Encrypt", ErrMessageTooLarge)
	}

	buf := make([]byte, 0, maxBytes)
	defer func() { ZeroizeBytes(buf) }()
	for _, r := range chars {
		buf = append(buf, byte(r))
	}
	buf = append(buf, 0x00)

	filler := make([]byte, maxBytes-len(chars)-2)
	if _, err := io.ReadFull(random, filler); err != nil {
		return nil, opError("Encrypt", err)
	}
	buf = append(buf, filler...)

	m := new(big.Int).SetBytes(buf)
	c, err := mathx.PowMod(m, pub.E, pub.N)
	if err != nil {
		return nil, opError("Encrypt", err)
	}
	return c, nil
}

// Decrypt raises the ciphertext to the private exponent and strips the
// padding: everything before the first zero byte is the message.
//
// A foreign or corrupted ciphertext may decode to bytes with no zero
// terminator at all. That case is not an error: the entire byte string is
// returned as a best-effort result, which the caller cannot distinguish from
// a legitimate message. This ambiguity is inherent to the padding scheme.
func (kp *KeyPair) Decrypt(ciphertext *big.Int) (string, error) {
	if kp.n == nil || kp.d == nil || kp.n.Sign() <= 0 {
		return "", opError("Decrypt", ErrInvalidKeyPair)
	}
	if ciphertext == nil || ciphertext.Sign() < 0 {
		return "", opError("Decrypt", errors.New("ciphertext must be a non-negative integer"))
	}
	m, err := mathx.PowMod(ciphertext, kp.d, kp.n)
	if err != nil {
		return "", opError("Decrypt", err)
	}

	raw := m.Bytes()
	if i := bytes.IndexByte(raw, 0x00); i >= 0 {
		raw = raw[:i]
	}

	var sb strings.Builder
	sb.Grow(len(raw))
	for _, b := range raw {
		sb.WriteRune(rune(b))
	}
	return sb.String(), nil
}
