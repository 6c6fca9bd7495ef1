package rsakit

import (
	"math/big"
)

// PublicKey is the public half of an RSA key pair: the modulus n and the
// public exponent e. It is sufficient for encryption.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// KeyPair holds a complete RSA key pair. The prime factors of the modulus
// are never stored; once Generate returns, only n, e and d remain.
//
// A KeyPair is immutable: accessors hand out defensive copies so callers
// cannot corrupt the key through a returned pointer.
type KeyPair struct {
	n *big.Int
	e *big.Int
	d *big.Int
}

// NewKeyPair assembles a KeyPair from its integer components. The values are
// copied, not retained. All three must be positive; no further consistency
// checking is done, so a mismatched triple produces a key pair that fails to
// round-trip rather than an error here.
func NewKeyPair(modulus, publicExponent, privateExponent *big.Int) (*KeyPair, error) {
	if modulus == nil || publicExponent == nil || privateExponent == nil ||
		modulus.Sign() <= 0 || publicExponent.Sign() <= 0 || privateExponent.Sign() <= 0 {
		return nil, opError("NewKeyPair", ErrInvalidKeyPair)
	}
	return &KeyPair{
		n: new(big.Int).Set(modulus),
		e: new(big.Int).Set(publicExponent),
		d: new(big.Int).Set(privateExponent),
	}, nil
}

// Modulus returns a copy of the modulus n.
func (kp *KeyPair) Modulus() *big.Int { return new(big.Int).Set(kp.n) }

// PublicExponent returns a copy of the public exponent e.
func (kp *KeyPair) PublicExponent() *big.Int { return new(big.Int).Set(kp.e) }

// PrivateExponent returns a copy of the private exponent d. Treat the result
// as secret material.
func (kp *KeyPair) PrivateExponent() *big.Int { return new(big.Int).Set(kp.d) }

// Public returns the public half of the key pair.
func (kp *KeyPair) Public() *PublicKey {
	return &PublicKey{N: new(big.Int).Set(kp.n), E: new(big.Int).Set(kp.e)}
}

// HexKeyPair mirrors KeyPair with every integer rendered as a lowercase
// hexadecimal string. The conversion is purely presentational; parse the
// fields with big.Int.SetString(s, 0) to get the integers back.
type HexKeyPair struct {
	Modulus         string
	PublicExponent  string
	PrivateExponent string
}

// Hex renders the key pair for display or serialization by hand.
func (kp *KeyPair) Hex() HexKeyPair {
	return HexKeyPair{
		Modulus:         "0x" + kp.n.Text(16),
		PublicExponent:  "0x" + kp.e.Text(16),
		PrivateExponent: "0x" + kp.d.Text(16),
	}
}
