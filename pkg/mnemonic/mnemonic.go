// Package mnemonic implements the BIP-39 codec: entropy to and from
// checksum-validated word phrases, plus seed stretching.
package mnemonic

import (
	"errors"
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

var (
	// ErrInvalidStrength is returned for entropy bit strengths outside
	// {128, 160, 192, 224, 256}.
	ErrInvalidStrength = errors.New("invalid strength")

	// ErrInvalidMnemonic is returned for phrases with a bad word count,
	// words outside the wordlist, or a failing checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidMnemonicData is returned for entropy byte lengths outside
	// {16, 20, 24, 28, 32}.
	ErrInvalidMnemonicData = errors.New("invalid mnemonic data")
)

// validEntropyLen reports whether n bytes is an accepted entropy size
// (128-256 bits in 32-bit increments).
func validEntropyLen(n int) bool {
	return n >= 16 && n <= 32 && n%4 == 0
}

// FromEntropy encodes entropy into its mnemonic phrase. The phrase
// re-decodes to byte-identical entropy.
func FromEntropy(entropy []byte) (string, error) {
	if !validEntropyLen(len(entropy)) {
		return "", fmt.Errorf("%w: %d bytes", ErrInvalidMnemonicData, len(entropy))
	}
	m, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMnemonicData, err)
	}
	return m, nil
}

// Generate draws fresh entropy of the given bit strength from the secure
// random source and encodes it. This is the only operation in the module
// that consumes randomness.
func Generate(strengthBits int) (string, []byte, error) {
	if strengthBits < 128 || strengthBits > 256 || strengthBits%32 != 0 {
		return "", nil, fmt.Errorf("%w: %d bits", ErrInvalidStrength, strengthBits)
	}
	entropy, err := bip39.NewEntropy(strengthBits)
	if err != nil {
		return "", nil, fmt.Errorf("generate entropy: %w", err)
	}
	m, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", nil, fmt.Errorf("encode mnemonic: %w", err)
	}
	return m, entropy, nil
}

// ToEntropy decodes a phrase back to its entropy, validating word count,
// wordlist membership and checksum. Phrases from another language's
// wordlist fail here.
func ToEntropy(mnemonic string) ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	if !validEntropyLen(len(entropy)) {
		return nil, fmt.Errorf("%w: decoded to %d bytes", ErrInvalidMnemonic, len(entropy))
	}
	return entropy, nil
}

// IsValid reports whether a phrase would be accepted by ToEntropy.
func IsValid(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}
