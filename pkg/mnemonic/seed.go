package mnemonic

import "github.com/tyler-smith/go-bip39"

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

// Seed stretches a mnemonic and passphrase into a 64-byte seed using
// PBKDF2-SHA512 with 2048 iterations and salt "mnemonic"+passphrase, as
// specified in BIP-39. Deterministic; any string input is accepted, so
// validate the mnemonic first.
func Seed(mnemonic, passphrase string) []byte {
	return bip39.NewSeed(mnemonic, passphrase)
}
