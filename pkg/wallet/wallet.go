// Package wallet is the HD wallet facade: it owns one (entropy, mnemonic,
// passphrase, seed) tuple and derives coin keys on demand.
package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingwallet/pkg/coin"
	"github.com/Klingon-tech/klingwallet/pkg/curve"
	"github.com/Klingon-tech/klingwallet/pkg/hdkey"
	"github.com/Klingon-tech/klingwallet/pkg/mnemonic"
	"github.com/Klingon-tech/klingwallet/pkg/path"
)

// accountDepth is the tree depth of a BIP-44 account node
// (m/purpose'/coin'/account'). Serialized extended keys handed to
// PrivateKeyFromExtended are expected at this level.
const accountDepth = 3

// Wallet is immutable after construction. All derivation is a pure
// function of the fixed seed, so concurrent use needs no locking; derived
// keys are recomputed per call, never cached.
type Wallet struct {
	mnemonic   string
	passphrase string
	entropy    []byte
	seed       []byte
	registry   *coin.Registry
}

// NewFromStrength constructs a wallet with fresh random entropy of the
// given bit strength (128-256 in steps of 32).
func NewFromStrength(strengthBits int, passphrase string, reg *coin.Registry) (*Wallet, error) {
	phrase, entropy, err := mnemonic.Generate(strengthBits)
	if err != nil {
		return nil, err
	}
	return build(phrase, passphrase, entropy, reg), nil
}

// NewFromMnemonic constructs a wallet from an existing phrase, validating
// word count, wordlist membership and checksum first.
func NewFromMnemonic(phrase, passphrase string, reg *coin.Registry) (*Wallet, error) {
	entropy, err := mnemonic.ToEntropy(phrase)
	if err != nil {
		return nil, err
	}
	return build(phrase, passphrase, entropy, reg), nil
}

// NewFromEntropy constructs a wallet from raw entropy, re-encoding it to a
// mnemonic. Round trip is byte-identical: Entropy() returns the input.
func NewFromEntropy(entropy []byte, passphrase string, reg *coin.Registry) (*Wallet, error) {
	phrase, err := mnemonic.FromEntropy(entropy)
	if err != nil {
		return nil, err
	}
	own := make([]byte, len(entropy))
	copy(own, entropy)
	return build(phrase, passphrase, own, reg), nil
}

func build(phrase, passphrase string, entropy []byte, reg *coin.Registry) *Wallet {
	if reg == nil {
		reg = coin.Default()
	}
	return &Wallet{
		mnemonic:   phrase,
		passphrase: passphrase,
		entropy:    entropy,
		seed:       mnemonic.Seed(phrase, passphrase),
		registry:   reg,
	}
}

// Mnemonic returns the wallet's phrase.
func (w *Wallet) Mnemonic() string { return w.mnemonic }

// Passphrase returns the seed-salting passphrase.
func (w *Wallet) Passphrase() string { return w.passphrase }

// Entropy returns a copy of the wallet's entropy.
func (w *Wallet) Entropy() []byte {
	out := make([]byte, len(w.entropy))
	copy(out, w.entropy)
	return out
}

// Seed returns a copy of the 64-byte seed.
func (w *Wallet) Seed() []byte {
	out := make([]byte, len(w.seed))
	copy(out, w.seed)
	return out
}

// GetKey derives the key for a coin along the given path, starting from
// the wallet seed on the coin's curve. Deterministic: same arguments, same
// key, every call.
func (w *Wallet) GetKey(id coin.ID, p path.Path) (*hdkey.ExtendedKey, error) {
	c, ok := w.registry.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("coin %q not registered", id)
	}
	master, err := hdkey.NewMaster(w.seed, c.Curve)
	if err != nil {
		return nil, fmt.Errorf("master key for %s: %w", id, err)
	}
	return master.DerivePath(p)
}

// GetKeyForCoin derives the coin's conventional first address key,
// m/44'/slip44'/0'/0/0 (hardened throughout for ed25519-family coins,
// which define no non-hardened steps).
func (w *Wallet) GetKeyForCoin(id coin.ID) (*hdkey.ExtendedKey, error) {
	c, ok := w.registry.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("coin %q not registered", id)
	}
	p := path.NewBIP44(c.SLIP44, 0, 0, 0)
	if c.Curve == curve.Ed25519 {
		// No non-hardened steps on ed25519; the convention stops at the
		// hardened account (m/44'/coin'/0').
		p = p[:3]
	}
	return w.GetKey(id, p)
}

// PrivateKeyFromExtended decodes serialized extended-key text for the
// expected coin and walks the remaining path components. The key is
// treated as an account-level node (depth 3), so only the components after
// the account — change and address index — are derived; paths of three or
// fewer components return the decoded key unchanged. Returns (nil, false)
// on any validation or derivation failure: callers probe untrusted strings
// in bulk and must not pay for expected bad input.
func PrivateKeyFromExtended(text string, reg *coin.Registry, id coin.ID, p path.Path) (*hdkey.ExtendedKey, bool) {
	if reg == nil {
		reg = coin.Default()
	}
	key, err := hdkey.Deserialize(text, reg, id)
	if err != nil {
		return nil, false
	}
	if len(p) <= accountDepth {
		return key, true
	}
	for _, c := range p[accountDepth:] {
		key, err = key.Child(c)
		if err != nil {
			return nil, false
		}
	}
	return key, true
}
