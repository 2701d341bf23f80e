// Package coin is the registry mapping coins to their curve family,
// SLIP-44 id, extended-key version bytes and address prefixes. The
// derivation core only consumes this mapping; it is built once at startup
// and passed by handle into the codecs that need it.
package coin

import (
	"fmt"

	"github.com/Klingon-tech/klingwallet/pkg/curve"
)

// ID names a registered coin.
type ID string

// HDVersion is one extended-key version pair: the 4-byte prefixes of the
// coin's serialized private and public extended keys.
type HDVersion struct {
	Private [4]byte
	Public  [4]byte
}

// Coin describes one registered blockchain.
type Coin struct {
	ID          ID
	Name        string
	Curve       curve.Kind
	SLIP44      uint32
	HDVersions  []HDVersion
	P2PKHPrefix byte
	P2SHPrefix  byte
	HRP         string
}

// VersionInfo is what a 4-byte extended-key version resolves to.
type VersionInfo struct {
	Coin    ID
	Curve   curve.Kind
	Private bool
}

// Registry is an immutable index of coins and their extended-key versions.
type Registry struct {
	coins    map[ID]Coin
	versions map[[4]byte]VersionInfo
}

// NewRegistry indexes the given coins. Registering the same version bytes
// twice is allowed only when curve and polarity agree (several coins share
// xprv/xpub); a conflict is a construction error.
func NewRegistry(coins ...Coin) (*Registry, error) {
	r := &Registry{
		coins:    make(map[ID]Coin, len(coins)),
		versions: make(map[[4]byte]VersionInfo),
	}
	for _, c := range coins {
		if !c.Curve.Valid() {
			return nil, fmt.Errorf("coin %s: unknown curve %d", c.ID, c.Curve)
		}
		if _, dup := r.coins[c.ID]; dup {
			return nil, fmt.Errorf("coin %s registered twice", c.ID)
		}
		r.coins[c.ID] = c
		for _, v := range c.HDVersions {
			if err := r.addVersion(v.Private, VersionInfo{Coin: c.ID, Curve: c.Curve, Private: true}); err != nil {
				return nil, err
			}
			if err := r.addVersion(v.Public, VersionInfo{Coin: c.ID, Curve: c.Curve, Private: false}); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func (r *Registry) addVersion(v [4]byte, info VersionInfo) error {
	if prev, ok := r.versions[v]; ok {
		if prev.Curve != info.Curve || prev.Private != info.Private {
			return fmt.Errorf("version %x registered for %s conflicts with %s", v, prev.Coin, info.Coin)
		}
		// Shared version (e.g. xprv): first registration wins for the
		// diagnostic coin name.
		return nil
	}
	r.versions[v] = info
	return nil
}

// Lookup returns the coin registered under id.
func (r *Registry) Lookup(id ID) (Coin, bool) {
	c, ok := r.coins[id]
	return c, ok
}

// LookupVersion resolves 4 extended-key version bytes.
func (r *Registry) LookupVersion(v [4]byte) (VersionInfo, bool) {
	info, ok := r.versions[v]
	return info, ok
}
