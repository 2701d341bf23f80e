// Package path parses and prints BIP-32 derivation paths.
package path

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPath is returned for malformed derivation path strings.
var ErrInvalidPath = errors.New("invalid derivation path")

// HardenedOffset is the index offset marking hardened derivation.
const HardenedOffset uint32 = 0x80000000

// Component is one step of a derivation path: a 31-bit index plus the
// hardened flag.
type Component struct {
	Index    uint32
	Hardened bool
}

// DerivationIndex returns the wire-format child number: the index with the
// high bit set when hardened.
func (c Component) DerivationIndex() uint32 {
	if c.Hardened {
		return c.Index | HardenedOffset
	}
	return c.Index
}

// String formats the component in path notation, apostrophe for hardened.
func (c Component) String() string {
	if c.Hardened {
		return strconv.FormatUint(uint64(c.Index), 10) + "'"
	}
	return strconv.FormatUint(uint64(c.Index), 10)
}

// Path is an ordered sequence of derivation components.
type Path []Component

// Parse reads the conventional slash-delimited notation, e.g.
// "m/44'/60'/0'/0/0". The leading component must be the root marker "m";
// "m" alone is the empty path. Indices are decimal and below 2^31, with a
// trailing apostrophe marking a hardened component.
func Parse(s string) (Path, error) {
	if s == "m" {
		return Path{}, nil
	}
	parts := strings.Split(s, "/")
	if len(parts) < 2 || parts[0] != "m" {
		return nil, fmt.Errorf("%w: %q must start with the root marker m", ErrInvalidPath, s)
	}
	p := make(Path, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := strings.HasSuffix(part, "'")
		if hardened {
			part = strings.TrimSuffix(part, "'")
		}
		idx, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: component %q: %v", ErrInvalidPath, part, err)
		}
		if idx >= uint64(HardenedOffset) {
			return nil, fmt.Errorf("%w: index %d out of range", ErrInvalidPath, idx)
		}
		p = append(p, Component{Index: uint32(idx), Hardened: hardened})
	}
	return p, nil
}

// String is the lossless inverse of Parse.
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('m')
	for _, c := range p {
		b.WriteByte('/')
		b.WriteString(c.String())
	}
	return b.String()
}

// NewBIP44 builds the conventional 5-component BIP-44 path
// m/44'/coinType'/account'/change/address.
func NewBIP44(coinType, account, change, address uint32) Path {
	return Path{
		{Index: 44, Hardened: true},
		{Index: coinType, Hardened: true},
		{Index: account, Hardened: true},
		{Index: change},
		{Index: address},
	}
}
