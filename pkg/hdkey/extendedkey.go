// Package hdkey implements BIP-32 extended keys: the 78-byte Base58Check
// serialization codec and child-key derivation over the supported curve
// families (BIP-32 for secp256k1, SLIP-10 for ed25519).
package hdkey

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/Klingon-tech/klingwallet/pkg/coin"
	"github.com/Klingon-tech/klingwallet/pkg/curve"
)

const (
	// payloadLen is the serialized extended-key body: version(4) depth(1)
	// parent fingerprint(4) child number(4) chain code(32) key(33).
	payloadLen = 78

	// checkedLen is the body plus the 4-byte double-SHA256 checksum.
	checkedLen = payloadLen + 4

	// keyOffset is where the 33-byte key material starts in the payload.
	// For private keys the byte at this offset is reserved and must be 0.
	keyOffset = 45
)

// ExtendedKey is one node of a derivation tree: key material plus the
// chain code and parent linkage needed to derive and serialize children.
// Values are immutable once created; derivation returns new nodes.
type ExtendedKey struct {
	CurveKind curve.Kind
	Version   [4]byte
	Depth     uint8
	ParentFP  [4]byte
	ChildNum  uint32
	ChainCode [32]byte

	key     [32]byte // private scalar (secp256k1) or SLIP-10 key (ed25519)
	pub     [33]byte // serP: compressed point, or 0x00 followed by the edwards point
	private bool
}

// IsPrivate reports whether the node carries private key material.
func (k *ExtendedKey) IsPrivate() bool {
	return k.private
}

// PrivateKeyBytes returns a copy of the 32-byte private key, or nil for a
// public-only node.
func (k *ExtendedKey) PrivateKeyBytes() []byte {
	if !k.private {
		return nil
	}
	out := make([]byte, 32)
	copy(out, k.key[:])
	return out
}

// PublicKeyBytes returns the public key: 33 compressed bytes for
// secp256k1, 32 bytes for ed25519.
func (k *ExtendedKey) PublicKeyBytes() []byte {
	if k.CurveKind == curve.Ed25519 {
		out := make([]byte, 32)
		copy(out, k.pub[1:])
		return out
	}
	out := make([]byte, 33)
	copy(out, k.pub[:])
	return out
}

// Fingerprint returns the first 4 bytes of RIPEMD160(SHA256(serP)).
func (k *ExtendedKey) Fingerprint() [4]byte {
	h := hash160(k.pub[:])
	var fp [4]byte
	copy(fp[:], h[:4])
	return fp
}

// Serialize packs the node under the given version bytes and returns the
// Base58Check form.
func (k *ExtendedKey) Serialize(version [4]byte) string {
	var payload [payloadLen]byte
	copy(payload[0:4], version[:])
	payload[4] = k.Depth
	copy(payload[5:9], k.ParentFP[:])
	binary.BigEndian.PutUint32(payload[9:13], k.ChildNum)
	copy(payload[13:keyOffset], k.ChainCode[:])
	if k.private {
		payload[keyOffset] = 0x00
		copy(payload[keyOffset+1:], k.key[:])
	} else {
		copy(payload[keyOffset:], k.pub[:])
	}

	checked := make([]byte, 0, checkedLen)
	checked = append(checked, payload[:]...)
	sum := doubleSHA256(payload[:])
	checked = append(checked, sum[:4]...)
	return base58.Encode(checked)
}

// Deserialize decodes and validates extended-key text against the curve the
// caller expects for the given coin. Any malformed or semantically invalid
// input yields a nil key and an error; a partial key is never returned, so
// callers may probe arbitrary strings.
func Deserialize(text string, reg *coin.Registry, expected coin.ID) (*ExtendedKey, error) {
	decoded := base58.Decode(text)
	if len(decoded) != checkedLen {
		return nil, fmt.Errorf("%w: decoded length %d, want %d", ErrInvalidFormat, len(decoded), checkedLen)
	}
	payload := decoded[:payloadLen]
	sum := doubleSHA256(payload)
	if !bytes.Equal(sum[:4], decoded[payloadLen:]) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrInvalidFormat)
	}

	var version [4]byte
	copy(version[:], payload[0:4])
	info, ok := reg.LookupVersion(version)
	if !ok {
		return nil, fmt.Errorf("%w: %x", ErrInvalidVersion, version)
	}

	want, ok := reg.Lookup(expected)
	if !ok {
		return nil, fmt.Errorf("%w: coin %q not registered", ErrCurveMismatch, expected)
	}
	// The safety check is curve-level: coins share version bytes (xprv is
	// Bitcoin's, Bitcoin Cash's and DigiByte's alike), but a key must never
	// be accepted for a coin on a different curve.
	if info.Curve != want.Curve {
		return nil, fmt.Errorf("%w: version %x is %s, coin %s wants %s",
			ErrCurveMismatch, version, info.Curve, expected, want.Curve)
	}

	k := &ExtendedKey{
		CurveKind: info.Curve,
		Version:   version,
		Depth:     payload[4],
		ChildNum:  binary.BigEndian.Uint32(payload[9:13]),
		private:   info.Private,
	}
	copy(k.ParentFP[:], payload[5:9])
	copy(k.ChainCode[:], payload[13:keyOffset])

	material := payload[keyOffset : keyOffset+33]
	if info.Private {
		if material[0] != 0x00 {
			return nil, fmt.Errorf("%w: reserved byte is %#02x", ErrInvalidKeyPrefix, material[0])
		}
		copy(k.key[:], material[1:])
		if err := k.computePublic(); err != nil {
			return nil, err
		}
		return k, nil
	}
	if err := validatePublic(info.Curve, material); err != nil {
		return nil, err
	}
	copy(k.pub[:], material)
	return k, nil
}

// computePublic fills k.pub from k.key, validating the private material on
// the way.
func (k *ExtendedKey) computePublic() error {
	switch k.CurveKind {
	case curve.Secp256k1:
		var s secp256k1.ModNScalar
		if overflow := s.SetBytes(&k.key); overflow != 0 || s.IsZero() {
			return fmt.Errorf("%w: scalar out of range", ErrInvalidKeyMaterial)
		}
		priv := secp256k1.NewPrivateKey(&s)
		copy(k.pub[:], priv.PubKey().SerializeCompressed())
		s.Zero()
		return nil
	case curve.Ed25519:
		pub := ed25519.NewKeyFromSeed(k.key[:]).Public().(ed25519.PublicKey)
		k.pub[0] = 0x00
		copy(k.pub[1:], pub)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDerivation, k.CurveKind)
	}
}

// validatePublic checks that 33 bytes of serP material decode to a legal
// point on the curve.
func validatePublic(ck curve.Kind, material []byte) error {
	switch ck {
	case curve.Secp256k1:
		if _, err := secp256k1.ParsePubKey(material); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
		}
		return nil
	case curve.Ed25519:
		if material[0] != 0x00 {
			return fmt.Errorf("%w: nonzero edwards padding byte", ErrInvalidKeyMaterial)
		}
		if _, err := new(edwards25519.Point).SetBytes(material[1:]); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDerivation, ck)
	}
}

func doubleSHA256(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}
