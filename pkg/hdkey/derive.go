package hdkey

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ripemd160"

	"github.com/Klingon-tech/klingwallet/pkg/curve"
	"github.com/Klingon-tech/klingwallet/pkg/path"
)

// masterHMACKey is the domain-separation string keying the master-key
// digest for each curve family (BIP-32 / SLIP-10).
func masterHMACKey(ck curve.Kind) (string, error) {
	switch ck {
	case curve.Secp256k1:
		return "Bitcoin seed", nil
	case curve.Ed25519:
		return "ed25519 seed", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedDerivation, ck)
	}
}

// NewMaster derives the depth-0 node for the given curve family from a
// seed: HMAC-SHA512 keyed with the curve's domain string, left half key,
// right half chain code.
func NewMaster(seed []byte, ck curve.Kind) (*ExtendedKey, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, fmt.Errorf("seed length %d, want 16-64 bytes", len(seed))
	}
	domain, err := masterHMACKey(ck)
	if err != nil {
		return nil, err
	}
	digest := hmacSHA512([]byte(domain), seed)

	k := &ExtendedKey{CurveKind: ck, private: true}
	copy(k.key[:], digest[:32])
	copy(k.ChainCode[:], digest[32:])

	if ck == curve.Secp256k1 {
		var s secp256k1.ModNScalar
		if overflow := s.SetBytes(&k.key); overflow != 0 || s.IsZero() {
			return nil, fmt.Errorf("%w: master key scalar out of range", ErrInvalidChildKey)
		}
		s.Zero()
	}
	if err := k.computePublic(); err != nil {
		return nil, err
	}
	return k, nil
}

// Child derives one step of the tree. The returned node's version bytes
// carry over from the parent so a re-serialized child stays in the same
// format family.
func (k *ExtendedKey) Child(c path.Component) (*ExtendedKey, error) {
	switch k.CurveKind {
	case curve.Secp256k1:
		return k.childSecp256k1(c)
	case curve.Ed25519:
		return k.childEd25519(c)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDerivation, k.CurveKind)
	}
}

// DerivePath folds Child over each component in order.
func (k *ExtendedKey) DerivePath(p path.Path) (*ExtendedKey, error) {
	node := k
	for _, c := range p {
		child, err := node.Child(c)
		if err != nil {
			return nil, fmt.Errorf("derive %s: %w", c, err)
		}
		node = child
	}
	return node, nil
}

// Neuter returns a public-only copy of the node. Already-public nodes are
// returned as-is.
func (k *ExtendedKey) Neuter() *ExtendedKey {
	if !k.private {
		return k
	}
	pub := *k
	pub.private = false
	pub.key = [32]byte{}
	return &pub
}

func (k *ExtendedKey) childSecp256k1(c path.Component) (*ExtendedKey, error) {
	index := c.DerivationIndex()

	var data [37]byte
	if c.Hardened {
		if !k.private {
			return nil, ErrHardenedFromPublicKey
		}
		// data = 0x00 || ser256(parent key) || ser32(index)
		copy(data[1:33], k.key[:])
	} else {
		// data = serP(parent pub) || ser32(index)
		copy(data[0:33], k.pub[:])
	}
	binary.BigEndian.PutUint32(data[33:], index)

	digest := hmacSHA512(k.ChainCode[:], data[:])

	var il secp256k1.ModNScalar
	if overflow := il.SetByteSlice(digest[:32]); overflow {
		return nil, fmt.Errorf("%w: index %d digest at or beyond curve order", ErrInvalidChildKey, index)
	}

	child := &ExtendedKey{
		CurveKind: curve.Secp256k1,
		Version:   k.Version,
		Depth:     k.Depth + 1,
		ParentFP:  k.Fingerprint(),
		ChildNum:  index,
	}
	copy(child.ChainCode[:], digest[32:])

	if k.private {
		// child = (IL + parent) mod n
		var parent secp256k1.ModNScalar
		parent.SetBytes(&k.key)
		il.Add(&parent)
		parent.Zero()
		if il.IsZero() {
			return nil, fmt.Errorf("%w: index %d derives the zero scalar", ErrInvalidChildKey, index)
		}
		child.private = true
		child.key = il.Bytes()
		il.Zero()
		if err := child.computePublic(); err != nil {
			return nil, err
		}
		return child, nil
	}

	// Public parent: child point = IL*G + parent.
	if il.IsZero() {
		return nil, fmt.Errorf("%w: index %d derives the zero scalar", ErrInvalidChildKey, index)
	}
	parentPub, err := secp256k1.ParsePubKey(k.pub[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}
	var ilPoint, parentPoint, sum secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&il, &ilPoint)
	parentPub.AsJacobian(&parentPoint)
	secp256k1.AddNonConst(&ilPoint, &parentPoint, &sum)
	if sum.Z.IsZero() {
		return nil, fmt.Errorf("%w: index %d derives the point at infinity", ErrInvalidChildKey, index)
	}
	sum.ToAffine()
	copy(child.pub[:], secp256k1.NewPublicKey(&sum.X, &sum.Y).SerializeCompressed())
	return child, nil
}

func (k *ExtendedKey) childEd25519(c path.Component) (*ExtendedKey, error) {
	// SLIP-10 defines only hardened private derivation for ed25519.
	if !c.Hardened {
		return nil, fmt.Errorf("%w: ed25519 has no non-hardened derivation", ErrUnsupportedDerivation)
	}
	if !k.private {
		return nil, ErrHardenedFromPublicKey
	}
	index := c.DerivationIndex()

	var data [37]byte
	copy(data[1:33], k.key[:])
	binary.BigEndian.PutUint32(data[33:], index)

	digest := hmacSHA512(k.ChainCode[:], data[:])

	child := &ExtendedKey{
		CurveKind: curve.Ed25519,
		Version:   k.Version,
		Depth:     k.Depth + 1,
		ParentFP:  k.Fingerprint(),
		ChildNum:  index,
		private:   true,
	}
	copy(child.key[:], digest[:32])
	copy(child.ChainCode[:], digest[32:])

	pub := ed25519.NewKeyFromSeed(child.key[:]).Public().(ed25519.PublicKey)
	child.pub[0] = 0x00
	copy(child.pub[1:], pub)
	return child, nil
}

func hmacSHA512(key, data []byte) [64]byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	var out [64]byte
	copy(out[:], mac.Sum(nil))
	return out
}

func hash160(b []byte) [20]byte {
	sha := sha256.Sum256(b)
	r := ripemd160.New()
	r.Write(sha[:])
	var out [20]byte
	copy(out[:], r.Sum(nil))
	return out
}
