// Package curve declares the elliptic-curve families HD keys can belong to.
package curve

import "fmt"

// Kind identifies an elliptic-curve family. It is a closed set: the
// derivation engine dispatches exhaustively on it, so adding a family
// means touching every switch that consumes it.
type Kind uint8

const (
	// Secp256k1 is the Bitcoin/Ethereum curve family.
	Secp256k1 Kind = iota

	// Ed25519 is the edwards-family curve used by Solana and others.
	// Only hardened derivation is defined for it (SLIP-10).
	Ed25519

	// Nist256p1 is the NIST P-256 family (NEO, Ontology). Declared so the
	// coin registry can name it; derivation is not implemented yet.
	Nist256p1
)

// String returns the conventional lowercase name of the curve family.
func (k Kind) String() string {
	switch k {
	case Secp256k1:
		return "secp256k1"
	case Ed25519:
		return "ed25519"
	case Nist256p1:
		return "nist256p1"
	default:
		return fmt.Sprintf("curve(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the declared curve families.
func (k Kind) Valid() bool {
	return k <= Nist256p1
}
