package coin

import "github.com/Klingon-tech/klingwallet/pkg/curve"

// Well-known coin IDs.
const (
	Bitcoin     ID = "bitcoin"
	BitcoinCash ID = "bitcoincash"
	Litecoin    ID = "litecoin"
	Dogecoin    ID = "dogecoin"
	DigiByte    ID = "digibyte"
	Ethereum    ID = "ethereum"
	Solana      ID = "solana"
	NEO         ID = "neo"
)

// Deployed extended-key version bytes. Values match the networks'
// serialization formats (BIP-32 and the SLIP-132 script variants).
var (
	xprv = HDVersion{Private: [4]byte{0x04, 0x88, 0xad, 0xe4}, Public: [4]byte{0x04, 0x88, 0xb2, 0x1e}}
	yprv = HDVersion{Private: [4]byte{0x04, 0x9d, 0x78, 0x78}, Public: [4]byte{0x04, 0x9d, 0x7c, 0xb2}}
	zprv = HDVersion{Private: [4]byte{0x04, 0xb2, 0x43, 0x0c}, Public: [4]byte{0x04, 0xb2, 0x47, 0x46}}
	ltpv = HDVersion{Private: [4]byte{0x01, 0x9d, 0x9c, 0xfe}, Public: [4]byte{0x01, 0x9d, 0xa4, 0x62}}
	mtpv = HDVersion{Private: [4]byte{0x01, 0xb2, 0x67, 0x92}, Public: [4]byte{0x01, 0xb2, 0x6e, 0xf6}}
	dgpv = HDVersion{Private: [4]byte{0x02, 0xfa, 0xc3, 0x98}, Public: [4]byte{0x02, 0xfa, 0xca, 0xfd}}
)

// Default returns a registry covering the coins this library ships vectors
// for. Applications with their own coin set build a Registry directly.
func Default() *Registry {
	r, err := NewRegistry(
		Coin{
			ID: Bitcoin, Name: "Bitcoin", Curve: curve.Secp256k1, SLIP44: 0,
			HDVersions:  []HDVersion{xprv, yprv, zprv},
			P2PKHPrefix: 0x00, P2SHPrefix: 0x05, HRP: "bc",
		},
		Coin{
			ID: BitcoinCash, Name: "Bitcoin Cash", Curve: curve.Secp256k1, SLIP44: 145,
			HDVersions:  []HDVersion{xprv},
			P2PKHPrefix: 0x00, P2SHPrefix: 0x05, HRP: "bitcoincash",
		},
		Coin{
			ID: Litecoin, Name: "Litecoin", Curve: curve.Secp256k1, SLIP44: 2,
			HDVersions:  []HDVersion{ltpv, mtpv},
			P2PKHPrefix: 0x30, P2SHPrefix: 0x32, HRP: "ltc",
		},
		Coin{
			ID: Dogecoin, Name: "Dogecoin", Curve: curve.Secp256k1, SLIP44: 3,
			HDVersions:  []HDVersion{dgpv},
			P2PKHPrefix: 0x1e, P2SHPrefix: 0x16,
		},
		Coin{
			ID: DigiByte, Name: "DigiByte", Curve: curve.Secp256k1, SLIP44: 20,
			HDVersions:  []HDVersion{xprv},
			P2PKHPrefix: 0x1e, P2SHPrefix: 0x3f, HRP: "dgb",
		},
		Coin{
			ID: Ethereum, Name: "Ethereum", Curve: curve.Secp256k1, SLIP44: 60,
			HDVersions: []HDVersion{xprv},
		},
		Coin{
			ID: Solana, Name: "Solana", Curve: curve.Ed25519, SLIP44: 501,
		},
		Coin{
			ID: NEO, Name: "NEO", Curve: curve.Nist256p1, SLIP44: 888,
		},
	)
	if err != nil {
		// The table above is static; a conflict is a programming error.
		panic(err)
	}
	return r
}
