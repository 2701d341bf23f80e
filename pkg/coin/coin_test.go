package coin

import (
	"testing"

	"github.com/Klingon-tech/klingwallet/pkg/curve"
)

func TestDefault_Lookup(t *testing.T) {
	reg := Default()

	tests := []struct {
		id     ID
		curve  curve.Kind
		slip44 uint32
	}{
		{Bitcoin, curve.Secp256k1, 0},
		{BitcoinCash, curve.Secp256k1, 145},
		{Litecoin, curve.Secp256k1, 2},
		{Dogecoin, curve.Secp256k1, 3},
		{DigiByte, curve.Secp256k1, 20},
		{Ethereum, curve.Secp256k1, 60},
		{Solana, curve.Ed25519, 501},
		{NEO, curve.Nist256p1, 888},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			c, ok := reg.Lookup(tt.id)
			if !ok {
				t.Fatalf("Lookup(%s) not found", tt.id)
			}
			if c.Curve != tt.curve {
				t.Errorf("curve = %s, want %s", c.Curve, tt.curve)
			}
			if c.SLIP44 != tt.slip44 {
				t.Errorf("slip44 = %d, want %d", c.SLIP44, tt.slip44)
			}
		})
	}

	if _, ok := reg.Lookup("unobtainium"); ok {
		t.Error("Lookup of unregistered coin should fail")
	}
}

func TestDefault_LookupVersion(t *testing.T) {
	reg := Default()

	tests := []struct {
		name    string
		version [4]byte
		private bool
	}{
		{"xprv", [4]byte{0x04, 0x88, 0xad, 0xe4}, true},
		{"xpub", [4]byte{0x04, 0x88, 0xb2, 0x1e}, false},
		{"zprv", [4]byte{0x04, 0xb2, 0x43, 0x0c}, true},
		{"Mtpv", [4]byte{0x01, 0xb2, 0x67, 0x92}, true},
		{"dgpv", [4]byte{0x02, 0xfa, 0xc3, 0x98}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := reg.LookupVersion(tt.version)
			if !ok {
				t.Fatalf("LookupVersion(%x) not found", tt.version)
			}
			if info.Curve != curve.Secp256k1 {
				t.Errorf("curve = %s, want secp256k1", info.Curve)
			}
			if info.Private != tt.private {
				t.Errorf("private = %v, want %v", info.Private, tt.private)
			}
		})
	}

	if _, ok := reg.LookupVersion([4]byte{0, 0, 0, 0}); ok {
		t.Error("zero version bytes should not resolve")
	}
	if _, ok := reg.LookupVersion([4]byte{0xde, 0xad, 0xbe, 0xef}); ok {
		t.Error("0xdeadbeef should not resolve")
	}
}

func TestNewRegistry_SharedVersion(t *testing.T) {
	// Two secp256k1 coins may share xprv/xpub.
	_, err := NewRegistry(
		Coin{ID: "a", Curve: curve.Secp256k1, HDVersions: []HDVersion{xprv}},
		Coin{ID: "b", Curve: curve.Secp256k1, HDVersions: []HDVersion{xprv}},
	)
	if err != nil {
		t.Fatalf("shared same-curve version should be allowed: %v", err)
	}
}

func TestNewRegistry_VersionConflict(t *testing.T) {
	_, err := NewRegistry(
		Coin{ID: "a", Curve: curve.Secp256k1, HDVersions: []HDVersion{xprv}},
		Coin{ID: "b", Curve: curve.Ed25519, HDVersions: []HDVersion{xprv}},
	)
	if err == nil {
		t.Fatal("cross-curve version conflict should be a construction error")
	}
}

func TestNewRegistry_DuplicateCoin(t *testing.T) {
	_, err := NewRegistry(
		Coin{ID: "a", Curve: curve.Secp256k1},
		Coin{ID: "a", Curve: curve.Secp256k1},
	)
	if err == nil {
		t.Fatal("duplicate coin id should be a construction error")
	}
}
