package mnemonic

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

// The fixed vector used across the module's tests: a 15-word phrase with a
// known entropy and seed.
const (
	vectorMnemonic   = "ripple scissors kick mammal hire column oak again sun offer wealth tomorrow wagon turn fatal"
	vectorEntropyHex = "ba5821e8c356c05ba5f025d9532fe0f21f65d594"
)

func TestFromEntropy_RoundTrip(t *testing.T) {
	// One entropy per supported length.
	for _, n := range []int{16, 20, 24, 28, 32} {
		entropy := make([]byte, n)
		for i := range entropy {
			entropy[i] = byte(i*7 + n)
		}
		phrase, err := FromEntropy(entropy)
		if err != nil {
			t.Fatalf("FromEntropy(%d bytes) error: %v", n, err)
		}
		decoded, err := ToEntropy(phrase)
		if err != nil {
			t.Fatalf("ToEntropy() error: %v", err)
		}
		if !bytes.Equal(decoded, entropy) {
			t.Errorf("%d bytes: round trip = %x, want %x", n, decoded, entropy)
		}
	}
}

func TestFromEntropy_InvalidLength(t *testing.T) {
	for _, n := range []int{0, 3, 15, 17, 33, 64} {
		if _, err := FromEntropy(make([]byte, n)); !errors.Is(err, ErrInvalidMnemonicData) {
			t.Errorf("FromEntropy(%d bytes) error = %v, want ErrInvalidMnemonicData", n, err)
		}
	}
}

func TestGenerate(t *testing.T) {
	phrase, entropy, err := Generate(128)
	if err != nil {
		t.Fatalf("Generate(128) error: %v", err)
	}
	if len(entropy) != 16 {
		t.Errorf("entropy length = %d, want 16", len(entropy))
	}
	if !IsValid(phrase) {
		t.Error("generated phrase should be valid")
	}
	decoded, err := ToEntropy(phrase)
	if err != nil {
		t.Fatalf("ToEntropy() error: %v", err)
	}
	if !bytes.Equal(decoded, entropy) {
		t.Error("generated phrase should decode to its entropy")
	}
}

func TestGenerate_InvalidStrength(t *testing.T) {
	for _, bits := range []int{0, 64, 129, 130, 512} {
		if _, _, err := Generate(bits); !errors.Is(err, ErrInvalidStrength) {
			t.Errorf("Generate(%d) error = %v, want ErrInvalidStrength", bits, err)
		}
	}
}

func TestToEntropy_Vector(t *testing.T) {
	entropy, err := ToEntropy(vectorMnemonic)
	if err != nil {
		t.Fatalf("ToEntropy() error: %v", err)
	}
	if got := hex.EncodeToString(entropy); got != vectorEntropyHex {
		t.Errorf("entropy = %s, want %s", got, vectorEntropyHex)
	}
}

func TestToEntropy_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
	}{
		{"empty", ""},
		{"garbage", "THIS IS AN INVALID MNEMONIC"},
		{"bad word count", "ripple scissors kick"},
		{"bad checksum", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"},
		// A valid Spanish-wordlist phrase must not fuzzy-match English.
		{"spanish wordlist", "llanto radical atraer riesgo actuar masa fondo cielo dieta archivo sonrisa mamut"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ToEntropy(tt.phrase); !errors.Is(err, ErrInvalidMnemonic) {
				t.Errorf("ToEntropy(%q) error = %v, want ErrInvalidMnemonic", tt.phrase, err)
			}
			if IsValid(tt.phrase) {
				t.Errorf("IsValid(%q) = true, want false", tt.phrase)
			}
		})
	}
}

// IsValid and ToEntropy must agree on every input.
func TestIsValid_MatchesToEntropy(t *testing.T) {
	phrases := []string{
		vectorMnemonic,
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		"name dash bleak force moral disease shine response menu rescue more will",
		"",
		"not a mnemonic at all",
		"llanto radical atraer riesgo actuar masa fondo cielo dieta archivo sonrisa mamut",
	}
	for _, phrase := range phrases {
		_, err := ToEntropy(phrase)
		if got, want := IsValid(phrase), err == nil; got != want {
			t.Errorf("IsValid(%q) = %v, ToEntropy error = %v", phrase, got, err)
		}
	}
}

func TestSeed(t *testing.T) {
	tests := []struct {
		name       string
		passphrase string
		wantHex    string
	}{
		{
			"with passphrase", "passphrase",
			"143cd5fc27ae46eb423efebc41610473f5e24a80f2ca2e2fa7bf167e537f58f4c68310ae487fce82e25bad29bab2530cf77fd724a5ebfc05a45872773d7ee2d6",
		},
		{
			// The passphrase is a true salt: empty gives a different seed.
			"empty passphrase", "",
			"354c22aedb9a37407adc61f657a6f00d10ed125efa360215f36c6919abd94d6dbc193a5f9c495e21ee74118661e327e84a5f5f11fa373ec33b80897d4697557d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := Seed(vectorMnemonic, tt.passphrase)
			if len(seed) != SeedSize {
				t.Fatalf("seed length = %d, want %d", len(seed), SeedSize)
			}
			if got := hex.EncodeToString(seed); got != tt.wantHex {
				t.Errorf("seed = %s, want %s", got, tt.wantHex)
			}
		})
	}
}

func TestSeed_Deterministic(t *testing.T) {
	a := Seed(vectorMnemonic, "x")
	b := Seed(vectorMnemonic, "x")
	if !bytes.Equal(a, b) {
		t.Error("same (mnemonic, passphrase) should yield the same seed")
	}
}
