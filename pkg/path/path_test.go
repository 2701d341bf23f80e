package path

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"m", Path{}},
		{"m/0", Path{{Index: 0}}},
		{"m/0'", Path{{Index: 0, Hardened: true}}},
		{"m/44'/60'/0'/0/0", Path{
			{Index: 44, Hardened: true},
			{Index: 60, Hardened: true},
			{Index: 0, Hardened: true},
			{Index: 0},
			{Index: 0},
		}},
		{"m/44'/60'", Path{
			{Index: 44, Hardened: true},
			{Index: 60, Hardened: true},
		}},
		{"m/0'/1/2'/2/1000000000", Path{
			{Index: 0, Hardened: true},
			{Index: 1},
			{Index: 2, Hardened: true},
			{Index: 2},
			{Index: 1000000000},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("component %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"44'/60'",
		"n/44'",
		"m/",
		"m//0",
		"m/x",
		"m/0''",
		"m/-1",
		"m/2147483648", // 2^31, out of the 31-bit range
		"m/4294967296",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if _, err := Parse(in); !errors.Is(err, ErrInvalidPath) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidPath", in, err)
			}
		})
	}
}

func TestString_RoundTrip(t *testing.T) {
	for _, in := range []string{
		"m",
		"m/0",
		"m/44'/60'/0'/0/0",
		"m/44'/501'/0'",
		"m/0'/1/2'/2/1000000000",
	} {
		p, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", in, err)
		}
		if got := p.String(); got != in {
			t.Errorf("round trip %q = %q", in, got)
		}
	}
}

func TestDerivationIndex(t *testing.T) {
	if got := (Component{Index: 44, Hardened: true}).DerivationIndex(); got != 0x8000002c {
		t.Errorf("hardened 44 = %#x, want 0x8000002c", got)
	}
	if got := (Component{Index: 44}).DerivationIndex(); got != 44 {
		t.Errorf("non-hardened 44 = %d, want 44", got)
	}
}

func TestNewBIP44(t *testing.T) {
	p := NewBIP44(60, 1, 0, 7)
	if got, want := p.String(), "m/44'/60'/1'/0/7"; got != want {
		t.Errorf("NewBIP44 = %q, want %q", got, want)
	}
}
