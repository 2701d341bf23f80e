// derive_key.go prints the private and public key for a mnemonic file and
// derivation path.
// Usage: go run scripts/derive_key.go <mnemonicfile> <coin> <path>
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/Klingon-tech/klingwallet/pkg/coin"
	"github.com/Klingon-tech/klingwallet/pkg/path"
	"github.com/Klingon-tech/klingwallet/pkg/wallet"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintln(os.Stderr, "usage: derive_key <mnemonicfile> <coin> <path>")
		os.Exit(1)
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	p, err := path.Parse(os.Args[3])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	w, err := wallet.NewFromMnemonic(strings.TrimSpace(string(data)), "", nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	key, err := w.GetKey(coin.ID(os.Args[2]), p)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("privkey=%s\n", hex.EncodeToString(key.PrivateKeyBytes()))
	fmt.Printf("pubkey=%s\n", hex.EncodeToString(key.PublicKeyBytes()))
}
