// klingwallet-cli is a command-line tool for generating mnemonics and
// deriving HD wallet keys.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/Klingon-tech/klingwallet/internal/log"
	"github.com/Klingon-tech/klingwallet/pkg/coin"
	"github.com/Klingon-tech/klingwallet/pkg/hdkey"
	"github.com/Klingon-tech/klingwallet/pkg/path"
	"github.com/Klingon-tech/klingwallet/pkg/wallet"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Parse global flags that appear before the subcommand.
	logLevel := "info"
	jsonLog := false

	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--log-level" && len(args) > 1:
			logLevel = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			logLevel = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--json-log":
			jsonLog = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	log.Init(logLevel, jsonLog)

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	reg := coin.Default()
	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "generate":
		cmdGenerate(cmdArgs, reg)
	case "seed":
		cmdSeed(cmdArgs, reg)
	case "derive":
		cmdDerive(cmdArgs, reg)
	case "inspect":
		cmdInspect(cmdArgs, reg)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: klingwallet-cli [global flags] <command> [flags]

Global flags:
  --log-level <lvl>   debug, info, warn, error (default: info)
  --json-log          Structured JSON log output

Commands:
  generate [--strength <bits>]
                      Generate a fresh mnemonic (128-256 bits, default 128)
  seed --mnemonic-file <f>
                      Print the 64-byte seed for a mnemonic
  derive --coin <id> --path <p> --mnemonic-file <f>
                      Derive the key at a path, e.g. --path "m/44'/0'/0'/0/0"
  inspect --coin <id> <xprv|xpub>
                      Decode and validate a serialized extended key

The passphrase is always prompted for without echo; press enter for none.
Mnemonic files hold the phrase on a single line.
`)
}

func cmdGenerate(args []string, reg *coin.Registry) {
	strength := 128
	for len(args) > 0 {
		switch {
		case args[0] == "--strength" && len(args) > 1:
			fmt.Sscanf(args[1], "%d", &strength)
			args = args[2:]
		default:
			fatal("unknown flag %s", args[0])
		}
	}
	passphrase := promptPassphrase()
	w, err := wallet.NewFromStrength(strength, passphrase, reg)
	if err != nil {
		fatal("%v", err)
	}
	log.CLI.Debug().Int("strength", strength).Msg("generated wallet")
	fmt.Printf("mnemonic: %s\n", w.Mnemonic())
	fmt.Printf("entropy:  %s\n", hex.EncodeToString(w.Entropy()))
}

func cmdSeed(args []string, reg *coin.Registry) {
	phrase := mnemonicFromArgs(&args)
	if len(args) > 0 {
		fatal("unknown flag %s", args[0])
	}
	passphrase := promptPassphrase()
	w, err := wallet.NewFromMnemonic(phrase, passphrase, reg)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("seed: %s\n", hex.EncodeToString(w.Seed()))
}

func cmdDerive(args []string, reg *coin.Registry) {
	var coinID, pathStr, phrase string
	for len(args) > 0 {
		switch {
		case args[0] == "--coin" && len(args) > 1:
			coinID = args[1]
			args = args[2:]
		case args[0] == "--path" && len(args) > 1:
			pathStr = args[1]
			args = args[2:]
		case args[0] == "--mnemonic-file" && len(args) > 1:
			phrase = readMnemonicFile(args[1])
			args = args[2:]
		default:
			fatal("unknown flag %s", args[0])
		}
	}
	if coinID == "" || pathStr == "" || phrase == "" {
		fatal("derive needs --coin, --path and --mnemonic-file")
	}

	p, err := path.Parse(pathStr)
	if err != nil {
		fatal("%v", err)
	}
	passphrase := promptPassphrase()
	w, err := wallet.NewFromMnemonic(phrase, passphrase, reg)
	if err != nil {
		fatal("%v", err)
	}
	key, err := w.GetKey(coin.ID(coinID), p)
	if err != nil {
		fatal("%v", err)
	}
	log.Keys.Debug().Str("coin", coinID).Str("path", p.String()).Msg("derived key")

	fmt.Printf("path:    %s\n", p.String())
	fmt.Printf("private: %s\n", hex.EncodeToString(key.PrivateKeyBytes()))
	fmt.Printf("public:  %s\n", hex.EncodeToString(key.PublicKeyBytes()))
	if c, ok := reg.Lookup(coin.ID(coinID)); ok && len(c.HDVersions) > 0 {
		fmt.Printf("xprv:    %s\n", key.Serialize(c.HDVersions[0].Private))
		fmt.Printf("xpub:    %s\n", key.Neuter().Serialize(c.HDVersions[0].Public))
	}
}

func cmdInspect(args []string, reg *coin.Registry) {
	var coinID, text string
	for len(args) > 0 {
		switch {
		case args[0] == "--coin" && len(args) > 1:
			coinID = args[1]
			args = args[2:]
		case !strings.HasPrefix(args[0], "--"):
			text = args[0]
			args = args[1:]
		default:
			fatal("unknown flag %s", args[0])
		}
	}
	if coinID == "" || text == "" {
		fatal("inspect needs --coin and an extended key")
	}

	key, err := hdkey.Deserialize(text, reg, coin.ID(coinID))
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("curve:       %s\n", key.CurveKind)
	fmt.Printf("private:     %v\n", key.IsPrivate())
	fmt.Printf("depth:       %d\n", key.Depth)
	fmt.Printf("parent fp:   %s\n", hex.EncodeToString(key.ParentFP[:]))
	fmt.Printf("child num:   %d\n", key.ChildNum)
	fmt.Printf("chain code:  %s\n", hex.EncodeToString(key.ChainCode[:]))
	fmt.Printf("public key:  %s\n", hex.EncodeToString(key.PublicKeyBytes()))
}

// mnemonicFromArgs consumes a leading --mnemonic-file flag.
func mnemonicFromArgs(args *[]string) string {
	a := *args
	if len(a) >= 2 && a[0] == "--mnemonic-file" {
		*args = a[2:]
		return readMnemonicFile(a[1])
	}
	fatal("missing --mnemonic-file")
	return ""
}

func readMnemonicFile(name string) string {
	data, err := os.ReadFile(name)
	if err != nil {
		fatal("%v", err)
	}
	return strings.TrimSpace(string(data))
}

func promptPassphrase() string {
	pw, err := readPassword("Passphrase (empty for none): ")
	if err != nil {
		fatal("read passphrase: %v", err)
	}
	return string(pw)
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

func fatal(format string, args ...interface{}) {
	log.CLI.Error().Msg(fmt.Sprintf(format, args...))
	os.Exit(1)
}
