// Command lucipher generates matrix cipher keys and encrypts or decrypts
// .txt and 16-bit .wav files with them.
//
//	lucipher [-log-level LEVEL] genkey  -key PATH -n SIZE [-integer] [-seed HEX]
//	lucipher [-log-level LEVEL] encrypt -key PATH -file PATH
//	lucipher [-log-level LEVEL] decrypt -key PATH -file PATH [-method direct|iterative] [-iterations N] [-omega W]
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/lucipher/carrier"
	"github.com/katalvlaran/lucipher/cipher"
	"github.com/katalvlaran/lucipher/entropy"
	"github.com/katalvlaran/lucipher/field"
	"github.com/katalvlaran/lucipher/keyfile"
)

const (
	appName = "lucipher"
	version = "0.1.0"

	// maxDumpDim bounds the key size dumped at debug level.
	maxDumpDim = 30
)

var log = logging.Logger("lucipher")

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one CLI invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet(appName, flag.ContinueOnError)
	global.SetOutput(stderr)
	level := global.String("log-level", "warn", "log level: debug, info, warn, error")
	global.Usage = func() { printUsage(stderr) }
	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	lvl, err := logging.LevelFromString(*level)
	if err != nil {
		fmt.Fprintf(stderr, "%s: invalid -log-level %q\n", appName, *level)
		return 1
	}
	logging.SetAllLoggers(lvl)

	rest := global.Args()
	if len(rest) == 0 {
		printUsage(stderr)
		return 1
	}

	switch rest[0] {
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	case "version":
		fmt.Fprintf(stdout, "%s version %s\n", appName, version)
		return 0
	case "genkey":
		err = genKey(rest[1:], stdout, stderr)
	case "encrypt":
		err = encrypt(rest[1:], stdout, stderr)
	case "decrypt":
		err = decrypt(rest[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", rest[0])
		printUsage(stderr)
		return 1
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		// The flag set already reported the problem.
		return 1
	default:
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `%s - matrix block cipher for text and 16-bit WAV files

USAGE:
    %s [-log-level LEVEL] <COMMAND> [OPTIONS]

COMMANDS:
    genkey      Generate a key file
    encrypt     Encrypt a .txt or .wav file into <name>-encrypted.<ext>
    decrypt     Decrypt a file into <name>-decrypted.<ext>
    version     Show version information
    help        Show this help message

EXAMPLES:
    %s genkey -key key.bin -n 16
    %s encrypt -key key.bin -file notes.txt
    %s decrypt -key key.bin -file notes-encrypted.txt -method iterative -iterations 200
`, appName, appName, appName, appName, appName)
}

// parse runs fs over args and maps flag errors onto errUsage.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}

	return nil
}

// required reports a missing string flag through the flag set's output.
func required(fs *flag.FlagSet, name, value string) error {
	if value == "" {
		fmt.Fprintf(fs.Output(), "missing required flag -%s\n", name)
		fs.Usage()
		return errUsage
	}

	return nil
}

func genKey(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("genkey", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("key", "", "output key file")
	n := fs.Int("n", 0, "block (chunk) size, >= 1")
	integer := fs.Bool("integer", false, "generate an integer-mode key")
	seed := fs.String("seed", "", "hex seed for a reproducible key (default: system entropy)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required(fs, "key", *path); err != nil {
		return err
	}

	opts := []cipher.Option{}
	if *integer {
		opts = append(opts, cipher.WithIntegerMode())
	}
	if *seed != "" {
		raw, err := hex.DecodeString(*seed)
		if err != nil {
			return fmt.Errorf("-seed: %w", err)
		}
		opts = append(opts, cipher.WithRand(entropy.Seeded(raw)))
	}

	key, err := cipher.GenerateKey(field.F32, *n, opts...)
	if err != nil {
		return err
	}
	if key.Dim() <= maxDumpDim {
		log.Debugf("key:\n%s", key.Raw())
		log.Debugf("K = L·U:\n%s", key.Product())
	}
	if err = keyfile.Store(*path, key.Raw()); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s %dx%d key to %s\n", key.Kind(), key.Dim(), key.Dim(), *path)

	return nil
}

// loadKey reads and classifies a key file.
func loadKey(path string) (*carrier.Key, error) {
	raw, err := keyfile.Load(path)
	if err != nil {
		return nil, err
	}

	return cipher.NewKey(raw)
}

func encrypt(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("encrypt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	keyPath := fs.String("key", "", "key file")
	file := fs.String("file", "", "input .txt or .wav file")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required(fs, "key", *keyPath); err != nil {
		return err
	}
	if err := required(fs, "file", *file); err != nil {
		return err
	}

	key, err := loadKey(*keyPath)
	if err != nil {
		return err
	}
	out, err := carrier.EncryptFile(key, *file)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, out)

	return nil
}

func decrypt(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("decrypt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	keyPath := fs.String("key", "", "key file")
	file := fs.String("file", "", "encrypted .txt or .wav file")
	method := fs.String("method", "direct", "decryption method: direct or iterative")
	iterations := fs.Int("iterations", cipher.DefaultIterations, "SOR sweeps (iterative only)")
	omega := fs.Float64("omega", cipher.DefaultOmega, "SOR relaxation factor in (0, 2) (iterative only)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required(fs, "key", *keyPath); err != nil {
		return err
	}
	if err := required(fs, "file", *file); err != nil {
		return err
	}

	var m carrier.Method
	switch *method {
	case "direct":
		m = carrier.Direct
	case "iterative":
		if *iterations < 0 {
			return fmt.Errorf("-iterations must be >= 0, got %d", *iterations)
		}
		if !(*omega > 0 && *omega < 2) {
			return fmt.Errorf("-omega must be in (0, 2), got %g", *omega)
		}
		m = carrier.Iterative(*iterations, *omega)
	default:
		return fmt.Errorf("-method must be direct or iterative, got %q", *method)
	}

	key, err := loadKey(*keyPath)
	if err != nil {
		return err
	}
	out, err := carrier.DecryptFile(key, *file, m)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, out)

	return nil
}
