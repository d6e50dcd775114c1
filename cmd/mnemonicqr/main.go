// Command mnemonicqr converts a mnemonic between plaintext, SeedQR, and
// Compact SeedQR representations.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	config "github.com/joaozinhom/kern/internal/config/mnemonicqr"
	"github.com/joaozinhom/kern/pkg/mnemonicqr"
	"github.com/joaozinhom/kern/pkg/secret"
)

const configFileName = "config.yaml"

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	logFormat := flag.String("log-format", "text", "log format: text or json")
	in := flag.String("in", "", "input file path")
	out := flag.String("out", "", "output file path")
	toFormat := flag.String("to", "", "output format: compact, seedqr, or plaintext (defaults to config.mnemonic.default_output_format)")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if *logFormat == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, opts)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
	}

	if *in == "" || *out == "" {
		log.Fatal("-in and -out are required")
	}

	configPath, err := defaultConfigPath()
	if err != nil {
		log.Fatalf("resolve config path failed: %v", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	target := *toFormat
	if target == "" {
		target = cfg.Mnemonic.DefaultOutputFormat
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("reading %q failed: %v", *in, err)
	}

	words, err := wordsFromInput(data)
	if err != nil {
		log.Fatalf("parsing input failed: %v", err)
	}

	output, err := convertTo(words, target)
	if err != nil {
		log.Fatalf("conversion failed: %v", err)
	}
	defer output.Zeroize()

	if err := os.WriteFile(*out, output.Bytes(), 0o600); err != nil {
		log.Fatalf("writing %q failed: %v", *out, err)
	}
	fmt.Printf("Wrote %s (%d bytes) to %s\n", target, output.Len(), *out)
}

// wordsFromInput detects the input's mnemonic-QR format and returns its
// words.
func wordsFromInput(data []byte) ([]string, error) {
	switch mnemonicqr.DetectFormat(data) {
	case mnemonicqr.FormatCompact:
		return mnemonicqr.CompactToWords(data)
	case mnemonicqr.FormatSeedQR:
		return mnemonicqr.SeedQRToWords(strings.TrimSpace(string(data)))
	case mnemonicqr.FormatPlaintext:
		return mnemonicqr.PlaintextToWords(strings.TrimSpace(string(data)))
	default:
		return nil, fmt.Errorf("unrecognized mnemonic-QR format")
	}
}

// convertTo encodes words into the requested output format, returning
// the result as a secret.Buffer the caller owns and must Zeroize.
func convertTo(words []string, format string) (*secret.Buffer, error) {
	switch format {
	case "compact":
		entropy, err := mnemonicqr.WordsToCompact(words)
		if err != nil {
			return nil, err
		}
		return secret.New(entropy), nil
	case "seedqr":
		digits, err := mnemonicqr.WordsToSeedQR(words)
		if err != nil {
			return nil, err
		}
		return secret.New([]byte(digits)), nil
	case "plaintext":
		return secret.New([]byte(mnemonicqr.WordsToPlaintext(words))), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func defaultConfigPath() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	exeConfigPath := filepath.Join(filepath.Dir(exePath), configFileName)
	if fileExists(exeConfigPath) {
		return exeConfigPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return exeConfigPath, nil
	}
	cwdConfigPath := filepath.Join(cwd, configFileName)
	if fileExists(cwdConfigPath) {
		return cwdConfigPath, nil
	}
	return exeConfigPath, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
