// Command kefenv encrypts and decrypts files through a KEF envelope.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	config "github.com/joaozinhom/kern/internal/config/kefenv"
	"github.com/joaozinhom/kern/pkg/kef"
	"github.com/joaozinhom/kern/pkg/secret"
)

const configFileName = "config.yaml"

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	logFormat := flag.String("log-format", "text", "log format: text or json")
	decrypt := flag.Bool("decrypt", false, "decrypt the input file instead of encrypting it")
	id := flag.String("id", "", "KEF envelope ID (required for encrypt)")
	version := flag.Int("version", -1, "KEF version (defaults to config.kef.default_version)")
	iterations := flag.Int("iterations", -1, "PBKDF2 iterations (defaults to config.kef.default_iterations)")
	in := flag.String("in", "", "input file path")
	out := flag.String("out", "", "output file path")
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
	cfg, err := config.LoadWithMode(configPath, config.ValidationMinimal)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	resolvedVersion := *version
	if resolvedVersion < 0 {
		resolvedVersion = *cfg.KEF.DefaultVersion
	}
	resolvedIterations := *iterations
	if resolvedIterations < 0 {
		resolvedIterations = *cfg.KEF.DefaultIterations
	}

	password, err := readPassword(cfg.Runtime.PasswordFile)
	if err != nil {
		log.Fatalf("reading password failed: %v", err)
	}
	defer password.Zeroize()

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("reading %q failed: %v", *in, err)
	}

	if *decrypt {
		runDecrypt(data, password, *out)
		return
	}

	if *id == "" {
		log.Fatal("-id is required for encrypt")
	}
	runEncrypt(data, []byte(*id), byte(resolvedVersion), uint32(resolvedIterations), password, *out)
}

func runEncrypt(plaintext, id []byte, version uint8, iterations uint32, password *secret.Buffer, outPath string) {
	envelope, err := kef.Encrypt(id, version, password.Bytes(), iterations, plaintext)
	if err != nil {
		log.Fatalf("encrypt failed: %v", err)
	}
	if err := os.WriteFile(outPath, envelope, 0o600); err != nil {
		log.Fatalf("writing %q failed: %v", outPath, err)
	}
	fmt.Printf("Wrote KEF envelope (%d bytes) to %s\n", len(envelope), outPath)
}

func runDecrypt(envelope []byte, password *secret.Buffer, outPath string) {
	plaintext, err := kef.Decrypt(envelope, password.Bytes())
	if err != nil {
		log.Fatalf("decrypt failed: %v", err)
	}
	defer secret.Zero(plaintext)

	if err := os.WriteFile(outPath, plaintext, 0o600); err != nil {
		log.Fatalf("writing %q failed: %v", outPath, err)
	}
	fmt.Printf("Wrote decrypted plaintext (%d bytes) to %s\n", len(plaintext), outPath)
}

// readPassword reads from passwordFile if set, otherwise prompts on the
// terminal with echo disabled via term.ReadPassword.
func readPassword(passwordFile string) (*secret.Buffer, error) {
	if passwordFile != "" {
		content, err := os.ReadFile(passwordFile)
		if err != nil {
			return nil, err
		}
		return secret.New([]byte(strings.TrimRight(string(content), "\r\n"))), nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	buf := secret.New(raw)
	secret.Zero(raw)
	return buf, nil
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
