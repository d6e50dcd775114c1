// Command bbqrtool splits a file into BBQr QR-part strings, or
// reassembles a set of part strings back into a file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	config "github.com/joaozinhom/kern/internal/config/bbqrtool"
	"github.com/joaozinhom/kern/pkg/bbqr"
)

const configFileName = "config.yaml"

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	logFormat := flag.String("log-format", "text", "log format: text or json")
	reassemble := flag.Bool("reassemble", false, "reassemble parts from -in instead of splitting it")
	in := flag.String("in", "", "input file path (split: file to encode; reassemble: file with one part per line)")
	out := flag.String("out", "", "output file name, relative to config.runtime.output_dir")
	fileType := flag.String("file-type", "", "BBQr file type override (defaults to config.bbqr.default_file_type)")
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

	mode := config.ValidationFull
	if *reassemble {
		mode = config.ValidationReassembleOnly
	}
	cfg, err := config.LoadWithMode(configPath, mode)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := os.MkdirAll(cfg.Runtime.OutputDir, 0o700); err != nil {
		log.Fatalf("creating output dir failed: %v", err)
	}
	outPath := filepath.Join(cfg.Runtime.OutputDir, *out)

	if *reassemble {
		runReassemble(*in, outPath)
		return
	}

	ft := *fileType
	if ft == "" {
		ft = cfg.BBQr.DefaultFileType
	}
	runSplit(*in, outPath, ft, *cfg.BBQr.MaxCharsPerQR)
}

func runSplit(inPath, outPath, fileType string, maxCharsPerQR int) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		log.Fatalf("reading %q failed: %v", inPath, err)
	}

	parts, err := bbqr.Encode(data, bbqr.FileType(fileType[0]), maxCharsPerQR)
	if err != nil {
		log.Fatalf("encode failed: %v", err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("creating %q failed: %v", outPath, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, part := range parts {
		fmt.Fprintln(w, part)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("writing %q failed: %v", outPath, err)
	}
	fmt.Printf("Wrote %d parts to %s\n", len(parts), outPath)
}

func runReassemble(inPath, outPath string) {
	f, err := os.Open(inPath)
	if err != nil {
		log.Fatalf("opening %q failed: %v", inPath, err)
	}
	defer f.Close()

	var parts []bbqr.Part
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		part, err := bbqr.ParsePart(line)
		if err != nil {
			log.Fatalf("parsing part %q failed: %v", line, err)
		}
		parts = append(parts, part)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("reading %q failed: %v", inPath, err)
	}

	enc, _, payload, err := bbqr.Assemble(parts)
	if err != nil {
		log.Fatalf("reassembly failed: %v", err)
	}
	decoded, err := bbqr.DecodePayload(enc, payload)
	if err != nil {
		log.Fatalf("decode failed: %v", err)
	}

	if err := os.WriteFile(outPath, decoded, 0o600); err != nil {
		log.Fatalf("writing %q failed: %v", outPath, err)
	}
	fmt.Printf("Reassembled %d bytes from %d parts to %s\n", len(decoded), len(parts), outPath)
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
