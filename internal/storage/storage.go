package storage

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joaozinhom/kern/pkg/kef"
)

// Location selects which of the two storage backends an operation
// targets.
type Location int

const (
	// Flash stores raw bytes directly, matching SPIFFS's cheap local
	// storage with no encoding overhead.
	Flash Location = iota
	// SD base64-wraps KEF envelopes (plaintext descriptors are left
	// untouched), matching a removable card meant to be readable by
	// other tools.
	SD
)

const (
	mnemonicPrefix       = "m_"
	mnemonicExt          = ".kef"
	descriptorPrefix     = "d_"
	descriptorExtKEF     = ".kef"
	descriptorExtTXT     = ".txt"
)

// Store is a persistence root for mnemonics and descriptors. FlashDir
// backs Location Flash; SDMnemonicsDir and SDDescriptorsDir back
// Location SD. Each directory is created on first write if it does not
// exist yet.
type Store struct {
	FlashDir          string
	SDMnemonicsDir    string
	SDDescriptorsDir  string

	cache *listCache
}

// New returns a Store rooted at the given directories. Directories are
// created on first write, not by New.
func New(flashDir, sdMnemonicsDir, sdDescriptorsDir string) *Store {
	return &Store{
		FlashDir:         flashDir,
		SDMnemonicsDir:   sdMnemonicsDir,
		SDDescriptorsDir: sdDescriptorsDir,
		cache:            newListCache(),
	}
}

type itemConfig struct {
	flashPrefix string
	sdDir       string
}

func (s *Store) mnemonicConfig() *itemConfig {
	return &itemConfig{flashPrefix: mnemonicPrefix, sdDir: s.SDMnemonicsDir}
}

func (s *Store) descriptorConfig() *itemConfig {
	return &itemConfig{flashPrefix: descriptorPrefix, sdDir: s.SDDescriptorsDir}
}

func (s *Store) dirFor(loc Location, cfg *itemConfig) string {
	if loc == Flash {
		return s.FlashDir
	}
	return cfg.sdDir
}

func buildFilename(cfg *itemConfig, loc Location, sanitizedID, ext string) string {
	if loc == Flash {
		return cfg.flashPrefix + sanitizedID + ext
	}
	return sanitizedID + ext
}

func hasExt(filename, ext string) bool {
	return strings.HasSuffix(filename, ext)
}

func (s *Store) ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return wrapErr(KindIO, err, "creating directory %q", dir)
	}
	return nil
}

func (s *Store) itemSave(cfg *itemConfig, loc Location, id string, data []byte, ext string, base64OnSD bool) error {
	if id == "" || len(data) == 0 {
		return newErr(KindInvalidArgument, "id and data must be non-empty")
	}
	dir := s.dirFor(loc, cfg)
	if err := s.ensureDir(dir); err != nil {
		return err
	}

	sanitized := SanitizeID(id)
	path := filepath.Join(dir, buildFilename(cfg, loc, sanitized, ext))

	payload := data
	if loc == SD && base64OnSD {
		encoded := base64.StdEncoding.EncodeToString(data)
		payload = []byte(encoded)
	}

	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return wrapErr(KindIO, err, "writing %q", path)
	}
	return nil
}

func (s *Store) itemLoad(cfg *itemConfig, loc Location, filename string, base64Decode bool) ([]byte, error) {
	if filename == "" {
		return nil, newErr(KindInvalidArgument, "filename must be non-empty")
	}
	dir := s.dirFor(loc, cfg)
	path := filepath.Join(dir, filename)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, wrapErr(KindNotFound, err, "reading %q", path)
		}
		return nil, wrapErr(KindIO, err, "reading %q", path)
	}

	if !base64Decode {
		return raw, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, wrapErr(KindIO, err, "base64-decoding %q", path)
	}
	return decoded, nil
}

func (s *Store) itemList(cfg *itemConfig, loc Location, extensions []string) ([]string, error) {
	dir := s.dirFor(loc, cfg)

	if names, ok := s.cache.get(dir); ok {
		return filterAndSort(names, cfg, loc, extensions), nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, wrapErr(KindIO, err, "listing %q", dir)
	}

	all := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		all = append(all, e.Name())
	}
	s.cache.put(dir, all)

	return filterAndSort(all, cfg, loc, extensions), nil
}

func filterAndSort(names []string, cfg *itemConfig, loc Location, extensions []string) []string {
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if loc == Flash && !strings.HasPrefix(name, cfg.flashPrefix) {
			continue
		}
		match := false
		for _, ext := range extensions {
			if hasExt(name, ext) {
				match = true
				break
			}
		}
		if match {
			filtered = append(filtered, name)
		}
	}
	sort.Strings(filtered)
	return filtered
}

func (s *Store) itemDelete(cfg *itemConfig, loc Location, filename string) error {
	if filename == "" {
		return newErr(KindInvalidArgument, "filename must be non-empty")
	}
	path := filepath.Join(s.dirFor(loc, cfg), filename)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return wrapErr(KindNotFound, err, "deleting %q", path)
		}
		return wrapErr(KindIO, err, "deleting %q", path)
	}
	return nil
}

func (s *Store) itemExists(cfg *itemConfig, loc Location, id, ext string) bool {
	if id == "" {
		return false
	}
	sanitized := SanitizeID(id)
	path := filepath.Join(s.dirFor(loc, cfg), buildFilename(cfg, loc, sanitized, ext))
	_, err := os.Stat(path)
	return err == nil
}

// SaveMnemonic writes a KEF envelope under an ID-derived filename: raw
// bytes on Flash, base64-wrapped on SD.
func (s *Store) SaveMnemonic(loc Location, id string, kefEnvelope []byte) error {
	return s.itemSave(s.mnemonicConfig(), loc, id, kefEnvelope, mnemonicExt, true)
}

// LoadMnemonic reads back a mnemonic file by its stored filename.
func (s *Store) LoadMnemonic(loc Location, filename string) ([]byte, error) {
	return s.itemLoad(s.mnemonicConfig(), loc, filename, loc == SD)
}

// ListMnemonics returns the sorted filenames of every stored mnemonic.
func (s *Store) ListMnemonics(loc Location) ([]string, error) {
	return s.itemList(s.mnemonicConfig(), loc, []string{mnemonicExt})
}

// DeleteMnemonic removes a mnemonic file by its stored filename.
func (s *Store) DeleteMnemonic(loc Location, filename string) error {
	return s.itemDelete(s.mnemonicConfig(), loc, filename)
}

// MnemonicExists reports whether a mnemonic with the given raw ID is
// already stored.
func (s *Store) MnemonicExists(loc Location, id string) bool {
	return s.itemExists(s.mnemonicConfig(), loc, id, mnemonicExt)
}

// SaveDescriptor writes a descriptor: KEF envelope (.kef, base64 on SD)
// if encrypted, raw text (.txt) otherwise.
func (s *Store) SaveDescriptor(loc Location, id string, data []byte, encrypted bool) error {
	ext := descriptorExtTXT
	if encrypted {
		ext = descriptorExtKEF
	}
	return s.itemSave(s.descriptorConfig(), loc, id, data, ext, encrypted)
}

// LoadDescriptor reads back a descriptor file, reporting whether it was
// a KEF envelope via encrypted.
func (s *Store) LoadDescriptor(loc Location, filename string) (data []byte, encrypted bool, err error) {
	isKEF := hasExt(filename, descriptorExtKEF)
	decode := isKEF && loc == SD
	data, err = s.itemLoad(s.descriptorConfig(), loc, filename, decode)
	return data, isKEF, err
}

// ListDescriptors returns the sorted filenames of every stored
// descriptor, both .kef and .txt.
func (s *Store) ListDescriptors(loc Location) ([]string, error) {
	return s.itemList(s.descriptorConfig(), loc, []string{descriptorExtKEF, descriptorExtTXT})
}

// DeleteDescriptor removes a descriptor file by its stored filename.
func (s *Store) DeleteDescriptor(loc Location, filename string) error {
	return s.itemDelete(s.descriptorConfig(), loc, filename)
}

// DescriptorExists reports whether a descriptor with the given raw ID is
// already stored, checking the extension matching encrypted.
func (s *Store) DescriptorExists(loc Location, id string, encrypted bool) bool {
	ext := descriptorExtTXT
	if encrypted {
		ext = descriptorExtKEF
	}
	return s.itemExists(s.descriptorConfig(), loc, id, ext)
}

// DisplayNameFromEnvelope extracts the ID field from a KEF envelope's
// header without decrypting, for use as a list-UI display label.
func DisplayNameFromEnvelope(data []byte) (string, error) {
	header, err := kef.ParseHeader(data)
	if err != nil {
		return "", wrapErr(KindInvalidArgument, err, "parsing KEF header")
	}
	return string(header.ID), nil
}

// WipeFlash deletes every file under FlashDir, the local-filesystem
// analogue of erasing and reformatting a SPIFFS partition.
func (s *Store) WipeFlash() error {
	entries, err := os.ReadDir(s.FlashDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return wrapErr(KindIO, err, "listing %q", s.FlashDir)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(s.FlashDir, e.Name())
		if err := os.Remove(path); err != nil {
			return wrapErr(KindIO, err, "wiping %q", path)
		}
	}
	return nil
}
