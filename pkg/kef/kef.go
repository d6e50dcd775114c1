package kef

import (
	"github.com/joaozinhom/kern/pkg/deflate"
	"github.com/joaozinhom/kern/pkg/secret"
)

const minHeaderLen = 6 // len_id(1) + id(>=1) + version(1) + iterations(3)

// Header holds the fields kef_parse_header exposes without decrypting.
type Header struct {
	ID         []byte
	Version    uint8
	Iterations uint32
}

// ParseHeader reads id, version, and iterations out of envelope
// without touching the ciphertext.
func ParseHeader(envelope []byte) (Header, error) {
	if len(envelope) < minHeaderLen {
		return Header{}, newErr(KindInvalidArgument, "envelope shorter than minimum header")
	}
	idLen := int(envelope[0])
	if idLen == 0 || idLen > MaxIDLen {
		return Header{}, newErr(KindInvalidArgument, "invalid id_len %d", idLen)
	}
	headerSize := 1 + idLen + 1 + 3
	if len(envelope) < headerSize {
		return Header{}, newErr(KindEnvelopeTooShort, "envelope shorter than declared header")
	}

	var iterField [3]byte
	copy(iterField[:], envelope[1+idLen+1:1+idLen+1+3])

	return Header{
		ID:         envelope[1 : 1+idLen],
		Version:    envelope[1+idLen],
		Iterations: DecodeIterations(iterField),
	}, nil
}

// IsEnvelope reports whether data parses as a structurally valid KEF
// envelope: a known version, and at least the minimum length the
// descriptor implies. It never attempts decryption.
func IsEnvelope(data []byte) bool {
	hdr, err := ParseHeader(data)
	if err != nil {
		return false
	}
	vi, ok := findVersion(hdr.Version)
	if !ok {
		return false
	}
	headerSize := 1 + len(hdr.ID) + 1 + 3
	minCipher := 1
	if vi.Mode == ModeECB || vi.Mode == ModeCBC {
		minCipher = aesBlockSize
	}
	exposedLen := 0
	if vi.Auth == AuthExposed || vi.Auth == AuthGCM {
		exposedLen = vi.AuthSize
	}
	return len(data) >= headerSize+vi.IVSize+minCipher+exposedLen
}

// Encrypt builds a KEF envelope around plaintext under version, keyed
// by PBKDF2-HMAC-SHA256(password, salt=id, iterations, 32).
func Encrypt(id []byte, version uint8, password []byte, iterations uint32, plaintext []byte) ([]byte, error) {
	if len(id) == 0 || len(id) > MaxIDLen {
		return nil, newErr(KindInvalidArgument, "id length %d out of range [1,%d]", len(id), MaxIDLen)
	}
	if len(password) == 0 {
		return nil, newErr(KindInvalidArgument, "empty password")
	}
	if len(plaintext) == 0 {
		return nil, newErr(KindInvalidArgument, "empty plaintext")
	}
	if iterations == 0 {
		return nil, newErr(KindInvalidArgument, "iterations must be >= 1")
	}
	vi, ok := findVersion(version)
	if !ok {
		return nil, newErr(KindUnsupportedVersion, "unsupported KEF version %d", version)
	}
	if DecodeIterations(EncodeIterations(iterations)) != iterations {
		return nil, newErr(KindInvalidArgument, "iterations %d cannot be carried by the 3-byte iteration field", iterations)
	}

	key := secret.New(deriveKey(password, id, iterations))
	defer key.Zeroize()

	var iv []byte
	if vi.IVSize > 0 {
		var err error
		iv, err = randomBytes(vi.IVSize)
		if err != nil {
			return nil, err
		}
	}

	work := plaintext
	if vi.Compress {
		compressed, err := deflate.Deflate(plaintext, 10)
		if err != nil {
			return nil, newErr(KindCompress, "deflate: %v", err)
		}
		work = compressed
	}

	var prePad []byte
	if vi.Auth == AuthHidden {
		auth := hiddenAuth(work, vi.AuthSize)
		prePad = make([]byte, len(work)+vi.AuthSize)
		copy(prePad, work)
		copy(prePad[len(work):], auth)
	} else {
		prePad = append([]byte{}, work...)
	}
	prePadSecret := secret.New(prePad)
	defer prePadSecret.Zeroize()

	padded := applyPadding(vi.Padding, prePad)
	paddedSecret := secret.New(padded)
	defer paddedSecret.Zeroize()

	if vi.Mode == ModeECB && hasDuplicateBlocks(padded) {
		return nil, newErr(KindDuplicateBlocks, "ECB plaintext contains two identical 16-byte blocks")
	}

	headerSize := 1 + len(id) + 1 + 3
	exposed := vi.Auth == AuthExposed || vi.Auth == AuthGCM
	exposedLen := 0
	if exposed {
		exposedLen = vi.AuthSize
	}
	envSize := headerSize + vi.IVSize + len(padded) + exposedLen
	envelope := make([]byte, 0, envSize)
	envelope = append(envelope, byte(len(id)))
	envelope = append(envelope, id...)
	envelope = append(envelope, version)
	iterField := EncodeIterations(iterations)
	envelope = append(envelope, iterField[:]...)
	envelope = append(envelope, iv...)

	if vi.Mode == ModeGCM {
		ciphertext, tag, err := aesGCMEncrypt(key.Bytes(), iv, padded, vi.AuthSize)
		if err != nil {
			return nil, err
		}
		envelope = append(envelope, ciphertext...)
		envelope = append(envelope, tag...)
		return envelope, nil
	}

	ciphertext, err := cipherEncrypt(vi.Mode, key.Bytes(), iv, padded)
	if err != nil {
		return nil, err
	}
	envelope = append(envelope, ciphertext...)

	if vi.Auth == AuthExposed {
		trailer := exposedAuth(version, iv, work, key.Bytes(), vi.AuthSize)
		envelope = append(envelope, trailer...)
	}
	return envelope, nil
}

func cipherEncrypt(mode Mode, key, iv, in []byte) ([]byte, error) {
	switch mode {
	case ModeECB:
		return aesECBCrypt(key, in, true)
	case ModeCBC:
		return aesCBCCrypt(key, iv, in, true)
	case ModeCTR:
		return aesCTRCrypt(key, iv, in)
	default:
		return nil, newErr(KindInvalidArgument, "unsupported cipher mode for non-AEAD path")
	}
}

func cipherDecrypt(mode Mode, key, iv, in []byte) ([]byte, error) {
	switch mode {
	case ModeECB:
		return aesECBCrypt(key, in, false)
	case ModeCBC:
		return aesCBCCrypt(key, iv, in, false)
	case ModeCTR:
		return aesCTRCrypt(key, iv, in)
	default:
		return nil, newErr(KindInvalidArgument, "unsupported cipher mode for non-AEAD path")
	}
}

// Decrypt opens a KEF envelope under password, reversing Encrypt.
func Decrypt(envelope []byte, password []byte) ([]byte, error) {
	if len(envelope) == 0 || len(password) == 0 {
		return nil, newErr(KindInvalidArgument, "empty envelope or password")
	}

	hdr, err := ParseHeader(envelope)
	if err != nil {
		return nil, err
	}
	vi, ok := findVersion(hdr.Version)
	if !ok {
		return nil, newErr(KindUnsupportedVersion, "unsupported KEF version %d", hdr.Version)
	}

	headerSize := 1 + len(hdr.ID) + 1 + 3
	ivStart := headerSize
	if ivStart+vi.IVSize > len(envelope) {
		return nil, newErr(KindEnvelopeTooShort, "envelope too short for IV")
	}
	var iv []byte
	if vi.IVSize > 0 {
		iv = envelope[ivStart : ivStart+vi.IVSize]
	}
	dataStart := ivStart + vi.IVSize
	dataEnd := len(envelope)

	hasExposed := vi.Auth == AuthExposed || vi.Auth == AuthGCM
	var exposedAuthBytes []byte
	if hasExposed {
		if dataEnd < dataStart+vi.AuthSize {
			return nil, newErr(KindEnvelopeTooShort, "envelope too short for trailer")
		}
		dataEnd -= vi.AuthSize
		exposedAuthBytes = envelope[dataEnd : dataEnd+vi.AuthSize]
	}

	ciphertext := envelope[dataStart:dataEnd]
	if len(ciphertext) == 0 {
		return nil, newErr(KindEnvelopeTooShort, "empty ciphertext")
	}
	if (vi.Mode == ModeECB || vi.Mode == ModeCBC) && len(ciphertext)%aesBlockSize != 0 {
		return nil, newErr(KindEnvelopeTooShort, "ciphertext not block aligned")
	}

	key := secret.New(deriveKey(password, hdr.ID, hdr.Iterations))
	defer key.Zeroize()

	var decrypted []byte
	if vi.Mode == ModeGCM {
		decrypted, err = aesGCMDecrypt(key.Bytes(), iv, ciphertext, exposedAuthBytes)
		if err != nil {
			return nil, err
		}
	} else {
		decrypted, err = cipherDecrypt(vi.Mode, key.Bytes(), iv, ciphertext)
		if err != nil {
			return nil, newErr(KindCrypto, "decrypt: %v", err)
		}
	}
	decryptedSecret := secret.New(decrypted)
	defer decryptedSecret.Zeroize()

	var plainLen int
	switch {
	case vi.Auth == AuthGCM:
		plainLen = len(decrypted)

	case vi.Padding == PaddingNUL && vi.Auth == AuthHidden:
		plainLen, err = nulUnpadVerifyHidden(decrypted, vi.AuthSize)
		if err != nil {
			return nil, err
		}

	case vi.Padding == PaddingNUL && vi.Auth == AuthExposed:
		plainLen, err = nulUnpadVerifyExposed(decrypted, hdr.Version, iv, key.Bytes(), exposedAuthBytes, vi.AuthSize)
		if err != nil {
			return nil, err
		}

	case vi.Padding == PaddingPKCS7:
		unpadded, uerr := unpadPKCS7(decrypted)
		if uerr != nil || len(unpadded) < vi.AuthSize {
			return nil, newErr(KindAuth, "PKCS#7 unpad failed")
		}
		plainLen = len(unpadded) - vi.AuthSize
		want := hiddenAuth(unpadded[:plainLen], vi.AuthSize)
		if !constantTimeEqual(want, unpadded[plainLen:]) {
			return nil, newErr(KindAuth, "hidden auth verification failed")
		}

	default: // PaddingNone with hidden auth (CTR modes)
		if len(decrypted) < vi.AuthSize {
			return nil, newErr(KindAuth, "ciphertext shorter than auth trailer")
		}
		plainLen = len(decrypted) - vi.AuthSize
		want := hiddenAuth(decrypted[:plainLen], vi.AuthSize)
		if !constantTimeEqual(want, decrypted[plainLen:]) {
			return nil, newErr(KindAuth, "hidden auth verification failed")
		}
	}

	plain := decrypted[:plainLen]
	if vi.Compress {
		out, derr := deflate.AllocatingInflate(plain)
		if derr != nil {
			return nil, newErr(KindDecompress, "inflate: %v", derr)
		}
		return out, nil
	}
	out := make([]byte, plainLen)
	copy(out, plain)
	return out, nil
}
