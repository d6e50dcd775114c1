package kef

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/pbkdf2"
)

const (
	aesKeySize   = 32
	aesBlockSize = 16
)

func deriveKey(password, id []byte, iterations uint32) []byte {
	return pbkdf2.Key(password, id, int(iterations), aesKeySize, sha256.New)
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, newErr(KindCrypto, "random bytes: %v", err)
	}
	return b, nil
}

// aesECBCrypt applies block cipher encryption or decryption
// independently to each 16-byte block, with no chaining.
func aesECBCrypt(key, in []byte, encrypt bool) ([]byte, error) {
	if len(in)%aesBlockSize != 0 {
		return nil, newErr(KindCrypto, "ECB input not block aligned")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, newErr(KindCrypto, "aes.NewCipher: %v", err)
	}
	out := make([]byte, len(in))
	for off := 0; off < len(in); off += aesBlockSize {
		if encrypt {
			block.Encrypt(out[off:off+aesBlockSize], in[off:off+aesBlockSize])
		} else {
			block.Decrypt(out[off:off+aesBlockSize], in[off:off+aesBlockSize])
		}
	}
	return out, nil
}

func aesCBCCrypt(key, iv, in []byte, encrypt bool) ([]byte, error) {
	if len(in)%aesBlockSize != 0 {
		return nil, newErr(KindCrypto, "CBC input not block aligned")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, newErr(KindCrypto, "aes.NewCipher: %v", err)
	}
	out := make([]byte, len(in))
	if encrypt {
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, in)
	} else {
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, in)
	}
	return out, nil
}

func aesCTRCrypt(key, iv, in []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, newErr(KindCrypto, "aes.NewCipher: %v", err)
	}
	out := make([]byte, len(in))
	cipher.NewCTR(block, iv).XORKeyStream(out, in)
	return out, nil
}

// aesGCMEncrypt and aesGCMDecrypt implement KEF's truncated-GCM
// variant: the descriptor's auth_size (4 bytes) is far below the
// 12-byte minimum crypto/cipher.NewGCMWithTagSize allows, so the
// standard 16-byte tag is computed with the stock AEAD and then
// truncated by hand rather than asking the stdlib to shorten it.
func aesGCMEncrypt(key, iv, in []byte, authSize int) (ciphertext, tag []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, newErr(KindCrypto, "aes.NewCipher: %v", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, newErr(KindCrypto, "cipher.NewGCM: %v", err)
	}
	sealed := gcm.Seal(nil, iv, in, nil)
	return sealed[:len(in)], sealed[len(in):][:authSize], nil
}

// aesGCMDecrypt recovers the plaintext via GCM's underlying CTR
// keystream (counter block = iv‖00000002 for a 96-bit nonce, exactly
// what crypto/cipher.NewCTR produces given that starting block), then
// re-seals the candidate plaintext with the standard AEAD to recompute
// its full tag and compares the truncated prefix in constant time.
// This avoids reimplementing GHASH while still validating a tag
// shorter than crypto/cipher's enforced minimum.
func aesGCMDecrypt(key, iv, ciphertext, truncatedTag []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, newErr(KindCrypto, "aes.NewCipher: %v", err)
	}
	if len(iv) != 12 {
		return nil, newErr(KindCrypto, "GCM requires a 12-byte IV")
	}

	counterBlock := append(append([]byte{}, iv...), 0x00, 0x00, 0x00, 0x02)
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCTR(block, counterBlock).XORKeyStream(plaintext, ciphertext)

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, newErr(KindCrypto, "cipher.NewGCM: %v", err)
	}
	sealed := gcm.Seal(nil, iv, plaintext, nil)
	fullTag := sealed[len(plaintext):]
	if !constantTimeEqual(fullTag[:len(truncatedTag)], truncatedTag) {
		return nil, newErr(KindAuth, "GCM tag verification failed")
	}
	return plaintext, nil
}

func hiddenAuth(data []byte, authSize int) []byte {
	sum := sha256.Sum256(data)
	return sum[:authSize]
}

func exposedAuth(version uint8, iv, data, key []byte, authSize int) []byte {
	h := sha256.New()
	h.Write([]byte{version})
	h.Write(iv)
	h.Write(data)
	h.Write(key)
	return h.Sum(nil)[:authSize]
}

func constantTimeEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
