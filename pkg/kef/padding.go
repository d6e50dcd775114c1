package kef

// padNUL pads in with zero bytes up to the next multiple of 16; empty
// input pads to one full zero block.
func padNUL(in []byte) []byte {
	padded := ((len(in) + aesBlockSize - 1) / aesBlockSize) * aesBlockSize
	if padded == 0 {
		padded = aesBlockSize
	}
	out := make([]byte, padded)
	copy(out, in)
	return out
}

// padPKCS7 appends k copies of byte k so the length becomes a multiple
// of 16, k in [1,16].
func padPKCS7(in []byte) []byte {
	k := aesBlockSize - (len(in) % aesBlockSize)
	out := make([]byte, len(in)+k)
	copy(out, in)
	for i := len(in); i < len(out); i++ {
		out[i] = byte(k)
	}
	return out
}

// unpadPKCS7 peels PKCS#7 padding, returning an error if the padding
// byte is out of range or not uniformly present.
func unpadPKCS7(in []byte) ([]byte, error) {
	if len(in) == 0 || len(in)%aesBlockSize != 0 {
		return nil, newErr(KindAuth, "PKCS#7 input not block aligned")
	}
	k := int(in[len(in)-1])
	if k < 1 || k > aesBlockSize || k > len(in) {
		return nil, newErr(KindAuth, "invalid PKCS#7 padding length")
	}
	for i := len(in) - k; i < len(in); i++ {
		if in[i] != byte(k) {
			return nil, newErr(KindAuth, "malformed PKCS#7 padding")
		}
	}
	return in[:len(in)-k], nil
}

// applyPadding pads in per the descriptor's padding scheme.
func applyPadding(p Padding, in []byte) []byte {
	switch p {
	case PaddingNUL:
		return padNUL(in)
	case PaddingPKCS7:
		return padPKCS7(in)
	default: // PaddingNone
		out := make([]byte, len(in))
		copy(out, in)
		return out
	}
}

// hasDuplicateBlocks reports whether any two 16-byte blocks of data are
// identical, the ECB weakness the encoder refuses to produce.
func hasDuplicateBlocks(data []byte) bool {
	n := len(data) / aesBlockSize
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a := data[i*aesBlockSize : (i+1)*aesBlockSize]
			b := data[j*aesBlockSize : (j+1)*aesBlockSize]
			equal := true
			for k := range a {
				if a[k] != b[k] {
					equal = false
					break
				}
			}
			if equal {
				return true
			}
		}
	}
	return false
}

// nulUnpadVerifyHidden strips trailing NULs, then retries with 0..authSize
// NULs re-added, testing each candidate length against
// SHA-256(candidate)[:authSize] == the trailing authSize bytes. This
// recovers plaintexts that legitimately end in 0x00 bytes.
func nulUnpadVerifyHidden(dec []byte, authSize int) (plainLen int, err error) {
	stripped := len(dec)
	for stripped > 0 && dec[stripped-1] == 0 {
		stripped--
	}

	for nuls := 0; nuls <= authSize; nuls++ {
		candidate := stripped + nuls
		if candidate < authSize {
			continue
		}
		if candidate > len(dec) {
			break
		}
		dlen := candidate - authSize
		want := hiddenAuth(dec[:dlen], authSize)
		if constantTimeEqual(want, dec[dlen:candidate]) {
			return dlen, nil
		}
	}
	return 0, newErr(KindAuth, "hidden auth verification failed")
}

// nulUnpadVerifyExposed mirrors nulUnpadVerifyHidden but verifies
// against the exposed-auth formula (versions 5, 10).
func nulUnpadVerifyExposed(dec []byte, version uint8, iv, key, expectedAuth []byte, authSize int) (dataLen int, err error) {
	stripped := len(dec)
	for stripped > 0 && dec[stripped-1] == 0 {
		stripped--
	}

	for nuls := 0; nuls <= authSize; nuls++ {
		candidate := stripped + nuls
		if candidate > len(dec) {
			break
		}
		got := exposedAuth(version, iv, dec[:candidate], key, authSize)
		if constantTimeEqual(got, expectedAuth) {
			return candidate, nil
		}
	}
	return 0, newErr(KindAuth, "exposed auth verification failed")
}
