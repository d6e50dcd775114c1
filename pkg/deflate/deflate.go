package deflate

const (
	minMatchLen = 3
	maxMatchLen = 258
)

// lengthSymbol maps a match length to its (symbol-257, extra bits, extra value).
func lengthSymbol(length int) (sym int, extraBits int, extraVal uint32) {
	for i := 28; i >= 0; i-- {
		if int(lengthBase[i]) <= length {
			return 257 + i, int(lengthExtra[i]), uint32(length) - uint32(lengthBase[i])
		}
	}
	return 257, 0, 0
}

func distSymbol(distance int) (sym int, extraBits int, extraVal uint32) {
	for i := 29; i >= 0; i-- {
		if int(distBase[i]) <= distance {
			return i, int(distExtra[i]), uint32(distance) - uint32(distBase[i])
		}
	}
	return 0, 0, 0
}

// findMatch searches the already-emitted window src[:pos] for the
// longest run that also appears at src[pos:], matching miniz.c's
// lz77_find_match: ties are broken with >=, so scanning candidates from
// the oldest position forward means the final pick is the nearest
// (smallest-distance) match among equal-length candidates.
func findMatch(src []byte, pos, window int) (length, distance int) {
	n := len(src)
	windowStart := pos - window
	if windowStart < 0 {
		windowStart = 0
	}

	limit := n - pos
	if limit > maxMatchLen {
		limit = maxMatchLen
	}
	if limit < minMatchLen {
		return 0, 0
	}

	bestLen := 0
	bestDist := 0
	for cand := windowStart; cand < pos; cand++ {
		l := 0
		for l < limit && src[cand+l] == src[pos+l] {
			l++
		}
		if l >= minMatchLen && l >= bestLen {
			bestLen = l
			bestDist = pos - cand
		}
	}
	return bestLen, bestDist
}

// Deflate compresses src into a raw (headerless) RFC 1951 stream using
// static Huffman coding, as a single final block. wbits selects the
// maximum back-reference window as 2^wbits bytes and must be in
// [8,15]; callers that don't care about window size should pass 0,
// which selects the package default of 10 (1 KiB window).
func Deflate(src []byte, wbits int) ([]byte, error) {
	if wbits == 0 {
		wbits = 10
	}
	if wbits < 8 || wbits > 15 {
		return nil, newErr(KindInvalidArgument, "wbits %d out of range [8,15]", wbits)
	}
	window := 1 << uint(wbits)

	w := &bitWriter{}
	w.writeBits(1, 1) // BFINAL
	w.writeBits(1, 2) // BTYPE = 01, fixed Huffman

	pos := 0
	n := len(src)
	for pos < n {
		matchLen, matchDist := findMatch(src, pos, window)
		if matchLen >= minMatchLen {
			lsym, lextraBits, lextraVal := lengthSymbol(matchLen)
			w.writeStaticLiteral(lsym)
			if lextraBits > 0 {
				w.writeBits(lextraVal, lextraBits)
			}
			dsym, dextraBits, dextraVal := distSymbol(matchDist)
			w.writeStaticDistance(dsym)
			if dextraBits > 0 {
				w.writeBits(dextraVal, dextraBits)
			}
			pos += matchLen
		} else {
			w.writeStaticLiteral(int(src[pos]))
			pos++
		}
	}
	w.writeStaticLiteral(256) // end of block
	w.alignByte()
	return w.buf, nil
}
