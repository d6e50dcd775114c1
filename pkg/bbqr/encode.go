package bbqr

import (
	"github.com/joaozinhom/kern/pkg/basecodec"
	"github.com/joaozinhom/kern/pkg/deflate"
)

// Encode splits data into BBQr part strings, each no longer than
// maxCharsPerQR. Compression is attempted first; if the raw-deflated
// bytes are strictly smaller than data, encoding 'Z' is used over the
// compressed bytes, otherwise encoding '2' is used over the raw bytes.
func Encode(data []byte, fileType FileType, maxCharsPerQR int) ([]string, error) {
	if len(data) == 0 {
		return nil, newErr(KindInvalidArgument, "empty data")
	}
	if !isValidFileType(byte(fileType)) {
		return nil, newErr(KindInvalidArgument, "invalid file type %q", byte(fileType))
	}
	if maxCharsPerQR < headerLen+8 {
		return nil, newErr(KindInvalidArgument, "max_chars_per_qr too small")
	}

	encoding := EncodingBase32
	chosen := data
	if compressed, err := deflate.Deflate(data, 10); err == nil && len(compressed) < len(data) {
		encoding = EncodingDeflate
		chosen = compressed
	}

	encoded := basecodec.Base32Encode(chosen)
	encodedLen := len(encoded)

	maxPayloadPerPart := maxCharsPerQR - headerLen
	payloadPerPart := (maxPayloadPerPart / 8) * 8
	if payloadPerPart <= 0 {
		payloadPerPart = 8
	}

	numParts := (encodedLen + payloadPerPart - 1) / payloadPerPart
	if numParts > 1295 {
		return nil, newErr(KindTooLarge, "data requires %d parts, exceeding the 1295 limit", numParts)
	}
	if numParts < 1 {
		numParts = 1
	}

	payloadPerPart = (encodedLen + numParts - 1) / numParts
	payloadPerPart = ((payloadPerPart + 7) / 8) * 8

	totalField, err := basecodec.EncodeBase36Pair(numParts)
	if err != nil {
		return nil, newErr(KindInvalidArgument, "cannot encode part count: %v", err)
	}

	parts := make([]string, numParts)
	offset := 0
	for i := 0; i < numParts; i++ {
		remaining := encodedLen - offset
		thisLen := payloadPerPart
		if remaining < thisLen {
			thisLen = remaining
		}
		indexField, err := basecodec.EncodeBase36Pair(i)
		if err != nil {
			return nil, newErr(KindInvalidArgument, "cannot encode part index: %v", err)
		}
		parts[i] = "B$" + string(encoding) + string(fileType) + totalField + indexField + encoded[offset:offset+thisLen]
		offset += thisLen
	}

	return parts, nil
}
