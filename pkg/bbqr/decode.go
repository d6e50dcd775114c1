package bbqr

import (
	"encoding/hex"

	"github.com/joaozinhom/kern/pkg/basecodec"
	"github.com/joaozinhom/kern/pkg/deflate"
)

// DecodePayload decodes a reassembled payload string according to enc:
// 'H' hex-decodes, '2' base32-decodes, and 'Z' base32-decodes then
// decompresses — probing for a zlib header first (tolerating encoders
// that add the wrapper) and falling back to raw DEFLATE, which is what
// BBQr canonically produces.
func DecodePayload(enc Encoding, payload string) ([]byte, error) {
	if len(payload) == 0 {
		return nil, newErr(KindInvalidArgument, "empty payload")
	}

	switch enc {
	case EncodingHex:
		if len(payload)%2 != 0 {
			return nil, newErr(KindBadFormat, "odd-length hex payload")
		}
		out, err := hex.DecodeString(payload)
		if err != nil {
			return nil, newErr(KindBadFormat, "invalid hex payload: %v", err)
		}
		return out, nil

	case EncodingBase32:
		out, err := basecodec.Base32Decode(payload)
		if err != nil {
			return nil, newErr(KindBadFormat, "invalid base32 payload: %v", err)
		}
		return out, nil

	case EncodingDeflate:
		compressed, err := basecodec.Base32Decode(payload)
		if err != nil {
			return nil, newErr(KindBadFormat, "invalid base32 payload: %v", err)
		}
		if len(compressed) >= 2 && compressed[0]&0x0F == 0x08 && (int(compressed[0])*256+int(compressed[1]))%31 == 0 {
			if out, err := deflate.ZlibUnwrap(compressed); err == nil {
				return out, nil
			}
		}
		out, err := deflate.AllocatingInflate(compressed)
		if err != nil {
			return nil, newErr(KindBadFormat, "raw deflate decode failed: %v", err)
		}
		return out, nil

	default:
		return nil, newErr(KindInvalidArgument, "unknown encoding %q", byte(enc))
	}
}
