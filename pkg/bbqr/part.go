package bbqr

import "github.com/joaozinhom/kern/pkg/basecodec"

const headerLen = 8

// Encoding identifies how a part's payload bytes are represented.
type Encoding byte

const (
	EncodingHex     Encoding = 'H'
	EncodingBase32  Encoding = '2'
	EncodingDeflate Encoding = 'Z'
)

func isValidEncoding(c byte) bool {
	return Encoding(c) == EncodingHex || Encoding(c) == EncodingBase32 || Encoding(c) == EncodingDeflate
}

// FileType identifies the content carried inside a BBQr transfer.
type FileType byte

const (
	FileTypePSBT        FileType = 'P'
	FileTypeTransaction FileType = 'T'
	FileTypeJSON        FileType = 'J'
	FileTypeUnicode     FileType = 'U'
)

func isValidFileType(c byte) bool {
	switch FileType(c) {
	case FileTypePSBT, FileTypeTransaction, FileTypeJSON, FileTypeUnicode:
		return true
	}
	return false
}

// Part is one parsed BBQr QR-code payload string.
type Part struct {
	Encoding Encoding
	FileType FileType
	Total    int
	Index    int
	Payload  string
}

func toUpperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// ParsePart parses a single BBQr part string's header and returns its
// fields with the remaining bytes as Payload.
func ParsePart(data string) (Part, error) {
	if len(data) < headerLen {
		return Part{}, newErr(KindBadFormat, "part shorter than header (%d bytes)", len(data))
	}
	if data[0] != 'B' || data[1] != '$' {
		return Part{}, newErr(KindBadFormat, "missing B$ magic")
	}

	encoding := toUpperASCII(data[2])
	if !isValidEncoding(encoding) {
		return Part{}, newErr(KindBadFormat, "invalid encoding byte %q", data[2])
	}
	fileType := toUpperASCII(data[3])
	if !isValidFileType(fileType) {
		return Part{}, newErr(KindBadFormat, "invalid file type byte %q", data[3])
	}

	total, err := basecodec.DecodeBase36Pair(string([]byte{toUpperASCII(data[4]), toUpperASCII(data[5])}))
	if err != nil || total < 1 || total > 1295 {
		return Part{}, newErr(KindBadFormat, "invalid total field")
	}
	index, err := basecodec.DecodeBase36Pair(string([]byte{toUpperASCII(data[6]), toUpperASCII(data[7])}))
	if err != nil || index < 0 || index >= total {
		return Part{}, newErr(KindBadFormat, "invalid index field")
	}

	return Part{
		Encoding: Encoding(encoding),
		FileType: FileType(fileType),
		Total:    total,
		Index:    index,
		Payload:  data[headerLen:],
	}, nil
}
