package kef

// Mode identifies the AES block-cipher mode a version descriptor uses.
type Mode int

const (
	ModeECB Mode = iota
	ModeCBC
	ModeCTR
	ModeGCM
)

// Padding identifies how the pre-cipher buffer is padded to a block
// boundary.
type Padding int

const (
	PaddingNUL Padding = iota
	PaddingPKCS7
	PaddingNone
)

// AuthPlacement identifies where and how the envelope's authenticator
// is carried.
type AuthPlacement int

const (
	// AuthHidden: SHA-256(plaintext)[:authSize] appended before padding,
	// recovered after unpadding.
	AuthHidden AuthPlacement = iota
	// AuthExposed: SHA-256(version‖iv‖plaintext‖key)[:authSize] appended
	// as a plain trailer after the ciphertext.
	AuthExposed
	// AuthGCM: the AES-GCM authentication tag, truncated to authSize.
	AuthGCM
)

// Version numbers, named for their cipher/padding/compress/auth shape.
const (
	V0ECBNulHidden16     = 0
	V1CBCNulHidden16     = 1
	V5ECBNulExposed3     = 5
	V6ECBPKCS7Hidden4    = 6
	V7ECBPKCS7ZHidden4   = 7
	V10CBCNulExposed4    = 10
	V11CBCPKCS7Hidden4   = 11
	V12CBCPKCS7ZHidden4  = 12
	V15CTRHidden4        = 15
	V16CTRZHidden4       = 16
	V20GCMExposed4       = 20
	V21GCMZExposed4      = 21
)

// IterationThreshold is the boundary used by the 3-byte iteration-count
// compaction rule.
const IterationThreshold = 10000

// MaxIDLen is the largest id the 1-byte id_len header field can carry.
const MaxIDLen = 255

// VersionDescriptor is one row of the KEF version table: the fixed
// cipher/padding/compression/auth shape a version number selects.
type VersionDescriptor struct {
	Version  uint8
	Mode     Mode
	IVSize   int
	Padding  Padding
	Compress bool
	Auth     AuthPlacement
	AuthSize int
}

var versionTable = []VersionDescriptor{
	{Version: V0ECBNulHidden16, Mode: ModeECB, IVSize: 0, Padding: PaddingNUL, Compress: false, Auth: AuthHidden, AuthSize: 16},
	{Version: V1CBCNulHidden16, Mode: ModeCBC, IVSize: 16, Padding: PaddingNUL, Compress: false, Auth: AuthHidden, AuthSize: 16},
	{Version: V5ECBNulExposed3, Mode: ModeECB, IVSize: 0, Padding: PaddingNUL, Compress: false, Auth: AuthExposed, AuthSize: 3},
	{Version: V6ECBPKCS7Hidden4, Mode: ModeECB, IVSize: 0, Padding: PaddingPKCS7, Compress: false, Auth: AuthHidden, AuthSize: 4},
	{Version: V7ECBPKCS7ZHidden4, Mode: ModeECB, IVSize: 0, Padding: PaddingPKCS7, Compress: true, Auth: AuthHidden, AuthSize: 4},
	{Version: V10CBCNulExposed4, Mode: ModeCBC, IVSize: 16, Padding: PaddingNUL, Compress: false, Auth: AuthExposed, AuthSize: 4},
	{Version: V11CBCPKCS7Hidden4, Mode: ModeCBC, IVSize: 16, Padding: PaddingPKCS7, Compress: false, Auth: AuthHidden, AuthSize: 4},
	{Version: V12CBCPKCS7ZHidden4, Mode: ModeCBC, IVSize: 16, Padding: PaddingPKCS7, Compress: true, Auth: AuthHidden, AuthSize: 4},
	{Version: V15CTRHidden4, Mode: ModeCTR, IVSize: 12, Padding: PaddingNone, Compress: false, Auth: AuthHidden, AuthSize: 4},
	{Version: V16CTRZHidden4, Mode: ModeCTR, IVSize: 12, Padding: PaddingNone, Compress: true, Auth: AuthHidden, AuthSize: 4},
	{Version: V20GCMExposed4, Mode: ModeGCM, IVSize: 12, Padding: PaddingNone, Compress: false, Auth: AuthGCM, AuthSize: 4},
	{Version: V21GCMZExposed4, Mode: ModeGCM, IVSize: 12, Padding: PaddingNone, Compress: true, Auth: AuthGCM, AuthSize: 4},
}

func findVersion(v uint8) (VersionDescriptor, bool) {
	for _, vi := range versionTable {
		if vi.Version == v {
			return vi, true
		}
	}
	return VersionDescriptor{}, false
}

// EncodeIterations packs an effective PBKDF2 iteration count into the
// envelope's 3-byte big-endian field, scaling down by 10000 when the
// count is an exact, in-range multiple of the threshold. Counts from 1 to
// 9999, and unscaled counts above 0xFFFFFF, have no faithful encoding:
// the first are read back multiplied by 10000, the second are truncated
// to 24 bits.
func EncodeIterations(effective uint32) [3]byte {
	stored := effective
	if effective >= IterationThreshold && effective%IterationThreshold == 0 && effective/IterationThreshold <= IterationThreshold {
		stored = effective / IterationThreshold
	}
	return [3]byte{byte(stored >> 16), byte(stored >> 8), byte(stored)}
}

// DecodeIterations reverses EncodeIterations for every count it can
// represent: a stored value at or below the threshold is interpreted as
// scaled and multiplied back up.
func DecodeIterations(stored [3]byte) uint32 {
	val := uint32(stored[0])<<16 | uint32(stored[1])<<8 | uint32(stored[2])
	if val <= IterationThreshold {
		return val * IterationThreshold
	}
	return val
}
