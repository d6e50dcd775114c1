package bbqr

// Assemble reassembles a set of parts that all share the same
// (Encoding, FileType, Total) into their original encoded payload, in
// strict index order. Missing or duplicate indices are reassembly
// errors; the caller is responsible for buffering parts until the set
// is contiguous before calling Assemble.
func Assemble(parts []Part) (Encoding, FileType, string, error) {
	if len(parts) == 0 {
		return 0, 0, "", newErr(KindInvalidArgument, "no parts given")
	}

	total := parts[0].Total
	encoding := parts[0].Encoding
	fileType := parts[0].FileType
	seen := make([]bool, total)
	slots := make([]string, total)

	for _, p := range parts {
		if p.Total != total || p.Encoding != encoding || p.FileType != fileType {
			return 0, 0, "", newErr(KindReassembly, "parts disagree on encoding/file_type/total")
		}
		if p.Index < 0 || p.Index >= total {
			return 0, 0, "", newErr(KindReassembly, "part index %d out of range [0,%d)", p.Index, total)
		}
		if seen[p.Index] {
			return 0, 0, "", newErr(KindReassembly, "duplicate part index %d", p.Index)
		}
		seen[p.Index] = true
		slots[p.Index] = p.Payload
	}

	for i, ok := range seen {
		if !ok {
			return 0, 0, "", newErr(KindReassembly, "missing part index %d of %d", i, total)
		}
	}

	out := make([]byte, 0)
	for _, s := range slots {
		out = append(out, s...)
	}
	return encoding, fileType, string(out), nil
}
