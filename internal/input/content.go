package input

import "bytes"

// ContentType is the classification of an input's leading bytes.
type ContentType int

const (
	// ContentUnknown means nothing was read, so no classification was made.
	ContentUnknown ContentType = iota
	ContentBinary
	ContentUTF8
	ContentUTF8BOM
	ContentUTF16LE
	ContentUTF16BE
)

// sniffLen caps the null-byte scan. Matches the heuristic used by Git and
// most editors.
const sniffLen = 8000

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Detect classifies data by byte-order mark first, then falls back to a
// null-byte scan: a null within the first sniffLen bytes means binary,
// anything else is treated as UTF-8/ASCII text.
func Detect(data []byte) ContentType {
	switch {
	case len(data) == 0:
		return ContentUnknown
	case bytes.HasPrefix(data, bomUTF8):
		return ContentUTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		return ContentUTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return ContentUTF16BE
	}

	sniff := data
	if len(sniff) > sniffLen {
		sniff = sniff[:sniffLen]
	}
	if bytes.IndexByte(sniff, 0x00) >= 0 {
		return ContentBinary
	}
	return ContentUTF8
}

// IsBinary reports whether raw output should be suppressed for this content.
func (c ContentType) IsBinary() bool { return c == ContentBinary }

// IsText reports whether the content can be rendered as text.
func (c ContentType) IsText() bool {
	switch c {
	case ContentUTF8, ContentUTF8BOM, ContentUTF16LE, ContentUTF16BE:
		return true
	}
	return false
}

func (c ContentType) String() string {
	switch c {
	case ContentBinary:
		return "binary"
	case ContentUTF8:
		return "utf-8"
	case ContentUTF8BOM:
		return "utf-8 (BOM)"
	case ContentUTF16LE:
		return "utf-16le"
	case ContentUTF16BE:
		return "utf-16be"
	default:
		return "unknown"
	}
}
