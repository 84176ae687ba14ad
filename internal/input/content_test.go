package input

import (
	"bytes"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want ContentType
	}{
		{"empty", nil, ContentUnknown},
		{"plain ascii", []byte("#!/bin/bash\n"), ContentUTF8},
		{"utf-8 multibyte", []byte("caf\xc3\xa9\n"), ContentUTF8},
		{"utf-8 bom", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, ContentUTF8BOM},
		{"utf-16le bom", []byte{0xFF, 0xFE, 0x73, 0x00}, ContentUTF16LE},
		{"utf-16be bom", []byte{0xFE, 0xFF, 0x00, 0x73}, ContentUTF16BE},
		{"null byte", []byte{'E', 'L', 'F', 0x00, 0x01}, ContentBinary},
		{"lone null", []byte{0x00}, ContentBinary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.data); got != tt.want {
				t.Errorf("Detect(% X) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestDetect_NullBeyondSniffLenIsText(t *testing.T) {
	data := append(bytes.Repeat([]byte{'a'}, sniffLen), 0x00)
	if got := Detect(data); got != ContentUTF8 {
		t.Errorf("Detect() = %v, want %v", got, ContentUTF8)
	}
}

func TestContentType_Predicates(t *testing.T) {
	if !ContentBinary.IsBinary() || ContentBinary.IsText() {
		t.Error("ContentBinary misclassified")
	}
	for _, c := range []ContentType{ContentUTF8, ContentUTF8BOM, ContentUTF16LE, ContentUTF16BE} {
		if c.IsBinary() || !c.IsText() {
			t.Errorf("%v misclassified", c)
		}
	}
	if ContentUnknown.IsBinary() || ContentUnknown.IsText() {
		t.Error("ContentUnknown should be neither binary nor text")
	}
}
