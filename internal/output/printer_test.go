package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vishal1132/bat/internal/input"
)

func openReader(t *testing.T, content string) *input.OpenedInput {
	t.Helper()
	opened, err := input.FromReader(strings.NewReader(content)).Open(nil)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	return opened
}

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, NoStyles(), Options{})

	if err := p.Print(openReader(t, "one\ntwo\n")); err != nil {
		t.Fatalf("Print() error: %v", err)
	}
	if got := buf.String(); got != "one\ntwo\n" {
		t.Errorf("output = %q, want %q", got, "one\ntwo\n")
	}
}

func TestPrinter_Header(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, NoStyles(), Options{ShowHeader: true})

	in := openReader(t, "body\n")
	if err := p.Print(in); err != nil {
		t.Fatalf("Print() error: %v", err)
	}
	want := "READER\nbody\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrinter_LineNumbers(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, NoStyles(), Options{LineNumbers: true})

	if err := p.Print(openReader(t, "a\nb")); err != nil {
		t.Fatalf("Print() error: %v", err)
	}
	want := "   1  a\n   2  b\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrinter_MissingFinalNewline(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, NoStyles(), Options{})

	if err := p.Print(openReader(t, "no terminator")); err != nil {
		t.Fatalf("Print() error: %v", err)
	}
	if got := buf.String(); got != "no terminator\n" {
		t.Errorf("output = %q, want %q", got, "no terminator\n")
	}
}

func TestPrinter_BinaryNotice(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, NoStyles(), Options{})

	content := string([]byte{0x7F, 'E', 'L', 'F', 0x00, 0x01})
	in, err := input.FromReader(strings.NewReader(content)).WithName("a.out").Open(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Print(in); err != nil {
		t.Fatalf("Print() error: %v", err)
	}
	want := "[binary content in a.out not shown]\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrinter_ShowBinary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, NoStyles(), Options{ShowBinary: true})

	raw := []byte{0x7F, 0x00, 0x01, '\n', 0x02}
	in, err := input.FromReader(bytes.NewReader(raw)).Open(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Print(in); err != nil {
		t.Fatalf("Print() error: %v", err)
	}
	want := append(append([]byte{}, raw...), '\n')
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("output = % X, want % X", buf.Bytes(), want)
	}
}

func TestPrinter_UTF16LENoExtraNewlines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, NoStyles(), Options{})

	// BOM + "a\nb\n" in UTF-16LE; lines already end in 0x0A 0x00 and must
	// not grow an extra single-byte newline.
	raw := []byte{0xFF, 0xFE, 0x61, 0x00, 0x0A, 0x00, 0x62, 0x00, 0x0A, 0x00}
	in, err := input.FromReader(bytes.NewReader(raw)).Open(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Print(in); err != nil {
		t.Fatalf("Print() error: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), raw) {
		t.Errorf("output = % X, want % X", buf.Bytes(), raw)
	}
}

func TestPrinter_EmptyInput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, NoStyles(), Options{ShowHeader: true, LineNumbers: true})

	if err := p.Print(openReader(t, "")); err != nil {
		t.Fatalf("Print() error: %v", err)
	}
	if got := buf.String(); got != "READER\n" {
		t.Errorf("output = %q, want header only", got)
	}
}
