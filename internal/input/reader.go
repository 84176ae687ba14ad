package input

import (
	"bufio"
	"io"
)

// Reader reads an opened input line by line. Construction consumes the first
// line to classify the content; ReadLine replays that line before streaming
// from the source, so no bytes are lost or duplicated.
type Reader struct {
	inner       *bufio.Reader
	firstLine   []byte
	contentType ContentType
}

// NewReader wraps r and eagerly reads its first line for content detection.
// Read errors during the sniff are swallowed: a failed sniff must not abort
// an otherwise readable stream.
func NewReader(r io.Reader) *Reader {
	br := bufio.NewReader(r)

	var firstLine []byte
	readUntil(br, '\n', &firstLine)

	contentType := Detect(firstLine)
	if contentType == ContentUTF16LE {
		// A UTF-16LE '\n' is the pair 0x0A 0x00. The read above stopped at
		// the low byte, so pick up everything through the paired high byte
		// to complete the line. Only valid for ASCII-range characters.
		readUntil(br, 0x00, &firstLine)
	}

	return &Reader{
		inner:       br,
		firstLine:   firstLine,
		contentType: contentType,
	}
}

// FirstLine returns the sniffed first line while it is still pending replay
// by ReadLine. It is empty once drained.
func (r *Reader) FirstLine() []byte { return r.firstLine }

// ContentType returns the classification of the sniffed first line, or
// ContentUnknown when the source produced no data.
func (r *Reader) ContentType() ContentType { return r.contentType }

// ReadLine appends the next line, including its terminator, to *buf and
// reports whether a line was produced. A clean end of stream yields
// (false, nil), and every call after that keeps yielding (false, nil) with
// *buf untouched. For UTF-16LE content each line is extended past the '\n'
// low byte to its paired 0x00 high byte, keeping lines two-byte aligned.
func (r *Reader) ReadLine(buf *[]byte) (bool, error) {
	if len(r.firstLine) > 0 {
		*buf = append(*buf, r.firstLine...)
		r.firstLine = nil
		return true, nil
	}

	n, err := readUntil(r.inner, '\n', buf)
	if err != nil {
		return false, err
	}
	if r.contentType == ContentUTF16LE {
		// Best effort, same as at sniff time.
		readUntil(r.inner, 0x00, buf)
	}
	return n > 0, nil
}

// readUntil appends bytes up to and including delim to *buf. A clean EOF is
// not an error; bytes read before it are still appended.
func readUntil(br *bufio.Reader, delim byte, buf *[]byte) (int, error) {
	chunk, err := br.ReadBytes(delim)
	*buf = append(*buf, chunk...)
	if err == io.EOF {
		err = nil
	}
	return len(chunk), err
}
