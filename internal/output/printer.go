// Package output renders opened inputs as plain text: optional file
// headers, optional line numbers, and a notice in place of binary content.
package output

import (
	"fmt"
	"io"

	"github.com/vishal1132/bat/internal/input"
)

// Options control how an input is rendered.
type Options struct {
	ShowHeader  bool
	LineNumbers bool
	ShowBinary  bool // print binary content instead of a notice
}

// Printer streams opened inputs to a writer.
type Printer struct {
	w      io.Writer
	styles Styles
	opts   Options
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, styles Styles, opts Options) *Printer {
	return &Printer{w: w, styles: styles, opts: opts}
}

// Print renders one opened input to completion. The reader's content sniff
// decides between the text path and the binary notice.
func (p *Printer) Print(in *input.OpenedInput) error {
	if p.opts.ShowHeader {
		if summary := in.Description.Summary(); summary != "" {
			if _, err := fmt.Fprintln(p.w, p.styles.Header.Render(summary)); err != nil {
				return err
			}
		}
	}

	if in.Reader.ContentType().IsBinary() && !p.opts.ShowBinary {
		notice := fmt.Sprintf("[binary content in %s not shown]", noticeName(in))
		_, err := fmt.Fprintln(p.w, p.styles.Notice.Render(notice))
		return err
	}

	var buf []byte
	lineNum := 0
	for {
		buf = buf[:0]
		ok, err := in.Reader.ReadLine(&buf)
		if err != nil {
			return fmt.Errorf("reading %s: %w", noticeName(in), err)
		}
		if !ok {
			return nil
		}
		lineNum++

		if p.opts.LineNumbers {
			num := p.styles.LineNum.Render(fmt.Sprintf("%4d", lineNum))
			if _, err := io.WriteString(p.w, num+"  "); err != nil {
				return err
			}
		}
		if _, err := p.w.Write(buf); err != nil {
			return err
		}
		if !hasTerminator(buf) {
			// Final line without a terminator.
			if _, err := io.WriteString(p.w, "\n"); err != nil {
				return err
			}
		}
	}
}

// hasTerminator reports whether the line already ends in a newline,
// accounting for the UTF-16LE two-byte form 0x0A 0x00.
func hasTerminator(line []byte) bool {
	n := len(line)
	if n == 0 {
		return false
	}
	if line[n-1] == '\n' {
		return true
	}
	return n >= 2 && line[n-2] == '\n' && line[n-1] == 0x00
}

func noticeName(in *input.OpenedInput) string {
	if name := in.Description.Name(); name != "" {
		return name
	}
	return "input"
}
