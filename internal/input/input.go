// Package input provides a uniform abstraction over heterogeneous byte
// sources: ordinary files, standard input, the compiled-in theme preview
// snippet, and arbitrary caller-supplied readers. Every source opens into
// the same line-oriented Reader with a one-time content-type sniff.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrIsDirectory reports that a path given as an ordinary-file input
// resolved to a directory. It is distinct from open failures so callers
// can render a more specific message.
var ErrIsDirectory = errors.New("is a directory")

type kind int

const (
	kindOrdinaryFile kind = iota
	kindStdin
	kindThemePreview
	kindCustomReader
)

// Metadata carries caller-supplied overrides that influence how an input is
// described without changing what is read.
type Metadata struct {
	UserProvidedName string
}

// Input is a single-use builder describing where to read bytes from. It is
// configured with the With* methods and consumed by Open; a consumed Input
// must not be opened again.
type Input struct {
	kind     kind
	path     string
	reader   io.Reader
	metadata Metadata
	desc     *Description
}

// OrdinaryFile creates an input reading from the file at path. The file is
// not opened until Open is called.
func OrdinaryFile(path string) *Input {
	return &Input{kind: kindOrdinaryFile, path: path}
}

// Stdin creates an input reading from standard input. The actual stream is
// injected at Open time.
func Stdin() *Input {
	return &Input{kind: kindStdin}
}

// ThemePreview creates an input over the compiled-in theme preview snippet.
// It needs no external file and opening it cannot fail.
func ThemePreview() *Input {
	return &Input{kind: kindThemePreview}
}

// FromReader creates an input over an arbitrary byte stream. The input
// takes ownership of r.
func FromReader(r io.Reader) *Input {
	return &Input{kind: kindCustomReader, reader: r}
}

// IsStdin reports whether the input reads from standard input.
func (in *Input) IsStdin() bool { return in.kind == kindStdin }

// WithName sets a user-provided name that overrides the derived
// description. An empty name clears the override.
func (in *Input) WithName(name string) *Input {
	in.metadata.UserProvidedName = name
	return in
}

// WithDescription sets an explicit description that takes precedence over
// all derivation. Nil clears it.
func (in *Input) WithDescription(d *Description) *Input {
	in.desc = d
	return in
}

// Description resolves how the input should be referred to: an explicit
// description wins, then a user-provided name labelled as a file, then a
// default derived from the input kind.
func (in *Input) Description() Description {
	if in.desc != nil {
		return *in.desc
	}
	if in.metadata.UserProvidedName != "" {
		return NewDescription(in.metadata.UserProvidedName).WithKind("File")
	}
	switch in.kind {
	case kindOrdinaryFile:
		return NewDescription(in.path).WithKind("File")
	case kindStdin:
		return NewDescription("STDIN")
	case kindThemePreview:
		return NewDescription("")
	default:
		return NewDescription("READER")
	}
}

// OpenedKind remembers which variant an OpenedInput came from, without the
// source handle.
type OpenedKind int

const (
	OpenedOrdinaryFile OpenedKind = iota
	OpenedStdin
	OpenedThemePreview
	OpenedCustomReader
)

// IsThemePreview reports whether the input came from the compiled-in theme
// preview snippet, for consumers that special-case it.
func (k OpenedKind) IsThemePreview() bool { return k == OpenedThemePreview }

// OpenedInput is a live input: resolved kind, metadata, the final
// description, and the line reader over the source.
type OpenedInput struct {
	Kind        OpenedKind
	Path        string // set for ordinary files
	Metadata    Metadata
	Reader      *Reader
	Description Description

	closer io.Closer
}

// Close releases the underlying source, if it holds one. Safe to call for
// every kind.
func (o *OpenedInput) Close() error {
	if o.closer == nil {
		return nil
	}
	c := o.closer
	o.closer = nil
	return c.Close()
}

// Open consumes the input and produces an OpenedInput streaming from the
// resolved source. The stdin argument supplies the actual standard-input
// stream for inputs created with Stdin; other kinds ignore it. Ownership of
// the source moves into the returned reader.
func (in *Input) Open(stdin io.Reader) (*OpenedInput, error) {
	description := in.Description()

	switch in.kind {
	case kindStdin:
		return &OpenedInput{
			Kind:        OpenedStdin,
			Metadata:    in.metadata,
			Reader:      NewReader(stdin),
			Description: description,
		}, nil

	case kindOrdinaryFile:
		f, err := os.Open(in.path)
		if err != nil {
			return nil, fmt.Errorf("'%s': %w", in.path, err)
		}
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("'%s': %w", in.path, err)
		}
		if info.IsDir() {
			f.Close()
			return nil, fmt.Errorf("'%s': %w", in.path, ErrIsDirectory)
		}
		return &OpenedInput{
			Kind:        OpenedOrdinaryFile,
			Path:        in.path,
			Metadata:    in.metadata,
			Reader:      NewReader(f),
			Description: description,
			closer:      f,
		}, nil

	case kindThemePreview:
		return &OpenedInput{
			Kind:        OpenedThemePreview,
			Metadata:    in.metadata,
			Reader:      NewReader(bytes.NewReader(themePreview)),
			Description: description,
		}, nil

	default: // custom reader
		r := in.reader
		in.reader = nil
		closer, _ := r.(io.Closer)
		return &OpenedInput{
			Kind:        OpenedCustomReader,
			Metadata:    in.metadata,
			Reader:      NewReader(r),
			Description: description,
			closer:      closer,
		}, nil
	}
}
