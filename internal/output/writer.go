package output

import (
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes rendered chunks to a file descriptor using writev, so a
// line number and its line body go out in one syscall. It implements
// io.Writer.
type Writer struct {
	fd int
}

// NewWriter creates a Writer over the given file, normally os.Stdout.
func NewWriter(f *os.File) *Writer {
	return &Writer{fd: int(f.Fd())}
}

func (w *Writer) Write(p []byte) (int, error) {
	if err := w.WriteVec(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteVec writes the buffers in order with scatter-gather I/O. Partial
// writes resume from the first unwritten byte.
func (w *Writer) WriteVec(bufs ...[]byte) error {
	iovs := make([][]byte, 0, len(bufs))
	for _, b := range bufs {
		if len(b) > 0 {
			iovs = append(iovs, b)
		}
	}

	for len(iovs) > 0 {
		n, err := unix.Writev(w.fd, iovs)
		if err != nil {
			return err
		}
		for n > 0 {
			if n >= len(iovs[0]) {
				n -= len(iovs[0])
				iovs = iovs[1:]
			} else {
				iovs[0] = iovs[0][n:]
				n = 0
			}
		}
	}
	return nil
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
