// Package transcript appends one JSON line per processed command to a
// zstd-compressed file. The file is write-only from the program's side.
package transcript

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Entry is one processed input line.
type Entry struct {
	RunID     string `json:"run_id"`
	Seq       int    `json:"seq"`
	Line      string `json:"line"`
	Command   string `json:"command,omitempty"`
	Output    string `json:"output,omitempty"`
	Error     string `json:"error,omitempty"`
	Committed bool   `json:"committed"`
	Robot     string `json:"robot,omitempty"`
	Obstacles int    `json:"obstacles"`
}

type Writer struct {
	mu  sync.Mutex
	c   io.Closer
	enc *zstd.Encoder
	w   *bufio.Writer
}

// Create opens path for appending, creating parent directories.
func Create(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	w, err := newWriter(f, f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

// NewWriter compresses into dst. Closing the Writer does not close dst.
func NewWriter(dst io.Writer) (*Writer, error) {
	return newWriter(dst, nil)
}

func newWriter(dst io.Writer, c io.Closer) (*Writer, error) {
	enc, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("transcript: %w", err)
	}
	return &Writer{
		c:   c,
		enc: enc,
		w:   bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

// Record writes e as one JSON line.
func (w *Writer) Record(e Entry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return fmt.Errorf("transcript: write after close")
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return nil
	}
	err := w.w.Flush()
	if cerr := w.enc.Close(); err == nil {
		err = cerr
	}
	if w.c != nil {
		if cerr := w.c.Close(); err == nil {
			err = cerr
		}
	}
	w.w, w.enc, w.c = nil, nil, nil
	return err
}

// ReadAll decodes a transcript stream. Used by tests and tooling.
func ReadAll(r io.Reader) ([]Entry, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []Entry
	jd := json.NewDecoder(dec)
	for {
		var e Entry
		if err := jd.Decode(&e); err == io.EOF {
			return out, nil
		} else if err != nil {
			return out, err
		}
		out = append(out, e)
	}
}
