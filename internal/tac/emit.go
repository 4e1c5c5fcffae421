package tac

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Emitter is the append-only text sink instructions are written to.
type Emitter interface {
	// Write writes text as is.
	Write(text string) error
	// WriteLine writes text followed by a newline.
	WriteLine(text string) error
	// EmitInstr writes one instruction line: a tab, text, a newline.
	EmitInstr(text string) error
	// EmitLabel writes the label reference L<id> without a newline.
	EmitLabel(id uint64) error
}

// SinkError wraps the I/O failure that stopped emission.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("tac: emit failed: %v", e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

// LabelName spells label id as it appears in instructions.
func LabelName(id uint64) string {
	return "L" + strconv.FormatUint(id, 10)
}

// Writer is an Emitter over an io.Writer. After the first failed write every
// call returns the same *SinkError and writes nothing.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter returns an Emitter writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the sticky error, if any.
func (s *Writer) Err() error { return s.err }

func (s *Writer) Write(text string) error {
	if s.err != nil {
		return s.err
	}
	if _, err := io.WriteString(s.w, text); err != nil {
		s.err = &SinkError{Err: err}
	}
	return s.err
}

func (s *Writer) WriteLine(text string) error {
	return s.Write(text + "\n")
}

func (s *Writer) EmitInstr(text string) error {
	return s.Write("\t" + text + "\n")
}

func (s *Writer) EmitLabel(id uint64) error {
	return s.Write(LabelName(id))
}

// Recorder is an in-memory Emitter.
type Recorder struct {
	Writer
	buf bytes.Buffer
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	r := &Recorder{}
	r.Writer.w = &r.buf
	return r
}

// String returns everything emitted so far.
func (r *Recorder) String() string { return r.buf.String() }

// Lines returns the emitted text split into lines, without the trailing newline.
func (r *Recorder) Lines() []string {
	text := strings.TrimSuffix(r.buf.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Reset drops the recorded text.
func (r *Recorder) Reset() {
	r.buf.Reset()
	r.err = nil
}
