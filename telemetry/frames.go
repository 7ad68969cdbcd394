package telemetry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// FrameRecorder appends frame snapshots to a msgpack stream.
// Each record is one self-delimiting msgpack value, so a partial file stays readable.
type FrameRecorder struct {
	file   *os.File
	buf    *bufio.Writer
	enc    *msgpack.Encoder
	frames int
}

// NewFrameRecorder creates the file at path. Returns nil if path is empty (recording disabled).
func NewFrameRecorder(path string) (*FrameRecorder, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating frame recording: %w", err)
	}
	buf := bufio.NewWriter(f)
	enc := msgpack.NewEncoder(buf)
	enc.UseCompactInts(true)

	return &FrameRecorder{file: f, buf: buf, enc: enc}, nil
}

// Record encodes one frame.
func (r *FrameRecorder) Record(frame any) error {
	if r == nil {
		return nil
	}
	if err := r.enc.Encode(frame); err != nil {
		return fmt.Errorf("encoding frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames recorded so far.
func (r *FrameRecorder) Frames() int {
	if r == nil {
		return 0
	}
	return r.frames
}

// Close flushes buffered frames and closes the file.
func (r *FrameRecorder) Close() error {
	if r == nil {
		return nil
	}
	flushErr := r.buf.Flush()
	closeErr := r.file.Close()
	return errors.Join(flushErr, closeErr)
}

// ReadFrames decodes every frame in a recording, calling fn with a decoder positioned
// at each frame. fn decodes the frame into its own type.
func ReadFrames(rd io.Reader, fn func(dec *msgpack.Decoder) error) error {
	dec := msgpack.NewDecoder(bufio.NewReader(rd))
	for i := 0; ; i++ {
		if err := fn(dec); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decoding frame %d: %w", i, err)
		}
	}
}
