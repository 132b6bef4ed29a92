package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/maximpopov11/pokeworld/pkg/api"
)

const (
	MagicHeader string = `PKRP`
	// Version2 added the species table after the header.
	Version2 uint32 = 2

	maxSpeciesName = 255
)

const flagStrict uint32 = 1 << 0

var (
	ErrBadMagic           = errors.New("not a replay file")
	ErrUnsupportedVersion = errors.New("unsupported replay version")
	ErrClosed             = errors.New("replay writer is closed")
	ErrSpeciesName        = errors.New("species name too long")
)

// ReplayFileHeader is the on-disk header. It has only fixed-size fields so
// binary.Write can encode it in one call. It is followed by Species names,
// each a length byte and the name.
type ReplayFileHeader struct {
	Magic           [4]byte
	Version         uint32
	Seed            int64
	Timestamp       int64
	Trainers        int32
	EncounterChance int32
	Flags           uint32
	Species         uint32
}

// ActionHeader is one recorded player command. The number of records is not
// stored; the stream ends at EOF.
type ActionHeader struct {
	Turn     int32
	Action   uint8
	Dx       int8
	Dy       int8
	Reserved uint8
}

// Meta is what a session needs to regenerate the same world. Maps are never
// stored.
type Meta struct {
	Seed            int64
	Trainers        int
	EncounterChance int
	Strict          bool
	Timestamp       int64

	// Species is the creature list of the session; empty means the default.
	Species []string
}

// Writer appends commands to a replay as they happen. It implements
// engine.Recorder.
type Writer struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closer io.Closer
	count  int
}

// Create starts a replay file at path, replacing any existing one.
func Create(path string, meta Meta) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create replay: %w", err)
	}
	w, err := NewWriter(f, meta)
	if err != nil {
		f.Close()
		return nil, err
	}
	w.closer = f
	return w, nil
}

// NewWriter writes the header to out and returns a writer for the commands.
func NewWriter(out io.Writer, meta Meta) (*Writer, error) {
	if meta.Timestamp == 0 {
		meta.Timestamp = time.Now().Unix()
	}
	header := ReplayFileHeader{
		Version:         Version2,
		Seed:            meta.Seed,
		Timestamp:       meta.Timestamp,
		Trainers:        int32(meta.Trainers),
		EncounterChance: int32(meta.EncounterChance),
		Species:         uint32(len(meta.Species)),
	}
	if meta.Strict {
		header.Flags |= flagStrict
	}
	copy(header.Magic[:], MagicHeader)

	bw := bufio.NewWriter(out)
	if err := binary.Write(bw, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for _, name := range meta.Species {
		if len(name) > maxSpeciesName {
			return nil, fmt.Errorf("%w: %q", ErrSpeciesName, name)
		}
		if err := bw.WriteByte(byte(len(name))); err != nil {
			return nil, fmt.Errorf("failed to write species: %w", err)
		}
		if _, err := bw.WriteString(name); err != nil {
			return nil, fmt.Errorf("failed to write species: %w", err)
		}
	}
	return &Writer{w: bw}, nil
}

// Record appends one command.
func (w *Writer) Record(turn int, cmd api.Command) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return ErrClosed
	}

	ah := ActionHeader{
		Turn:   int32(turn),
		Action: uint8(cmd.Action),
		Dx:     int8(cmd.Dx),
		Dy:     int8(cmd.Dy),
	}
	if err := binary.Write(w.w, binary.LittleEndian, &ah); err != nil {
		return fmt.Errorf("record %s: %w", cmd, err)
	}
	w.count++
	return nil
}

// Count is the number of commands recorded so far.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close flushes the buffer and closes the file, if the writer owns one.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return nil
	}
	err := w.w.Flush()
	w.w = nil
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
