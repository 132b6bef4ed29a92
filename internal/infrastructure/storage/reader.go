package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/maximpopov11/pokeworld/internal/engine"
	"github.com/maximpopov11/pokeworld/pkg/api"
)

// Record is one command read back from a replay.
type Record struct {
	Turn    int
	Command api.Command
}

// Replay is a decoded replay file.
type Replay struct {
	Meta    Meta
	Records []Record
}

// Load reads the replay at path.
func Load(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadReplay(bufio.NewReader(f))
}

// ReadReplay decodes a replay stream.
func ReadReplay(r io.Reader) (*Replay, error) {
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if string(header.Magic[:]) != MagicHeader {
		return nil, ErrBadMagic
	}
	if header.Version != Version2 {
		return nil, fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, header.Version, Version2)
	}

	rp := &Replay{
		Meta: Meta{
			Seed:            header.Seed,
			Timestamp:       header.Timestamp,
			Trainers:        int(header.Trainers),
			EncounterChance: int(header.EncounterChance),
			Strict:          header.Flags&flagStrict != 0,
		},
	}
	species, err := readSpecies(r, int(header.Species))
	if err != nil {
		return nil, err
	}
	rp.Meta.Species = species

	for {
		var ah ActionHeader
		err := binary.Read(r, binary.LittleEndian, &ah)
		if errors.Is(err, io.EOF) {
			return rp, nil
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(rp.Records), err)
		}
		rp.Records = append(rp.Records, Record{
			Turn: int(ah.Turn),
			Command: api.Command{
				Action: api.Action(ah.Action),
				Dx:     int(ah.Dx),
				Dy:     int(ah.Dy),
			},
		})
	}
}

func readSpecies(r io.Reader, n int) ([]string, error) {
	if n == 0 {
		return nil, nil
	}
	out := make([]string, 0, n)
	var size [1]byte
	for k := 0; k < n; k++ {
		if _, err := io.ReadFull(r, size[:]); err != nil {
			return nil, fmt.Errorf("species %d: %w", k, err)
		}
		name := make([]byte, size[0])
		if _, err := io.ReadFull(r, name); err != nil {
			return nil, fmt.Errorf("species %d: %w", k, err)
		}
		out = append(out, string(name))
	}
	return out, nil
}

// Config rebuilds the session configuration the replay was recorded with.
func (rp *Replay) Config() engine.Config {
	cfg := engine.NewConfig()
	cfg.Seed = rp.Meta.Seed
	cfg.Trainers = rp.Meta.Trainers
	cfg.EncounterChance = rp.Meta.EncounterChance
	cfg.Strict = rp.Meta.Strict
	cfg.Creatures = rp.Meta.Species
	return cfg
}

// Input feeds the recorded commands back in order.
func (rp *Replay) Input() *engine.ScriptedInput {
	cmds := make([]api.Command, len(rp.Records))
	for i, rec := range rp.Records {
		cmds[i] = rec.Command
	}
	return engine.NewScriptedInput(cmds...)
}
