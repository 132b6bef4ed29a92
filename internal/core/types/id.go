package types

import (
	"fmt"
	"strconv"

	"github.com/maximpopov11/pokeworld/internal/core/types/enums"
)

// AgentID is a stable handle into the agent roster.
//
// Bit layout, high to low:
//
//	[ unused (24) | Kind (8) | Index (32) ]
//
// Index is the slot in the roster; Kind is carried along so logs and the
// scheduler snapshot can show what an id refers to without a lookup.
type AgentID uint64

// NilAgentID marks an empty cell or a tile without a player.
const NilAgentID AgentID = 0

const (
	bitsIndex = 32
	bitsKind  = 8

	shiftKind = bitsIndex

	maskIndex = (1 << bitsIndex) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackAgentID builds an id. Kind must not be AgentKindUnknown, otherwise
// index 0 would collide with NilAgentID.
func PackAgentID(kind enums.AgentKind, index uint32) AgentID {
	return AgentID((uint64(kind)&maskKind)<<shiftKind | uint64(index))
}

// Index returns the roster slot.
func (id AgentID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Kind returns the agent kind baked into the id.
func (id AgentID) Kind() enums.AgentKind {
	return enums.AgentKind((id >> shiftKind) & maskKind)
}

func (id AgentID) IsNil() bool {
	return id == NilAgentID
}

func (id AgentID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("[%s:%d]", id.Kind(), id.Index())
}

// MarshalJSON writes the id as a string so browser spectators keep full precision.
func (id AgentID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON accepts both the string and the numeric form.
func (id *AgentID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		*id = NilAgentID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*id = AgentID(v)
	return nil
}
