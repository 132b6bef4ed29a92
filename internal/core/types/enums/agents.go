package enums

import "strings"

// AgentKind selects the movement policy of an agent.
type AgentKind uint8

const (
	AgentKindUnknown AgentKind = iota
	AgentKindPlayer
	AgentKindRival
	AgentKindHiker
	AgentKindRoamer
	AgentKindPacer
	AgentKindWanderer
	AgentKindStationary
)

var agentKindToString = map[AgentKind]string{
	AgentKindPlayer:     "PLAYER",
	AgentKindRival:      "RIVAL",
	AgentKindHiker:      "HIKER",
	AgentKindRoamer:     "ROAMER",
	AgentKindPacer:      "PACER",
	AgentKindWanderer:   "WANDERER",
	AgentKindStationary: "STATIONARY",
}

var agentKindStringToKind = map[string]AgentKind{
	"PLAYER":     AgentKindPlayer,
	"RIVAL":      AgentKindRival,
	"HIKER":      AgentKindHiker,
	"ROAMER":     AgentKindRoamer,
	"PACER":      AgentKindPacer,
	"WANDERER":   AgentKindWanderer,
	"STATIONARY": AgentKindStationary,
}

func (k AgentKind) String() string {
	if val, ok := agentKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsTrainer reports whether the kind is a non-player agent.
func (k AgentKind) IsTrainer() bool {
	return k >= AgentKindRival && k <= AgentKindStationary
}

// ParseAgentKind converts a config/debug name into a kind.
func ParseAgentKind(s string) AgentKind {
	if val, ok := agentKindStringToKind[strings.ToUpper(s)]; ok {
		return val
	}
	return AgentKindUnknown
}
