package artifact

import "strings"

// Priority is a work order priority level.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// prioritySynonyms maps upstream priority spellings to canonical levels.
// Lookup is case-insensitive. Unknown strings map to Medium.
var prioritySynonyms = map[string]Priority{
	"critical":  PriorityCritical,
	"emergency": PriorityCritical,
	"high":      PriorityHigh,
	"urgent":    PriorityHigh,
	"medium":    PriorityMedium,
	"normal":    PriorityMedium,
	"low":       PriorityLow,
	"routine":   PriorityLow,
}

// ParsePriority maps an upstream priority string to a canonical level.
// The empty string and anything unrecognized default to Medium, so a work
// order is always renderable.
func ParsePriority(s string) Priority {
	if p, ok := prioritySynonyms[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p
	}
	return PriorityMedium
}
