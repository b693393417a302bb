package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AgentAssignment links a person to the call agents working on their behalf.
// Person is the natural key; saving the same person again replaces its agents.
type AgentAssignment struct {
	ID         uuid.UUID
	Person     string
	AgentNames []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AgentNamesDisplay joins the distinct non-empty agent names in their stored order.
func (a AgentAssignment) AgentNamesDisplay() string {
	seen := make(map[string]struct{}, len(a.AgentNames))
	names := make([]string, 0, len(a.AgentNames))
	for _, n := range a.AgentNames {
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	return strings.Join(names, ", ")
}
