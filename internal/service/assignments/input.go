package assignments

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
)

const (
	maxPersonLen = 200
	maxAgents    = 50
)

// SaveInput assigns a set of agents to a person, replacing any previous set.
type SaveInput struct {
	Person string
	Agents []string
}

// Validate checks all fields and collects all errors. Blank agent names are
// ignored; an agent listed twice is rejected.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	person := strings.TrimSpace(i.Person)
	if person == "" {
		errs = append(errs, domain.FieldError{Field: "person", Message: "required"})
	}
	if utf8.RuneCountInString(person) > maxPersonLen {
		errs = append(errs, domain.FieldError{Field: "person", Message: "max 200 characters"})
	}

	agents := i.agentNames()
	if len(agents) > maxAgents {
		errs = append(errs, domain.FieldError{Field: "agents", Message: "max 50 agents"})
	}
	seen := make(map[string]struct{}, len(agents))
	for _, a := range agents {
		if _, ok := seen[a]; ok {
			errs = append(errs, domain.FieldError{
				Field:   "agents",
				Message: fmt.Sprintf("agent %q is assigned twice", a),
			})
			continue
		}
		seen[a] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// agentNames returns the trimmed non-blank agent names in input order.
func (i SaveInput) agentNames() []string {
	names := make([]string, 0, len(i.Agents))
	for _, a := range i.Agents {
		if a = strings.TrimSpace(a); a != "" {
			names = append(names, a)
		}
	}
	return names
}
