package calls

import (
	"strings"
	"time"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
)

// maxAgents caps the agent names accepted by one list request.
const maxAgents = 50

// ListInput holds the parameters for listing calls. Empty strings mean
// "no filter". From and To are RFC 3339 timestamps or YYYY-MM-DD dates; a
// date-only To includes the whole day.
type ListInput struct {
	Status            string
	Direction         string
	Agent             string
	Agents            []string
	Search            string
	From              string
	To                string
	MissingTranscript bool
	Limit             int
	Offset            int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != "" && !domain.CallStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Direction != "" && !domain.CallDirection(i.Direction).IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be inbound or outbound"})
	}
	if len(i.Search) > 200 {
		errs = append(errs, domain.FieldError{Field: "search", Message: "max 200 characters"})
	}
	if len(i.Agents) > maxAgents {
		errs = append(errs, domain.FieldError{Field: "agents", Message: "max 50 agents"})
	}

	from, fromErr := parseBound(i.From, false)
	if fromErr != nil {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must be YYYY-MM-DD or RFC 3339"})
	}
	to, toErr := parseBound(i.To, true)
	if toErr != nil {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be YYYY-MM-DD or RFC 3339"})
	}
	if from != nil && to != nil && !from.Before(*to) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be after from"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// filter converts a validated input into a repository filter.
func (i ListInput) filter() domain.CallFilter {
	f := domain.CallFilter{
		MissingTranscript: i.MissingTranscript,
		Limit:             i.Limit,
		Offset:            i.Offset,
	}
	if i.Status != "" {
		s := domain.CallStatus(i.Status)
		f.Status = &s
	}
	if i.Direction != "" {
		d := domain.CallDirection(i.Direction)
		f.Direction = &d
	}
	if agent := strings.TrimSpace(i.Agent); agent != "" {
		f.Agent = &agent
	}
	for _, a := range i.Agents {
		if a = strings.TrimSpace(a); a != "" {
			f.Agents = append(f.Agents, a)
		}
	}
	if search := strings.TrimSpace(i.Search); search != "" {
		f.Search = &search
	}
	f.CallFrom, _ = parseBound(i.From, false)
	f.CallTo, _ = parseBound(i.To, true)
	return f
}

// parseBound parses a date range bound. A date-only upper bound moves to the
// start of the next day so that the range stays half-open.
func parseBound(raw string, upper bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, err
	}
	if upper {
		t = t.AddDate(0, 0, 1)
	}
	return &t, nil
}
