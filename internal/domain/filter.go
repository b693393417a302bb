package domain

import "time"

// CallFilter contains filtering/pagination parameters for call searches.
// Agent is a substring match; Agents matches any of the exact names.
type CallFilter struct {
	Status            *CallStatus
	Direction         *CallDirection
	Agent             *string
	Agents            []string
	Search            *string
	CallFrom          *time.Time // inclusive
	CallTo            *time.Time // exclusive
	MissingTranscript bool
	Limit             int
	Offset            int
}
