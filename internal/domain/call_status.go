package domain

// CallStatus is the lifecycle state of a call as reported by the telephony platform.
type CallStatus string

const (
	CallStatusPending             CallStatus = "pending"
	CallStatusRegistered          CallStatus = "registered"
	CallStatusOngoing             CallStatus = "ongoing"
	CallStatusEnded               CallStatus = "ended"
	CallStatusNotConnected        CallStatus = "not_connected"
	CallStatusInvalidDestination  CallStatus = "invalid_destination"
	CallStatusPermissionDenied    CallStatus = "telephony_provider_permission_denied"
	CallStatusProviderUnavailable CallStatus = "telephony_provider_unavailable"
	CallStatusSIPRoutingError     CallStatus = "sip_routing_error"
	CallStatusMarkedAsSpam        CallStatus = "marked_as_spam"
	CallStatusUserDeclined        CallStatus = "user_declined"
	CallStatusUnknown             CallStatus = "unknown"
)

func (s CallStatus) String() string { return string(s) }

func (s CallStatus) IsValid() bool {
	switch s {
	case CallStatusPending, CallStatusRegistered, CallStatusOngoing, CallStatusEnded,
		CallStatusNotConnected, CallStatusInvalidDestination, CallStatusPermissionDenied,
		CallStatusProviderUnavailable, CallStatusSIPRoutingError, CallStatusMarkedAsSpam,
		CallStatusUserDeclined, CallStatusUnknown:
		return true
	}
	return false
}

// ParseCallStatus maps a raw remote status onto the enumeration.
// Anything unrecognized, including the empty string, becomes CallStatusUnknown.
func ParseCallStatus(raw string) CallStatus {
	s := CallStatus(raw)
	if s.IsValid() {
		return s
	}
	return CallStatusUnknown
}

// CallDirection tells whether the call was received or placed by the agent.
type CallDirection string

const (
	CallDirectionInbound  CallDirection = "inbound"
	CallDirectionOutbound CallDirection = "outbound"
)

func (d CallDirection) String() string { return string(d) }

func (d CallDirection) IsValid() bool {
	return d == CallDirectionInbound || d == CallDirectionOutbound
}

// ParseCallDirection returns the direction for a raw value, or "" when the
// value is absent or not one of inbound/outbound.
func ParseCallDirection(raw string) CallDirection {
	d := CallDirection(raw)
	if d.IsValid() {
		return d
	}
	return ""
}
