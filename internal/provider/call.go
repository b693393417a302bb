package provider

// RawCall is a call object from the telephony platform decoded into a generic
// JSON tree. Numbers are kept as json.Number.
type RawCall map[string]any

// CallID returns the remote call identifier, or "" when absent.
func (c RawCall) CallID() string {
	id, _ := c["call_id"].(string)
	return id
}

// CallPage is one page of the remote call listing.
type CallPage struct {
	Calls      []RawCall
	NextCursor string
}
