package retell

import "github.com/heartmarshall/callhistory-backend/internal/provider"

// listResponse is the paginated envelope of POST /v2/list-calls.
type listResponse struct {
	Calls      []provider.RawCall `json:"calls"`
	NextCursor string             `json:"next_cursor"`
}
