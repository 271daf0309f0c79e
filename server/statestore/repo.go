package statestore

import "time"

// StateToken records when an OAuth state value was handed out. The token
// itself is the map key; the metadata exists so an expiry policy can be
// applied when the callback arrives.
type StateToken struct {
	CreatedAt time.Time
}

// Repo correlates an OAuth authorization redirect with its eventual
// callback. Issue hands out a fresh single-use token; Consume reports
// whether the presented token was outstanding and removes it either way.
type Repo interface {
	Issue() (string, error)
	Consume(token string) bool
}
