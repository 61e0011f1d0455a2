package components

import "time"

// UI component constants
const (
	// NoticeDisplayDuration is how long notices (success, error, info) stay
	// visible before clearing automatically. Loading notices stay until
	// replaced.
	NoticeDisplayDuration = 4 * time.Second
)
