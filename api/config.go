package api

import "time"

// Config for api configuration variables.
type Config struct {
	EnableCORS bool
	Listen     string
	// Workers is the maximum of concurrently handled forecast requests.
	Workers int
	// Backlog is the count of forecast requests waiting for a free worker, the rest get 503.
	Backlog int
	// Timeout of a single datasource request.
	Timeout time.Duration
}
