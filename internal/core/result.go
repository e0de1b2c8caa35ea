package core

// Status values carried by operation results. Validation failures are
// reported through these objects and never reach the store; store and
// I/O failures travel as plain errors instead.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusNotFound = "not_found"
	StatusNoChange = "no_change"
)

type AddResult struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

type DeleteResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Deleted int64  `json:"deleted"`
}

type DeleteManyResult struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	Deleted int64    `json:"deleted"`
	Missing []int64  `json:"missing,omitempty"`
	Invalid []string `json:"invalid,omitempty"`
}

type UpdateResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Updated int64  `json:"updated"`
}
