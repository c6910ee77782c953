package model

// Dev is a developer who collects freebies.
type Dev struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
