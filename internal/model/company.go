package model

// Company issues freebies to devs.
type Company struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	FoundingYear int    `json:"founding_year"`
}
