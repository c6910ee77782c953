package model

import "fmt"

// Freebie is a promotional item owned by one dev and issued by one company.
type Freebie struct {
	ID        int64  `json:"id"`
	ItemName  string `json:"item_name"`
	Value     int    `json:"value"`
	DevID     int64  `json:"dev_id"`
	CompanyID int64  `json:"company_id"`

	// Joined fields (not always populated).
	DevName     string `json:"dev_name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

// Describe returns a one-line description of who owns the freebie and where
// it came from. DevName and CompanyName must be populated.
func (f *Freebie) Describe() string {
	return fmt.Sprintf("%s owns a %s from %s.", f.DevName, f.ItemName, f.CompanyName)
}
