package models

import "time"

type LeadStatus string

const (
	LeadNew        LeadStatus = "new"
	LeadContacted  LeadStatus = "contacted"
	LeadInterested LeadStatus = "interested"
	LeadConverted  LeadStatus = "converted"
	LeadLost       LeadStatus = "lost"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadInterested, LeadConverted, LeadLost:
		return true
	}
	return false
}

type LeadComment struct {
	Text      string    `json:"text"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Lead struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email,omitempty"`
	Source string `json:"source,omitempty"`

	Status   LeadStatus    `json:"status"`
	Comments []LeadComment `json:"comments"`

	// Set when status reaches converted and a customer record was created.
	CustomerID string `json:"customer_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
