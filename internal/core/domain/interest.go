package domain

import "time"

type InterestType string

const (
	InterestAdoption    InterestType = "adoption"
	InterestSponsorship InterestType = "sponsorship"
)

// InterestSubmission is a guest-originated adoption or sponsorship lead
// addressed to an orphanage, optionally referencing a specific child.
type InterestSubmission struct {
	ID          string       `json:"id"`
	OrphanageID string       `json:"orphanage_id"`
	ChildID     *string      `json:"child_id"`
	ChildName   *string      `json:"child_name,omitempty"`
	GuestName   string       `json:"guest_name"`
	GuestEmail  string       `json:"guest_email"`
	Type        InterestType `json:"interest_type"`
	Message     string       `json:"message,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
