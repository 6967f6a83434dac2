package ports

import (
	"context"
	"encoding/json"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
)

const (
	EventVerificationDecided = "verification.decided"
	EventInterestCreated     = "interest.created"
)

// VerificationDecidedEvent notifies downstream consumers (mail, audit)
// that an admin approved or rejected an orphanage.
type VerificationDecidedEvent struct {
	OrphanageID     string                    `json:"orphanage_id"`
	Status          domain.VerificationStatus `json:"status"`
	RejectionReason string                    `json:"rejection_reason,omitempty"`
}

// InterestCreatedEvent notifies downstream consumers that a guest
// expressed interest in adoption or sponsorship.
type InterestCreatedEvent struct {
	SubmissionID string  `json:"submission_id"`
	OrphanageID  string  `json:"orphanage_id"`
	ChildID      *string `json:"child_id,omitempty"`
	InterestType string  `json:"interest_type"`
}

// OutboxEvent is a pending row from the outbox table, relayed to the
// message broker by cmd/relay.
type OutboxEvent struct {
	ID        string
	EventType string
	Payload   json.RawMessage
}

type EventPublisher interface {
	Publish(ctx context.Context, evt OutboxEvent) error
}
