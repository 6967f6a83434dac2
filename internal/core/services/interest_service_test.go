package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/services"
	"github.com/hopehomes/orphanage-platform/backoffice-service/test/mocks"
)

func TestInterestService_Express(t *testing.T) {
	repo := mocks.NewMockInterestRepository()
	svc := services.NewInterestService(repo)

	childID := "child-1"
	submission := domain.InterestSubmission{
		OrphanageID: "orphanage-1",
		ChildID:     &childID,
		GuestName:   "Nadia",
		GuestEmail:  "nadia@example.com",
		Type:        domain.InterestAdoption,
		Message:     "We would love to meet Omar",
	}
	if err := svc.Express(context.Background(), submission); err != nil {
		t.Fatalf("express interest failed: %v", err)
	}

	if len(repo.CreateCalls) != 1 {
		t.Fatalf("expected 1 create call, got %d", len(repo.CreateCalls))
	}
	created := repo.CreateCalls[0]
	if created.ID == "" {
		t.Error("expected a generated submission id")
	}

	// the outbox payload is written in the same transaction as the
	// submission itself
	if len(repo.OutboxPayloads) != 1 {
		t.Fatalf("expected 1 outbox payload, got %d", len(repo.OutboxPayloads))
	}
	var event ports.InterestCreatedEvent
	if err := json.Unmarshal(repo.OutboxPayloads[0], &event); err != nil {
		t.Fatalf("outbox payload is not valid JSON: %v", err)
	}
	if event.SubmissionID != created.ID {
		t.Errorf("event submission id = %s, want %s", event.SubmissionID, created.ID)
	}
	if event.OrphanageID != "orphanage-1" || event.InterestType != "adoption" {
		t.Errorf("unexpected event contents: %+v", event)
	}
	if event.ChildID == nil || *event.ChildID != "child-1" {
		t.Errorf("expected child id carried into event, got %v", event.ChildID)
	}
}

func TestInterestService_ExpressValidation(t *testing.T) {
	tests := []struct {
		name       string
		submission domain.InterestSubmission
	}{
		{"missing_orphanage", domain.InterestSubmission{GuestName: "Nadia", GuestEmail: "n@example.com", Type: domain.InterestAdoption}},
		{"missing_guest_name", domain.InterestSubmission{OrphanageID: "o1", GuestEmail: "n@example.com", Type: domain.InterestAdoption}},
		{"missing_guest_email", domain.InterestSubmission{OrphanageID: "o1", GuestName: "Nadia", Type: domain.InterestAdoption}},
		{"missing_type", domain.InterestSubmission{OrphanageID: "o1", GuestName: "Nadia", GuestEmail: "n@example.com"}},
		{"bogus_type", domain.InterestSubmission{OrphanageID: "o1", GuestName: "Nadia", GuestEmail: "n@example.com", Type: "fostering"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockInterestRepository()
			svc := services.NewInterestService(repo)

			err := svc.Express(context.Background(), tt.submission)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			if len(repo.CreateCalls) != 0 {
				t.Error("invalid submission must not reach the repository")
			}
		})
	}
}

func TestInterestService_SponsorshipNeedsNoChild(t *testing.T) {
	repo := mocks.NewMockInterestRepository()
	svc := services.NewInterestService(repo)

	err := svc.Express(context.Background(), domain.InterestSubmission{
		OrphanageID: "orphanage-1",
		GuestName:   "Karim",
		GuestEmail:  "karim@example.com",
		Type:        domain.InterestSponsorship,
	})
	if err != nil {
		t.Fatalf("sponsorship without a child failed: %v", err)
	}
}

func TestInterestService_ListMine(t *testing.T) {
	repo := mocks.NewMockInterestRepository()
	svc := services.NewInterestService(repo)
	ctx := context.Background()

	for _, orphanageID := range []string{"orphanage-1", "orphanage-1", "orphanage-2"} {
		err := svc.Express(ctx, domain.InterestSubmission{
			OrphanageID: orphanageID,
			GuestName:   "Guest",
			GuestEmail:  "guest@example.com",
			Type:        domain.InterestSponsorship,
		})
		if err != nil {
			t.Fatalf("express interest failed: %v", err)
		}
	}

	mine, err := svc.ListMine(ctx, "orphanage-1")
	if err != nil {
		t.Fatalf("list submissions failed: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("expected 2 submissions for orphanage-1, got %d", len(mine))
	}
}
