package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/ticket"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/models"
)

// TicketService manages ticket lifecycle and the diagnostic clone-readiness
// chain (ticket → project → owner → github access token).
type TicketService struct {
	client    *ent.Client
	publisher *events.Publisher
	logger    *slog.Logger
}

// NewTicketService creates a new TicketService. publisher may be nil,
// in which case ticket creation is not announced.
func NewTicketService(client *ent.Client, publisher *events.Publisher) *TicketService {
	return &TicketService{
		client:    client,
		publisher: publisher,
		logger:    slog.Default(),
	}
}

func validPriority(p string) bool {
	switch p {
	case "LOW", "MEDIUM", "HIGH", "CRITICAL":
		return true
	}
	return false
}

// CreateTicket creates a new ticket
func (s *TicketService) CreateTicket(httpCtx context.Context, req models.CreateTicketRequest) (*ent.Ticket, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.PhaseID == "" {
		return nil, NewValidationError("phase_id", "required")
	}
	if req.Priority != nil && !validPriority(*req.Priority) {
		return nil, NewValidationError("priority", "invalid: must be LOW, MEDIUM, HIGH or CRITICAL")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	ticketID := req.TicketID
	if ticketID == "" {
		ticketID = uuid.New().String()
	}

	builder := s.client.Ticket.Create().
		SetID(ticketID).
		SetTitle(req.Title).
		SetPhaseID(req.PhaseID)

	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.Priority != nil {
		builder.SetPriority(ticket.Priority(*req.Priority))
	}
	if req.ProjectID != nil {
		builder.SetProjectID(*req.ProjectID)
	}

	tkt, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishTicketCreated(ctx, events.TicketCreatedPayload{
			TicketID: tkt.ID,
			Title:    tkt.Title,
			PhaseID:  tkt.PhaseID,
		}); err != nil {
			s.logger.Warn("Failed to publish ticket.created", "ticket_id", tkt.ID, "error", err)
		}
	}

	return tkt, nil
}

// GetTicket retrieves a ticket by ID
func (s *TicketService) GetTicket(ctx context.Context, ticketID string) (*ent.Ticket, error) {
	tkt, err := s.client.Ticket.Get(ctx, ticketID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return tkt, nil
}

// ListTickets retrieves tickets, optionally filtered by status and phase
func (s *TicketService) ListTickets(ctx context.Context, status, phaseID string) ([]*ent.Ticket, error) {
	query := s.client.Ticket.Query()

	if status != "" {
		query = query.Where(ticket.StatusEQ(ticket.Status(status)))
	}
	if phaseID != "" {
		query = query.Where(ticket.PhaseIDEQ(phaseID))
	}

	tickets, err := query.Order(ent.Asc(ticket.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return tickets, nil
}

// UpdateTicketStatus updates a ticket's status
func (s *TicketService) UpdateTicketStatus(ctx context.Context, ticketID, status string) error {
	switch status {
	case "open", "in_progress", "done":
	default:
		return NewValidationError("status", "invalid: must be open, in_progress or done")
	}

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.Ticket.UpdateOneID(ticketID).
		SetStatus(ticket.Status(status)).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update ticket status: %w", err)
	}

	return nil
}

// UpdateTicketPhase moves a ticket to a new workflow phase
func (s *TicketService) UpdateTicketPhase(ctx context.Context, ticketID, phaseID string) error {
	if phaseID == "" {
		return NewValidationError("phase_id", "required")
	}

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.Ticket.UpdateOneID(ticketID).
		SetPhaseID(phaseID).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update ticket phase: %w", err)
	}

	return nil
}

// CloneReady reports whether a recovery agent spawned for this ticket could
// clone the project repository. The full chain must hold: the ticket links a
// project, the project links an owner, and the owner has a github access
// token. The returned reason names the first broken link.
func (s *TicketService) CloneReady(ctx context.Context, ticketID string) (bool, string, error) {
	tkt, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return false, "", err
	}

	if tkt.ProjectID == nil || *tkt.ProjectID == "" {
		return false, "ticket has no project", nil
	}

	project, err := s.client.Project.Get(ctx, *tkt.ProjectID)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, "project not found", nil
		}
		return false, "", fmt.Errorf("failed to get project: %w", err)
	}

	if project.RepoURL == nil || *project.RepoURL == "" {
		return false, "project has no repo url", nil
	}
	if project.OwnerID == nil || *project.OwnerID == "" {
		return false, "project has no owner", nil
	}

	owner, err := s.client.User.Get(ctx, *project.OwnerID)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, "project owner not found", nil
		}
		return false, "", fmt.Errorf("failed to get project owner: %w", err)
	}

	if owner.GithubAccessToken == nil || *owner.GithubAccessToken == "" {
		return false, "project owner has no github access token", nil
	}

	return true, "", nil
}
