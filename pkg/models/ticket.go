package models

import "github.com/droverhq/drover/ent"

// CreateTicketRequest contains fields for creating a ticket
type CreateTicketRequest struct {
	TicketID    string  `json:"ticket_id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	PhaseID     string  `json:"phase_id"`
	Priority    *string `json:"priority,omitempty"` // LOW, MEDIUM, HIGH or CRITICAL
	ProjectID   *string `json:"project_id,omitempty"`
}

// CreateProjectRequest contains fields for creating a project
type CreateProjectRequest struct {
	Name    string  `json:"name"`
	RepoURL *string `json:"repo_url,omitempty"`
	OwnerID *string `json:"owner_id,omitempty"`
}

// CreateUserRequest contains fields for creating a user
type CreateUserRequest struct {
	Username          string  `json:"username"`
	Email             *string `json:"email,omitempty"`
	GithubAccessToken *string `json:"github_access_token,omitempty"`
}

// TicketResponse wraps a Ticket
type TicketResponse struct {
	*ent.Ticket
}

// TicketsResponse contains a list of tickets
type TicketsResponse struct {
	Tickets []*ent.Ticket `json:"tickets"`
}
