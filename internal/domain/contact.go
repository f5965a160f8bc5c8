package domain

import "context"

// Submission represents one contact form payload. It is a value: validated,
// relayed by email exactly once, and never persisted anywhere.
type Submission struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email_shape"`
	ProjectType string `json:"projectType" validate:"required,project_type"`
	Message     string `json:"message" validate:"required,min=20,max=2000"`
}

// ProjectTypeLabels is the closed set of accepted project types mapped to
// their display labels. Membership in this map is what the project_type
// validator checks, so enum and labels cannot drift apart.
var ProjectTypeLabels = map[string]string{
	"ai_chatbot":       "AI Chatbot",
	"rag_system":       "RAG System",
	"fullstack_webapp": "Full-Stack Web App",
	"other":            "Other",
}

// ProjectTypeLabel maps a project type to its display label, falling back to
// the raw value for anything outside the table.
func ProjectTypeLabel(projectType string) string {
	if label, ok := ProjectTypeLabels[projectType]; ok {
		return label
	}
	return projectType
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// IsAvailable reports whether the mail transport is configured.
	// Callers must check it before reading a request body so a deployment
	// problem is never conflated with bad user input.
	IsAvailable() bool
	// SendContactMessage revalidates and relays a contact form submission
	SendContactMessage(ctx context.Context, sub *Submission) error
}
