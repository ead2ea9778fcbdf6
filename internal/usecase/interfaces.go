package usecase

import (
	"context"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/prompt"
)

// MessageGenerator produces one message from a rendered request.
type MessageGenerator interface {
	Generate(ctx context.Context, req prompt.GenerationRequest) (entity.GeneratedMessage, error)
}

// DraftExporter writes a campaign's drafts somewhere a human can review them.
type DraftExporter interface {
	Export(c *entity.Campaign) (string, error)
}
