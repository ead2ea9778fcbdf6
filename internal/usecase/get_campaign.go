package usecase

import (
	"context"
	"errors"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type GetCampaignUseCase struct {
	Repo entity.CampaignRepositoryInterface
}

func NewGetCampaignUseCase(repo entity.CampaignRepositoryInterface) *GetCampaignUseCase {
	return &GetCampaignUseCase{Repo: repo}
}

func (uc *GetCampaignUseCase) Execute(ctx context.Context, id string) (*entity.Campaign, error) {
	c, err := uc.Repo.FindByID(ctx, id)
	if errors.Is(err, entity.ErrCampaignNotFound) {
		return nil, &DomainError{Code: CodeNotFound, Message: "campaign not found: " + id, Err: err}
	}
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "failed to load campaign: " + err.Error(), Err: err}
	}
	return c, nil
}
