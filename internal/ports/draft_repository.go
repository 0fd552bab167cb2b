package ports

import (
	"context"

	"github.com/bnema/chirp/internal/domain"
)

type DraftRepository interface {
	GetByID(ctx context.Context, id domain.DraftID) (domain.Draft, error)
	List(ctx context.Context) ([]domain.Draft, error)
	Save(ctx context.Context, draft domain.Draft) error
	Delete(ctx context.Context, id domain.DraftID) error
}
