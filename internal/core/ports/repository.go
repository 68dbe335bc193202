package ports

import (
	"context"

	"github.com/harmoniq-labs/setlist/internal/core/domain"
)

// SetlistRepository persists built setlists.
type SetlistRepository interface {
	Save(ctx context.Context, s domain.Setlist) error
	List(ctx context.Context) ([]domain.Setlist, error)
	GetByID(ctx context.Context, id string) (domain.Setlist, error)
}
