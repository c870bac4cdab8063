package output

import (
	"context"

	"eventsite/internal/domain/entities"
)

// AddressRepository reads addresses without any viewer-level filtering.
type AddressRepository interface {
	FindByID(ctx context.Context, id uint) (*entities.Address, error)
}

type ViewerRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*entities.Viewer, error)
}
