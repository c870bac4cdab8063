package output

import (
	"context"

	"eventsite/internal/domain/entities"
)

// MenuRepository persists website menus. Deleting a menu deletes its
// children.
type MenuRepository interface {
	Create(ctx context.Context, menu *entities.Menu) error
	FindByID(ctx context.Context, id uint) (*entities.Menu, error)
	FindChildren(ctx context.Context, parentID uint) ([]entities.Menu, error)
	Delete(ctx context.Context, id uint) error
	DeleteChildren(ctx context.Context, parentID uint) error
}

type PageRepository interface {
	Create(ctx context.Context, page *entities.Page) error
	FindByURL(ctx context.Context, url string) (*entities.Page, error)
	URLExists(ctx context.Context, url string) (bool, error)
}
