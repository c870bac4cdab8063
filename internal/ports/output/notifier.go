package output

import (
	"context"

	"eventsite/internal/domain/entities"
)

// Notifier delivers subtype notifications produced by tracked writes.
type Notifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}

// Transactor runs fn in a single database transaction. Repositories called
// with the context handed to fn take part in it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
