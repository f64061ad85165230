package application

import (
	"context"

	"pawmart/internal/admin/domain"
)

type AdminRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	// ExistsByUsernameOrEmail backs the registration duplicate check.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Insert(ctx context.Context, a *domain.Admin) error
}

type StatsRepository interface {
	Collect(ctx context.Context) (*domain.Stats, error)
}
