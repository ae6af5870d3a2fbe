// File: database/repository/records/interface.go
package recordsRepo

import (
	"context"

	"labport/models"
)

// RecordsRepository persists submitted booking records and serves the
// customer and admin dashboards.
type RecordsRepository interface {
	Insert(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByPhone(ctx context.Context, phone string) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Stats(ctx context.Context) (*models.AdminStats, error)
}
