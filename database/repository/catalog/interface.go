// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"labport/models"
)

// CatalogRepository is the read-only lookup of test packages and lab
// partners, keyed by id and exposed per language. Ids are stable across
// languages; only the localized fields differ.
type CatalogRepository interface {
	GetTests(ctx context.Context, lang models.Language) ([]models.TestPackage, error)
	GetLabs(ctx context.Context, lang models.Language) ([]models.LabPartner, error)
	GetTestByID(ctx context.Context, lang models.Language, id string) (*models.TestPackage, error)
	GetLabByID(ctx context.Context, lang models.Language, id string) (*models.LabPartner, error)
}
