// File: database/repository/catalog/memory.go
package catalogRepo

import (
	"context"
	"fmt"

	"labport/models"
)

type memoryCatalogRepo struct {
	tests map[models.Language][]models.TestPackage
	labs  map[models.Language][]models.LabPartner
}

// NewMemoryCatalogRepo constructs a CatalogRepository over the static seed
// data, with no database behind it. Used by tests and by deployments that
// run without MongoDB.
func NewMemoryCatalogRepo() CatalogRepository {
	return &memoryCatalogRepo{
		tests: SeedTests(),
		labs:  SeedLabs(),
	}
}

func (r *memoryCatalogRepo) GetTests(_ context.Context, lang models.Language) ([]models.TestPackage, error) {
	tests := make([]models.TestPackage, len(r.tests[lang]))
	copy(tests, r.tests[lang])
	return tests, nil
}

func (r *memoryCatalogRepo) GetLabs(_ context.Context, lang models.Language) ([]models.LabPartner, error) {
	labs := make([]models.LabPartner, len(r.labs[lang]))
	copy(labs, r.labs[lang])
	return labs, nil
}

func (r *memoryCatalogRepo) GetTestByID(_ context.Context, lang models.Language, id string) (*models.TestPackage, error) {
	for _, t := range r.tests[lang] {
		if t.ID == id {
			test := t
			return &test, nil
		}
	}
	return nil, fmt.Errorf("catalog: test %q not found", id)
}

func (r *memoryCatalogRepo) GetLabByID(_ context.Context, lang models.Language, id string) (*models.LabPartner, error) {
	for _, l := range r.labs[lang] {
		if l.ID == id {
			lab := l
			return &lab, nil
		}
	}
	return nil, fmt.Errorf("catalog: lab %q not found", id)
}
