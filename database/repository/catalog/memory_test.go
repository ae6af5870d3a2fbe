// File: database/repository/catalog/memory_test.go
package catalogRepo

import (
	"context"
	"testing"

	"labport/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCatalogServesBothLanguages(t *testing.T) {
	repo := NewMemoryCatalogRepo()
	ctx := context.Background()

	bn, err := repo.GetTests(ctx, models.LangBangla)
	require.NoError(t, err)
	en, err := repo.GetTests(ctx, models.LangEnglish)
	require.NoError(t, err)

	require.Len(t, bn, 6)
	require.Len(t, en, 6)
	for i := range bn {
		// Ids and prices are language-independent; names are localized.
		assert.Equal(t, bn[i].ID, en[i].ID)
		assert.Equal(t, bn[i].Price, en[i].Price)
		assert.Equal(t, bn[i].PriceByLab, en[i].PriceByLab)
		assert.NotEqual(t, bn[i].Name, en[i].Name)
	}
}

func TestMemoryCatalogLabs(t *testing.T) {
	repo := NewMemoryCatalogRepo()
	ctx := context.Background()

	labs, err := repo.GetLabs(ctx, models.LangEnglish)
	require.NoError(t, err)
	require.Len(t, labs, 4)

	charges := map[string]int{}
	for _, lab := range labs {
		charges[lab.ID] = lab.ServiceCharge
	}
	assert.Equal(t, map[string]int{
		"lab_popular": 200,
		"lab_labaid":  250,
		"lab_birdem":  150,
		"lab_bsmmu":   100,
	}, charges)
}

func TestMemoryCatalogLookups(t *testing.T) {
	repo := NewMemoryCatalogRepo()
	ctx := context.Background()

	test, err := repo.GetTestByID(ctx, models.LangEnglish, "1")
	require.NoError(t, err)
	assert.Equal(t, "Complete Blood Count (CBC)", test.Name)

	_, err = repo.GetTestByID(ctx, models.LangEnglish, "99")
	assert.Error(t, err)

	lab, err := repo.GetLabByID(ctx, models.LangBangla, "lab_popular")
	require.NoError(t, err)
	assert.Equal(t, 200, lab.ServiceCharge)

	_, err = repo.GetLabByID(ctx, models.LangBangla, "lab_nowhere")
	assert.Error(t, err)
}
