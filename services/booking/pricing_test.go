package booking

import (
	"testing"

	"labport/models"

	"github.com/stretchr/testify/assert"
)

func fixtureTests() []models.TestPackage {
	return []models.TestPackage{
		{
			ID:    "1",
			Name:  "Complete Blood Count (CBC)",
			Price: 450,
			PriceByLab: map[string]int{
				"lab_popular": 550,
				"lab_bsmmu":   300,
			},
		},
		{
			ID:    "3",
			Name:  "Lipid Profile",
			Price: 1200,
			PriceByLab: map[string]int{
				"lab_popular": 1400,
			},
		},
	}
}

func TestUnitPriceUsesLabOverride(t *testing.T) {
	tests := fixtureTests()
	assert.Equal(t, 550, UnitPrice(tests[0], "lab_popular"))
	assert.Equal(t, 300, UnitPrice(tests[0], "lab_bsmmu"))
}

func TestUnitPriceFallsBackToBasePrice(t *testing.T) {
	tests := fixtureTests()
	assert.Equal(t, 450, UnitPrice(tests[0], ""))
	assert.Equal(t, 450, UnitPrice(tests[0], "lab_unknown"))
	assert.Equal(t, 1200, UnitPrice(tests[1], "lab_bsmmu"))

	noOverrides := models.TestPackage{ID: "9", Price: 700}
	assert.Equal(t, 700, UnitPrice(noOverrides, "lab_popular"))
}

func TestComputeBillWithLab(t *testing.T) {
	lab := &models.LabPartner{ID: "lab_popular", ServiceCharge: 200}
	bill := ComputeBill(fixtureTests(), lab)

	assert.Equal(t, 1950, bill.Subtotal)
	assert.Equal(t, 200, bill.ServiceCharge)
	assert.Equal(t, 2150, bill.Total)
}

func TestComputeBillWithoutLab(t *testing.T) {
	bill := ComputeBill(fixtureTests(), nil)

	assert.Equal(t, 1650, bill.Subtotal)
	assert.Equal(t, 0, bill.ServiceCharge)
	assert.Equal(t, 1650, bill.Total)
}

func TestComputeBillEmptyCartHasNoServiceCharge(t *testing.T) {
	lab := &models.LabPartner{ID: "lab_popular", ServiceCharge: 200}
	bill := ComputeBill(nil, lab)

	assert.Equal(t, models.Bill{}, bill)
}
