package booking

import "labport/models"

// UnitPrice resolves the effective price of a test for a lab. Labs may
// override the base price; unknown labs (or no override) fall back to it,
// so the lookup always resolves.
func UnitPrice(test models.TestPackage, labID string) int {
	if labID != "" && test.PriceByLab != nil {
		if price, ok := test.PriceByLab[labID]; ok {
			return price
		}
	}
	return test.Price
}

// ComputeBill aggregates a cart into a bill for the selected lab. The flat
// service charge is levied once per booking and never on an empty cart.
func ComputeBill(items []models.TestPackage, lab *models.LabPartner) models.Bill {
	var bill models.Bill
	labID := ""
	if lab != nil {
		labID = lab.ID
	}
	for _, item := range items {
		bill.Subtotal += UnitPrice(item, labID)
	}
	if lab != nil && len(items) > 0 {
		bill.ServiceCharge = lab.ServiceCharge
	}
	bill.Total = bill.Subtotal + bill.ServiceCharge
	return bill
}
