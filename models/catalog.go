package models

// Language identifies a catalog language.
type Language string

const (
	LangBangla  Language = "bn"
	LangEnglish Language = "en"
)

// ParseLanguage normalizes a raw language code, defaulting to Bangla.
func ParseLanguage(raw string) Language {
	if raw == string(LangEnglish) {
		return LangEnglish
	}
	return LangBangla
}

// TestPackage represents a purchasable diagnostic test.
// The ID is stable across both language catalogs, so cart membership and
// per-lab price lookups are language-independent.
type TestPackage struct {
	ID             string         `bson:"id" json:"id"`
	Name           string         `bson:"name" json:"name"`
	Description    string         `bson:"description" json:"description"`
	Price          int            `bson:"price" json:"price"` // base price in BDT
	PriceByLab     map[string]int `bson:"priceByLab,omitempty" json:"priceByLab,omitempty"`
	Category       string         `bson:"category" json:"category"` // General, Diabetes, Heart, Thyroid, Vitamin
	Image          string         `bson:"image" json:"image"`
	TurnaroundTime string         `bson:"turnaroundTime" json:"turnaroundTime"`
}

// LabPartner represents a diagnostic lab offering tests.
type LabPartner struct {
	ID            string  `bson:"id" json:"id"`
	Name          string  `bson:"name" json:"name"`
	Rating        float64 `bson:"rating" json:"rating"`
	Logo          string  `bson:"logo" json:"logo"`
	ServiceCharge int     `bson:"serviceCharge" json:"serviceCharge"` // flat fee, once per booking
}

// Test categories, fixed set.
var TestCategories = []string{"General", "Diabetes", "Heart", "Thyroid", "Vitamin"}
