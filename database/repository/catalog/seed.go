// File: database/repository/catalog/seed.go
package catalogRepo

import "labport/models"

// Static bilingual catalog. The Bangla and English entries for one id differ
// only in localized fields; prices and lab overrides are shared.

var testsBN = []models.TestPackage{
	{
		ID:          "1",
		Name:        "কমপ্লিট ব্লাড কাউন্ট (CBC)",
		Description: "রক্তের সার্বিক অবস্থা এবং সংক্রমণ বা রক্তস্বল্পতা নির্ণয়ের জন্য।",
		Price:       450,
		PriceByLab: map[string]int{
			"lab_popular": 550,
			"lab_labaid":  600,
			"lab_birdem":  400,
			"lab_bsmmu":   300,
		},
		Category:       "General",
		Image:          "https://picsum.photos/id/10/400/300",
		TurnaroundTime: "১২ ঘন্টা",
	},
	{
		ID:          "2",
		Name:        "ডায়াবেটিস চেকআপ (HbA1c)",
		Description: "গত ৩ মাসের গড় ব্লাড সুগার নির্ণয়।",
		Price:       850,
		PriceByLab: map[string]int{
			"lab_popular": 950,
			"lab_labaid":  1000,
			"lab_birdem":  700,
			"lab_bsmmu":   600,
		},
		Category:       "Diabetes",
		Image:          "https://picsum.photos/id/20/400/300",
		TurnaroundTime: "২৪ ঘন্টা",
	},
	{
		ID:          "3",
		Name:        "লিপিড প্রোফাইল",
		Description: "কোলেস্টেরল এবং হার্টের ঝুঁকি বোঝার জন্য।",
		Price:       1200,
		PriceByLab: map[string]int{
			"lab_popular": 1400,
			"lab_labaid":  1500,
			"lab_birdem":  1000,
			"lab_bsmmu":   800,
		},
		Category:       "Heart",
		Image:          "https://picsum.photos/id/30/400/300",
		TurnaroundTime: "২৪ ঘন্টা",
	},
	{
		ID:          "4",
		Name:        "থাইরয়েড প্রোফাইল (T3, T4, TSH)",
		Description: "থাইরয়েড হরমোনের ভারসাম্য পরীক্ষার জন্য।",
		Price:       1500,
		PriceByLab: map[string]int{
			"lab_popular": 1800,
			"lab_labaid":  2000,
			"lab_birdem":  1200,
			"lab_bsmmu":   1000,
		},
		Category:       "Thyroid",
		Image:          "https://picsum.photos/id/40/400/300",
		TurnaroundTime: "৪৮ ঘন্টা",
	},
	{
		ID:          "5",
		Name:        "ভিটামিন ডি টেস্ট",
		Description: "হাড়ের শক্তি এবং ইমিউন সিস্টেমের জন্য।",
		Price:       2500,
		PriceByLab: map[string]int{
			"lab_popular": 3000,
			"lab_labaid":  3200,
			"lab_birdem":  2200,
			"lab_bsmmu":   1800,
		},
		Category:       "Vitamin",
		Image:          "https://picsum.photos/id/50/400/300",
		TurnaroundTime: "৩ দিন",
	},
	{
		ID:          "6",
		Name:        "কিডনি ফাংশন টেস্ট",
		Description: "কিডনির কার্যকারিতা (Creatinine, Urea) যাচাই।",
		Price:       900,
		PriceByLab: map[string]int{
			"lab_popular": 1100,
			"lab_labaid":  1200,
			"lab_birdem":  800,
			"lab_bsmmu":   600,
		},
		Category:       "General",
		Image:          "https://picsum.photos/id/60/400/300",
		TurnaroundTime: "১০ ঘন্টা",
	},
}

var testsEN = []models.TestPackage{
	{
		ID:          "1",
		Name:        "Complete Blood Count (CBC)",
		Description: "To assess overall blood health and detect infection or anemia.",
		Price:       450,
		PriceByLab: map[string]int{
			"lab_popular": 550,
			"lab_labaid":  600,
			"lab_birdem":  400,
			"lab_bsmmu":   300,
		},
		Category:       "General",
		Image:          "https://picsum.photos/id/10/400/300",
		TurnaroundTime: "12 Hours",
	},
	{
		ID:          "2",
		Name:        "Diabetes Checkup (HbA1c)",
		Description: "Determines average blood sugar over the last 3 months.",
		Price:       850,
		PriceByLab: map[string]int{
			"lab_popular": 950,
			"lab_labaid":  1000,
			"lab_birdem":  700,
			"lab_bsmmu":   600,
		},
		Category:       "Diabetes",
		Image:          "https://picsum.photos/id/20/400/300",
		TurnaroundTime: "24 Hours",
	},
	{
		ID:          "3",
		Name:        "Lipid Profile",
		Description: "To understand cholesterol levels and heart risk.",
		Price:       1200,
		PriceByLab: map[string]int{
			"lab_popular": 1400,
			"lab_labaid":  1500,
			"lab_birdem":  1000,
			"lab_bsmmu":   800,
		},
		Category:       "Heart",
		Image:          "https://picsum.photos/id/30/400/300",
		TurnaroundTime: "24 Hours",
	},
	{
		ID:          "4",
		Name:        "Thyroid Profile (T3, T4, TSH)",
		Description: "To check thyroid hormone balance.",
		Price:       1500,
		PriceByLab: map[string]int{
			"lab_popular": 1800,
			"lab_labaid":  2000,
			"lab_birdem":  1200,
			"lab_bsmmu":   1000,
		},
		Category:       "Thyroid",
		Image:          "https://picsum.photos/id/40/400/300",
		TurnaroundTime: "48 Hours",
	},
	{
		ID:          "5",
		Name:        "Vitamin D Test",
		Description: "For bone strength and immune system.",
		Price:       2500,
		PriceByLab: map[string]int{
			"lab_popular": 3000,
			"lab_labaid":  3200,
			"lab_birdem":  2200,
			"lab_bsmmu":   1800,
		},
		Category:       "Vitamin",
		Image:          "https://picsum.photos/id/50/400/300",
		TurnaroundTime: "3 Days",
	},
	{
		ID:          "6",
		Name:        "Kidney Function Test",
		Description: "Checks kidney function (Creatinine, Urea).",
		Price:       900,
		PriceByLab: map[string]int{
			"lab_popular": 1100,
			"lab_labaid":  1200,
			"lab_birdem":  800,
			"lab_bsmmu":   600,
		},
		Category:       "General",
		Image:          "https://picsum.photos/id/60/400/300",
		TurnaroundTime: "10 Hours",
	},
}

var labsBN = []models.LabPartner{
	{ID: "lab_popular", Name: "পপুলার ডায়াগনস্টিক সেন্টার লিঃ", Rating: 4.8, Logo: "https://picsum.photos/id/100/100/100", ServiceCharge: 200},
	{ID: "lab_labaid", Name: "ল্যাবএইড ডায়াগনস্টিক সেন্টার", Rating: 4.9, Logo: "https://picsum.photos/id/101/100/100", ServiceCharge: 250},
	{ID: "lab_birdem", Name: "বারডেম জেনারেল হাসপাতাল", Rating: 4.7, Logo: "https://picsum.photos/id/102/100/100", ServiceCharge: 150},
	{ID: "lab_bsmmu", Name: "বিএসএমএমইউ (পিজি হাসপাতাল)", Rating: 4.6, Logo: "https://picsum.photos/id/103/100/100", ServiceCharge: 100},
}

var labsEN = []models.LabPartner{
	{ID: "lab_popular", Name: "Popular Diagnostic Centre Ltd.", Rating: 4.8, Logo: "https://picsum.photos/id/100/100/100", ServiceCharge: 200},
	{ID: "lab_labaid", Name: "Labaid Diagnostics Center", Rating: 4.9, Logo: "https://picsum.photos/id/101/100/100", ServiceCharge: 250},
	{ID: "lab_birdem", Name: "BIRDEM General Hospital", Rating: 4.7, Logo: "https://picsum.photos/id/102/100/100", ServiceCharge: 150},
	{ID: "lab_bsmmu", Name: "BSMMU (PG)", Rating: 4.6, Logo: "https://picsum.photos/id/103/100/100", ServiceCharge: 100},
}

// SeedTests returns the full test catalog keyed by language.
func SeedTests() map[models.Language][]models.TestPackage {
	return map[models.Language][]models.TestPackage{
		models.LangBangla:  testsBN,
		models.LangEnglish: testsEN,
	}
}

// SeedLabs returns the full lab catalog keyed by language.
func SeedLabs() map[models.Language][]models.LabPartner {
	return map[models.Language][]models.LabPartner{
		models.LangBangla:  labsBN,
		models.LangEnglish: labsEN,
	}
}
