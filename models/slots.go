package models

// Day is one entry of the 7-day scheduling window. FullDate is the
// machine-sortable key; the remaining fields are display-only and localized.
type Day struct {
	FullDate  string `json:"fullDate"` // "2006-01-02"
	DayName   string `json:"dayName"`
	DayNumber string `json:"dayNumber"`
	Month     string `json:"month"`
}

// SlotView pairs a published slot with its availability for a given day.
type SlotView struct {
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
}

// Bill is the aggregated cart breakdown for a selected lab.
type Bill struct {
	Subtotal      int `json:"subtotal"`
	ServiceCharge int `json:"serviceCharge"`
	Total         int `json:"total"`
}
