package models

import "time"

// Booking flow steps. Browsing is the implicit state outside the flow.
const (
	StepBrowsing           = 0
	StepReviewCart         = 1
	StepScheduleAndDetails = 2
	StepConfirmed          = 3
)

// BookingDraft is the in-progress booking form. It is (re)initialized when
// the flow opens and discarded when the flow closes.
type BookingDraft struct {
	FullName       string   `json:"fullName"`
	PhoneNumber    string   `json:"phoneNumber"`
	Address        string   `json:"address"`
	Date           string   `json:"date"` // "2006-01-02"
	Time           string   `json:"time"` // e.g. "08:00 AM - 09:00 AM"
	TestIDs        []string `json:"testIds"`
	LabID          string   `json:"labId"`
	DoctorName     string   `json:"doctorName,omitempty"`
	PrescriptionID string   `json:"prescriptionId,omitempty"`
}

// BookingSession holds the cart and flow state between requests. It lives in
// Redis with a TTL and is gone once it expires.
type BookingSession struct {
	SessionID  string       `json:"sessionId"`
	Language   Language     `json:"language"`
	Cart       []string     `json:"cart"` // ordered unique test ids
	Step       int          `json:"step"`
	Submitting bool         `json:"submitting"`
	Draft      BookingDraft `json:"draft"`
	BookingID  string       `json:"bookingId,omitempty"` // set once confirmed
	CreatedAt  time.Time    `json:"createdAt"`
}

// InCart reports whether the test id is already in the cart.
func (s *BookingSession) InCart(testID string) bool {
	for _, id := range s.Cart {
		if id == testID {
			return true
		}
	}
	return false
}

// SessionView is what the presentation layer renders: the session plus the
// derived bill, day strip and per-slot availability for the selected date.
type SessionView struct {
	Session     BookingSession `json:"session"`
	Items       []TestPackage  `json:"items"`
	SelectedLab *LabPartner    `json:"selectedLab,omitempty"`
	Bill        Bill           `json:"bill"`
	Days        []Day          `json:"days"`
	Slots       []SlotView     `json:"slots"`
}
