package models

import "time"

// Booking statuses, in lifecycle order.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCollected  = "collected"
	BookingStatusProcessing = "processing"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// IsValidBookingStatus reports whether s is one of the lifecycle statuses.
func IsValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCollected,
		BookingStatusProcessing, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking represents a submitted booking record.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	CustomerName   string    `bson:"customerName" json:"customerName"`
	CustomerPhone  string    `bson:"customerPhone" json:"customerPhone"`
	Address        string    `bson:"address" json:"address"`
	Date           string    `bson:"date" json:"date"` // "2006-01-02"
	Time           string    `bson:"time" json:"time"` // slot label
	LabID          string    `bson:"labId" json:"labId"`
	LabName        string    `bson:"labName" json:"labName"`
	TestIDs        []string  `bson:"testIds" json:"testIds"`
	TestNames      []string  `bson:"testNames" json:"testNames"`
	DoctorName     string    `bson:"doctorName,omitempty" json:"doctorName,omitempty"`
	PrescriptionID string    `bson:"prescriptionId,omitempty" json:"prescriptionId,omitempty"`
	Subtotal       int       `bson:"subtotal" json:"subtotal"`
	ServiceCharge  int       `bson:"serviceCharge" json:"serviceCharge"`
	TotalCost      int       `bson:"totalCost" json:"totalCost"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// AdminStats is the aggregate view for the admin dashboard.
type AdminStats struct {
	TotalRevenue    int `bson:"totalRevenue" json:"totalRevenue"`
	TotalBookings   int `bson:"totalBookings" json:"totalBookings"`
	PendingBookings int `bson:"pendingBookings" json:"pendingBookings"`
	ActiveUsers     int `bson:"activeUsers" json:"activeUsers"`
}
