package booking

import (
	"context"
	"time"

	catalogRepo "labport/database/repository/catalog"
	recordsRepo "labport/database/repository/records"
	"labport/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// ContactInput carries the personal-details portion of the booking form.
type ContactInput struct {
	FullName       string `json:"fullName"`
	PhoneNumber    string `json:"phoneNumber"`
	Address        string `json:"address"`
	DoctorName     string `json:"doctorName"`
	PrescriptionID string `json:"prescriptionId"`
}

// BookingSessionService manages the cart and the stateful booking flow.
type BookingSessionService interface {
	Initiate(ctx context.Context, lang models.Language) (*models.BookingSession, error)
	Get(ctx context.Context, sessionID string) (*models.SessionView, error)
	AddTest(ctx context.Context, sessionID, testID string) (*models.BookingSession, error)
	RemoveTest(ctx context.Context, sessionID, testID string) (*models.BookingSession, error)
	ToggleTest(ctx context.Context, sessionID, testID string) (*models.BookingSession, error)
	OpenFlow(ctx context.Context, sessionID string) (*models.SessionView, error)
	SelectLab(ctx context.Context, sessionID, labID string) (*models.BookingSession, error)
	Advance(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SetSchedule(ctx context.Context, sessionID, date, slot string) (*models.BookingSession, error)
	SetContact(ctx context.Context, sessionID string, contact ContactInput) (*models.BookingSession, error)
	Confirm(ctx context.Context, sessionID string) (*models.BookingSession, error)
	FinalizeSubmission(ctx context.Context, sessionID string) (*models.Booking, error)
	Close(ctx context.Context, sessionID string, clearCart bool) error
}

// DefaultBookingSessionService implements BookingSessionService over a
// Redis session store, the catalog, and the booking records repository.
// Queue may be nil, in which case confirmation finalizes inline instead of
// going through the worker.
type DefaultBookingSessionService struct {
	Catalog catalogRepo.CatalogRepository
	Records recordsRepo.RecordsRepository
	Cache   *redis.Client
	Queue   *asynq.Client
	Now     func() time.Time
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
