// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"labport/models"
	"labport/services/tasks"
	"labport/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func sessionKey(sessionID string) string {
	return utils.SessionCachePrefix + sessionID
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, NewFlowError("session_not_found", "booking session not found or expired")
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.SessionID), data, utils.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

// Initiate creates a new browsing session with an empty cart.
func (s *DefaultBookingSessionService) Initiate(ctx context.Context, lang models.Language) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		Language:  lang,
		Cart:      []string{},
		Step:      models.StepBrowsing,
		CreatedAt: s.now(),
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the session plus everything the presentation layer renders:
// resolved cart items, the selected lab, the bill breakdown, the 7-day
// strip and per-slot availability for the selected date.
func (s *DefaultBookingSessionService) Get(ctx context.Context, sessionID string) (*models.SessionView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, session)
}

func (s *DefaultBookingSessionService) buildView(ctx context.Context, session *models.BookingSession) (*models.SessionView, error) {
	items, err := s.cartItems(ctx, session)
	if err != nil {
		return nil, err
	}

	var selectedLab *models.LabPartner
	if session.Draft.LabID != "" {
		lab, err := s.Catalog.GetLabByID(ctx, session.Language, session.Draft.LabID)
		if err != nil {
			return nil, err
		}
		selectedLab = lab
	}

	now := s.now()
	date := session.Draft.Date
	if date == "" {
		date = now.Format(dateLayout)
	}

	return &models.SessionView{
		Session:     *session,
		Items:       items,
		SelectedLab: selectedLab,
		Bill:        ComputeBill(items, selectedLab),
		Days:        NextSevenDays(now, session.Language),
		Slots:       BuildSlotViews(date, now),
	}, nil
}

func (s *DefaultBookingSessionService) cartItems(ctx context.Context, session *models.BookingSession) ([]models.TestPackage, error) {
	tests, err := s.Catalog.GetTests(ctx, session.Language)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.TestPackage, len(tests))
	for _, t := range tests {
		byID[t.ID] = t
	}
	items := make([]models.TestPackage, 0, len(session.Cart))
	for _, id := range session.Cart {
		if t, ok := byID[id]; ok {
			items = append(items, t)
		}
	}
	return items, nil
}

// syncDraft mirrors the cart into the draft while the flow is open, without
// touching the current step.
func syncDraft(session *models.BookingSession) {
	if session.Step >= models.StepReviewCart {
		session.Draft.TestIDs = append([]string(nil), session.Cart...)
	}
}

func (s *DefaultBookingSessionService) mutateCart(ctx context.Context, sessionID string, mutate func(*models.BookingSession) error) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step > models.StepReviewCart {
		return nil, NewFlowError("cart_locked", "cart edits must happen before or after detail entry")
	}
	if err := mutate(session); err != nil {
		return nil, err
	}
	syncDraft(session)
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// AddTest puts a test into the cart. Duplicates are ignored.
func (s *DefaultBookingSessionService) AddTest(ctx context.Context, sessionID, testID string) (*models.BookingSession, error) {
	return s.mutateCart(ctx, sessionID, func(session *models.BookingSession) error {
		if _, err := s.Catalog.GetTestByID(ctx, session.Language, testID); err != nil {
			return NewFlowError("unknown_test", fmt.Sprintf("test %q is not in the catalog", testID))
		}
		if !session.InCart(testID) {
			session.Cart = append(session.Cart, testID)
		}
		return nil
	})
}

// RemoveTest drops a test from the cart. Removing an absent id is a no-op.
func (s *DefaultBookingSessionService) RemoveTest(ctx context.Context, sessionID, testID string) (*models.BookingSession, error) {
	return s.mutateCart(ctx, sessionID, func(session *models.BookingSession) error {
		kept := session.Cart[:0]
		for _, id := range session.Cart {
			if id != testID {
				kept = append(kept, id)
			}
		}
		session.Cart = kept
		return nil
	})
}

// ToggleTest adds the test when absent and removes it when present.
func (s *DefaultBookingSessionService) ToggleTest(ctx context.Context, sessionID, testID string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.InCart(testID) {
		return s.RemoveTest(ctx, sessionID, testID)
	}
	return s.AddTest(ctx, sessionID, testID)
}

// OpenFlow enters the booking flow at the review step. It always resets to
// step 1, recomputes the default day, and re-syncs the draft's test ids
// from the cart. Previously entered contact fields survive reopening.
func (s *DefaultBookingSessionService) OpenFlow(ctx context.Context, sessionID string) (*models.SessionView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitting {
		return nil, NewFlowError("submitting", "submission in progress")
	}

	now := s.now()
	days := NextSevenDays(now, session.Language)
	defaultDay := PickDefaultDay(days, TimeSlots, now)

	session.Step = models.StepReviewCart
	session.Draft.Date = defaultDay.FullDate
	if session.Draft.Time != "" && !IsSlotAvailable(session.Draft.Date, session.Draft.Time, now) {
		session.Draft.Time = ""
	}
	if session.Draft.LabID == "" {
		labs, err := s.Catalog.GetLabs(ctx, session.Language)
		if err != nil {
			return nil, err
		}
		if len(labs) == 1 {
			session.Draft.LabID = labs[0].ID
		}
	}
	syncDraft(session)

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildView(ctx, session)
}

// SelectLab records the lab choice during cart review.
func (s *DefaultBookingSessionService) SelectLab(ctx context.Context, sessionID, labID string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepReviewCart {
		return nil, NewFlowError("wrong_step", "lab selection happens during cart review")
	}
	if _, err := s.Catalog.GetLabByID(ctx, session.Language, labID); err != nil {
		return nil, NewFlowError("unknown_lab", fmt.Sprintf("lab %q is not a partner", labID))
	}
	session.Draft.LabID = labID
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance moves from cart review to scheduling. The transition is gated on
// a selected lab and a non-empty cart.
func (s *DefaultBookingSessionService) Advance(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepReviewCart {
		return nil, NewFlowError("wrong_step", "can only advance from cart review")
	}
	if len(session.Cart) == 0 {
		return nil, NewFlowError("empty_cart", "add at least one test before continuing")
	}
	if session.Draft.LabID == "" {
		return nil, NewFlowError("no_lab", "select a lab before continuing")
	}
	session.Step = models.StepScheduleAndDetails
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back returns from scheduling to cart review, preserving every entered
// field. Blocked while a submission is pending.
func (s *DefaultBookingSessionService) Back(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitting {
		return nil, NewFlowError("submitting", "submission in progress")
	}
	if session.Step != models.StepScheduleAndDetails {
		return nil, NewFlowError("wrong_step", "can only go back from scheduling")
	}
	session.Step = models.StepReviewCart
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetSchedule updates the chosen day and slot. When the day changes and the
// previously chosen slot is no longer available on the new day, the slot is
// cleared so a stale window can never be submitted.
func (s *DefaultBookingSessionService) SetSchedule(ctx context.Context, sessionID, date, slot string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepScheduleAndDetails {
		return nil, NewFlowError("wrong_step", "scheduling happens on the details step")
	}
	if session.Submitting {
		return nil, NewFlowError("submitting", "submission in progress")
	}

	now := s.now()
	if date != "" {
		if !withinWindow(date, now) {
			return nil, NewFlowError("invalid_date", "date is outside the 7-day window")
		}
		session.Draft.Date = date
		if session.Draft.Time != "" && !IsSlotAvailable(date, session.Draft.Time, now) {
			session.Draft.Time = ""
		}
	}
	if slot != "" {
		if !IsPublishedSlot(slot) {
			return nil, NewFlowError("unknown_slot", fmt.Sprintf("slot %q is not offered", slot))
		}
		if !IsSlotAvailable(session.Draft.Date, slot, now) {
			return nil, NewFlowError("slot_unavailable", "slot is no longer available for the selected day")
		}
		session.Draft.Time = slot
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func withinWindow(date string, now time.Time) bool {
	first := now.Format(dateLayout)
	last := now.AddDate(0, 0, 6).Format(dateLayout)
	return date >= first && date <= last
}

// SetContact updates the personal-details portion of the draft.
func (s *DefaultBookingSessionService) SetContact(ctx context.Context, sessionID string, contact ContactInput) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepScheduleAndDetails {
		return nil, NewFlowError("wrong_step", "contact details belong to the details step")
	}
	if session.Submitting {
		return nil, NewFlowError("submitting", "submission in progress")
	}
	session.Draft.FullName = strings.TrimSpace(contact.FullName)
	session.Draft.PhoneNumber = strings.TrimSpace(contact.PhoneNumber)
	session.Draft.Address = strings.TrimSpace(contact.Address)
	session.Draft.DoctorName = strings.TrimSpace(contact.DoctorName)
	if contact.PrescriptionID != "" {
		session.Draft.PrescriptionID = contact.PrescriptionID
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Confirm validates the completed draft, flips the submitting guard and
// hands the session to the submission queue. Clients poll the session until
// the worker marks it confirmed.
func (s *DefaultBookingSessionService) Confirm(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitting {
		return nil, NewFlowError("submitting", "submission already in progress")
	}
	if session.Step != models.StepScheduleAndDetails {
		return nil, NewFlowError("wrong_step", "confirmation happens on the details step")
	}
	if err := validateDraft(session, s.now()); err != nil {
		return nil, err
	}

	session.Submitting = true
	session.BookingID = uuid.New().String()
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	if s.Queue == nil {
		if _, err := s.FinalizeSubmission(ctx, sessionID); err != nil {
			return nil, err
		}
		return s.loadSession(ctx, sessionID)
	}

	task, err := tasks.NewSubmitBookingTask(tasks.SubmitBookingPayload{SessionID: sessionID})
	if err != nil {
		return nil, fmt.Errorf("failed to build submission task: %w", err)
	}
	if _, err := s.Queue.EnqueueContext(ctx, task); err != nil {
		// Roll the guard back so the user can retry.
		session.Submitting = false
		session.BookingID = ""
		if saveErr := s.saveSession(ctx, session); saveErr != nil {
			utils.GetLogger().Error("Confirm: failed to roll back submitting guard",
				zap.String("sessionID", sessionID), zap.Error(saveErr))
		}
		return nil, fmt.Errorf("failed to enqueue submission: %w", err)
	}
	return session, nil
}

func validateDraft(session *models.BookingSession, now time.Time) error {
	d := session.Draft
	if len(session.Cart) == 0 {
		return NewFlowError("empty_cart", "the cart is empty")
	}
	if d.LabID == "" {
		return NewFlowError("no_lab", "no lab selected")
	}
	if d.FullName == "" || d.PhoneNumber == "" || d.Address == "" {
		return NewFlowError("missing_contact", "full name, phone and address are required")
	}
	if d.Date == "" || d.Time == "" {
		return NewFlowError("missing_schedule", "pick a date and a time slot")
	}
	if !IsSlotAvailable(d.Date, d.Time, now) {
		return NewFlowError("slot_unavailable", "the chosen slot is no longer available")
	}
	return nil
}

// FinalizeSubmission completes a pending submission: it persists the
// booking record and moves the session to the confirmed step. Called by the
// queue worker, or inline when no queue is wired.
func (s *DefaultBookingSessionService) FinalizeSubmission(ctx context.Context, sessionID string) (*models.Booking, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Submitting {
		return nil, NewFlowError("not_submitting", "session has no pending submission")
	}

	items, err := s.cartItems(ctx, session)
	if err != nil {
		return nil, err
	}
	lab, err := s.Catalog.GetLabByID(ctx, session.Language, session.Draft.LabID)
	if err != nil {
		return nil, err
	}
	bill := ComputeBill(items, lab)

	testNames := make([]string, 0, len(items))
	for _, item := range items {
		testNames = append(testNames, item.Name)
	}

	booking := models.Booking{
		ID:             session.BookingID,
		CustomerName:   session.Draft.FullName,
		CustomerPhone:  session.Draft.PhoneNumber,
		Address:        session.Draft.Address,
		Date:           session.Draft.Date,
		Time:           session.Draft.Time,
		LabID:          lab.ID,
		LabName:        lab.Name,
		TestIDs:        append([]string(nil), session.Cart...),
		TestNames:      testNames,
		DoctorName:     session.Draft.DoctorName,
		PrescriptionID: session.Draft.PrescriptionID,
		Subtotal:       bill.Subtotal,
		ServiceCharge:  bill.ServiceCharge,
		TotalCost:      bill.Total,
		Status:         models.BookingStatusPending,
		CreatedAt:      s.now(),
	}
	if err := s.Records.Insert(ctx, booking); err != nil {
		return nil, err
	}

	session.Step = models.StepConfirmed
	session.Submitting = false
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Close discards the draft and returns the session to browsing, optionally
// clearing the cart. Blocked while a submission is in flight.
func (s *DefaultBookingSessionService) Close(ctx context.Context, sessionID string, clearCart bool) error {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Submitting {
		return NewFlowError("submitting", "submission in progress")
	}
	session.Step = models.StepBrowsing
	session.Draft = models.BookingDraft{}
	session.BookingID = ""
	if clearCart {
		session.Cart = []string{}
	}
	return s.saveSession(ctx, session)
}
