package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"groomly/config"
	"groomly/models"
	"groomly/services/availability"
	"groomly/utils"

	"github.com/google/uuid"
)

// StartSession creates a wizard session, loading the client's pets, the
// active service catalog and the stylist list concurrently. In reschedule
// mode the target appointment's selections are resolved against those lists
// and the session opens at the date/time step; a lookup miss leaves the
// selection empty rather than failing the flow.
func (s *DefaultBookingSessionService) StartSession(clientID, rescheduleID string) (*models.BookingSession, error) {
	session := models.BookingSession{
		SessionID: uuid.New().String(),
		ClientID:  clientID,
		Mode:      models.BookingModeNew,
		Step:      models.StepSelectPet,
	}

	var (
		wg                             sync.WaitGroup
		petsErr, servicesErr, listsErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		session.Pets, petsErr = s.PetRepo.GetByOwner(clientID)
	}()
	go func() {
		defer wg.Done()
		session.Services, servicesErr = s.CatalogRepo.GetAll(true)
	}()
	go func() {
		defer wg.Done()
		var stylists []models.User
		stylists, listsErr = s.UserRepo.GetStylists()
		for _, st := range stylists {
			session.Stylists = append(session.Stylists, st.PublicStylist())
		}
	}()
	wg.Wait()

	for _, err := range []error{petsErr, servicesErr, listsErr} {
		if err != nil {
			return nil, fmt.Errorf("failed to load booking references: %w", err)
		}
	}

	if rescheduleID != "" {
		if err := s.enterRescheduleMode(&session, rescheduleID); err != nil {
			return nil, err
		}
	}

	if err := s.sessions().Save(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

// enterRescheduleMode validates the target appointment and pre-fills the
// draft from the already-loaded reference lists.
func (s *DefaultBookingSessionService) enterRescheduleMode(session *models.BookingSession, rescheduleID string) error {
	appt, err := s.AppointmentRepo.GetByID(rescheduleID)
	if err != nil {
		return &utils.NotFoundError{Message: fmt.Sprintf("appointment %s not found", rescheduleID)}
	}
	if appt.ClientID != session.ClientID {
		return &utils.NotFoundError{Message: fmt.Sprintf("appointment %s not found", rescheduleID)}
	}
	if appt.Status != models.AppointmentPending {
		return &utils.ValidationError{Message: "only pending appointments can be rescheduled"}
	}

	session.Mode = models.BookingModeReschedule
	session.RescheduleID = rescheduleID
	session.Step = models.StepSelectDateTime

	for i := range session.Pets {
		if session.Pets[i].ID == appt.PetID {
			session.Draft.Pet = &session.Pets[i]
			break
		}
	}
	for i := range session.Services {
		if session.Services[i].ID == appt.ServiceID {
			session.Draft.Service = &session.Services[i]
			break
		}
	}
	for i := range session.Stylists {
		if session.Stylists[i].ID == appt.StylistID {
			session.Draft.Stylist = &session.Stylists[i]
			break
		}
	}
	return nil
}

func (s *DefaultBookingSessionService) GetSession(sessionID, clientID string) (*models.BookingSession, error) {
	return s.loadSession(sessionID, clientID)
}

func (s *DefaultBookingSessionService) SelectPet(sessionID, clientID, petID string) (*models.BookingSession, error) {
	session, err := s.loadSession(sessionID, clientID)
	if err != nil {
		return nil, err
	}

	var pet *models.Pet
	for i := range session.Pets {
		if session.Pets[i].ID == petID {
			pet = &session.Pets[i]
			break
		}
	}
	if pet == nil {
		return nil, &utils.ValidationError{Message: "selected pet is not in your pet list"}
	}

	session.Draft.Pet = pet
	if err := s.sessions().Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) SelectService(sessionID, clientID, serviceID string) (*models.BookingSession, error) {
	session, err := s.loadSession(sessionID, clientID)
	if err != nil {
		return nil, err
	}

	var service *models.GroomService
	for i := range session.Services {
		if session.Services[i].ID == serviceID {
			service = &session.Services[i]
			break
		}
	}
	if service == nil {
		return nil, &utils.ValidationError{Message: "selected service is not available"}
	}

	session.Draft.Service = service
	if err := s.sessions().Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) SelectStylist(sessionID, clientID, stylistID string) (*models.BookingSession, error) {
	session, err := s.loadSession(sessionID, clientID)
	if err != nil {
		return nil, err
	}

	var stylist *models.StylistDTO
	for i := range session.Stylists {
		if session.Stylists[i].ID == stylistID {
			stylist = &session.Stylists[i]
			break
		}
	}
	if stylist == nil {
		return nil, &utils.ValidationError{Message: "selected stylist is not available"}
	}

	session.Draft.Stylist = stylist
	session.Draft.Date = ""
	session.Draft.Slot = nil
	session.Availability = nil
	if err := s.sessions().Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetDate records the chosen date and resolves that stylist's availability.
// The fetch is tagged with the session's next generation number before the
// slow work starts; the result is applied only if no newer fetch was issued
// while this one ran, so a stale response never overwrites a fresh one.
func (s *DefaultBookingSessionService) SetDate(sessionID, clientID, date string) (*models.BookingSession, error) {
	session, err := s.loadSession(sessionID, clientID)
	if err != nil {
		return nil, err
	}
	if session.Draft.Stylist == nil {
		return nil, &utils.ValidationError{Message: "select a stylist before choosing a date"}
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, &utils.ValidationError{Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}

	stylistID := session.Draft.Stylist.ID
	session.FetchGen++
	gen := session.FetchGen
	session.Draft.Date = date
	session.Draft.Slot = nil
	session.Availability = nil
	if err := s.sessions().Save(session); err != nil {
		return nil, err
	}

	var (
		wg       sync.WaitGroup
		rules    []models.ScheduleRule
		appts    []models.Appointment
		rulesErr error
		apptsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		rules, rulesErr = s.ScheduleRepo.GetByStylist(stylistID)
	}()
	go func() {
		defer wg.Done()
		appts, apptsErr = s.AppointmentRepo.GetByStylistAndDate(stylistID, date)
	}()
	wg.Wait()

	if rulesErr != nil {
		return nil, fmt.Errorf("failed to load schedule rules: %w", rulesErr)
	}
	if apptsErr != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", apptsErr)
	}

	slots := availability.ResolveSlots(rules, appts, stylistID, date, config.AppConfig.SlotDurationMinutes)

	// Re-read the session: another SetDate may have issued a newer fetch
	// while this one was resolving.
	session, err = s.loadSession(sessionID, clientID)
	if err != nil {
		return nil, err
	}
	if session.FetchGen != gen {
		return session, nil
	}

	session.Availability = slots
	if err := s.sessions().Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) SelectSlot(sessionID, clientID, start string) (*models.BookingSession, error) {
	session, err := s.loadSession(sessionID, clientID)
	if err != nil {
		return nil, err
	}

	startTime, err := models.ParseTimeOfDay(start)
	if err != nil {
		return nil, &utils.ValidationError{Message: fmt.Sprintf("invalid slot time %q", start)}
	}

	var chosen *models.Slot
	for i := range session.Availability {
		if session.Availability[i].Start == startTime {
			chosen = &session.Availability[i]
			break
		}
	}
	if chosen == nil {
		return nil, &utils.ValidationError{Message: "selected slot is not in the offered list"}
	}
	if !chosen.Available {
		return nil, &utils.ValidationError{Message: "selected slot is already taken"}
	}

	session.Draft.Slot = chosen
	if err := s.sessions().Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) SetNotes(sessionID, clientID, notes string) (*models.BookingSession, error) {
	session, err := s.loadSession(sessionID, clientID)
	if err != nil {
		return nil, err
	}
	session.Draft.Notes = notes
	if err := s.sessions().Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// stepComplete reports whether the step's required selection has been made,
// returning the alert shown when it has not.
func stepComplete(session *models.BookingSession) (bool, string) {
	switch session.Step {
	case models.StepSelectPet:
		return session.Draft.Pet != nil, "select a pet to continue"
	case models.StepSelectService:
		return session.Draft.Service != nil, "select a service to continue"
	case models.StepSelectStylist:
		return session.Draft.Stylist != nil, "select a stylist to continue"
	case models.StepSelectDateTime:
		return session.Draft.Date != "" && session.Draft.Slot != nil, "select a date and time to continue"
	}
	return false, "nothing further to confirm"
}

// Advance moves the wizard forward one step. An incomplete selection yields
// a ValidationError and leaves the step unchanged.
func (s *DefaultBookingSessionService) Advance(sessionID, clientID string) (*models.BookingSession, error) {
	session, err := s.loadSession(sessionID, clientID)
	if err != nil {
		return nil, err
	}
	if session.Step >= models.StepConfirm {
		return nil, &utils.ValidationError{Message: "already on the confirmation step"}
	}
	if ok, alert := stepComplete(session); !ok {
		return nil, &utils.ValidationError{Message: alert}
	}

	session.Step++
	if err := s.sessions().Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves the wizard one step back. Backing out of the first reachable
// step (SelectPet in a new booking, SelectDateTime in a reschedule) ends
// the session and returns nil.
func (s *DefaultBookingSessionService) Back(sessionID, clientID string) (*models.BookingSession, error) {
	session, err := s.loadSession(sessionID, clientID)
	if err != nil {
		return nil, err
	}

	first := models.StepSelectPet
	if session.Mode == models.BookingModeReschedule {
		first = models.StepSelectDateTime
	}
	if session.Step <= first {
		if err := s.sessions().Delete(sessionID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	session.Step--
	if err := s.sessions().Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Confirm submits the draft. New bookings insert an appointment under the
// repository's atomic overlap check; reschedules move the target appointment
// under the same check. The session is deleted only on success, so a
// conflict leaves the draft intact.
func (s *DefaultBookingSessionService) Confirm(sessionID, clientID string) (*models.Appointment, error) {
	session, err := s.loadSession(sessionID, clientID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirm {
		return nil, &utils.ValidationError{Message: "complete all steps before confirming"}
	}
	draft := session.Draft
	if draft.Pet == nil || draft.Service == nil || draft.Stylist == nil || draft.Date == "" || draft.Slot == nil {
		return nil, &utils.ValidationError{Message: "booking selection is incomplete"}
	}

	ctx := context.Background()

	if session.Mode == models.BookingModeReschedule {
		if err := s.AppointmentRepo.RescheduleConditional(ctx, session.RescheduleID, draft.Date, draft.Slot.Start, draft.Slot.End); err != nil {
			return nil, err
		}
		appt, err := s.AppointmentRepo.GetByID(session.RescheduleID)
		if err != nil {
			return nil, err
		}
		go s.NotificationSvc.NotifyAppointmentRescheduled(appt)

		if err := s.sessions().Delete(sessionID); err != nil {
			utils.GetLogger().Warn("failed to delete booking session after reschedule")
		}
		return appt, nil
	}

	now := time.Now()
	appt := &models.Appointment{
		ID:        uuid.New().String(),
		PetID:     draft.Pet.ID,
		PetName:   draft.Pet.Name,
		ServiceID: draft.Service.ID,
		StylistID: draft.Stylist.ID,
		ClientID:  clientID,
		Date:      draft.Date,
		Start:     draft.Slot.Start,
		End:       draft.Slot.End,
		Status:    models.AppointmentPending,
		Notes:     draft.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.AppointmentRepo.CreateConditional(ctx, appt); err != nil {
		return nil, err
	}
	go s.NotificationSvc.NotifyAppointmentCreated(appt)

	if err := s.sessions().Delete(sessionID); err != nil {
		utils.GetLogger().Warn("failed to delete booking session after confirm")
	}
	return appt, nil
}

func (s *DefaultBookingSessionService) CancelSession(sessionID, clientID string) error {
	if _, err := s.loadSession(sessionID, clientID); err != nil {
		return err
	}
	return s.sessions().Delete(sessionID)
}
