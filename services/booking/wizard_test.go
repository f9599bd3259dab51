package booking

import (
	"context"
	"errors"
	"testing"

	"groomly/models"
	"groomly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentRepo struct {
	appts map[string]*models.Appointment

	// slotTaken makes the conditional writes fail as if another booking
	// won the slot.
	slotTaken bool
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	appt, ok := f.appts[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) CreateConditional(ctx context.Context, appt *models.Appointment) error {
	if f.slotTaken {
		return &utils.ConflictError{Message: "the selected slot is no longer available"}
	}
	if f.appts == nil {
		f.appts = make(map[string]*models.Appointment)
	}
	f.appts[appt.ID] = appt
	return nil
}

func (f *fakeAppointmentRepo) RescheduleConditional(ctx context.Context, id, date string, start, end models.TimeOfDay) error {
	appt, ok := f.appts[id]
	if !ok {
		return &utils.NotFoundError{Message: "appointment not found"}
	}
	if appt.Status != models.AppointmentPending {
		return &utils.ConflictError{Message: "appointment is no longer pending"}
	}
	if f.slotTaken {
		return &utils.ConflictError{Message: "the selected slot is no longer available"}
	}
	appt.Date = date
	appt.Start = start
	appt.End = end
	return nil
}

func (f *fakeAppointmentRepo) GetByStylistAndDate(stylistID, date string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) GetByClient(clientID string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) GetByStylist(stylistID string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) Update(appt *models.Appointment) error { return nil }

func (f *fakeAppointmentRepo) GetUnfinishedBefore(date string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) GetUpcoming(from, to string) ([]models.Appointment, error) {
	return nil, nil
}

func referenceSession() *models.BookingSession {
	return &models.BookingSession{
		SessionID: "s-1",
		ClientID:  "client-1",
		Mode:      models.BookingModeNew,
		Pets: []models.Pet{
			{ID: "pet-1", OwnerID: "client-1", Name: "Rocky"},
		},
		Services: []models.GroomService{
			{ID: "svc-1", Name: "Full groom", DurationMinutes: 60, Active: true},
		},
		Stylists: []models.StylistDTO{
			{ID: "stylist-1", Name: "Ana"},
		},
	}
}

func TestStepComplete(t *testing.T) {
	session := referenceSession()

	session.Step = models.StepSelectPet
	ok, alert := stepComplete(session)
	assert.False(t, ok)
	assert.NotEmpty(t, alert)

	session.Draft.Pet = &session.Pets[0]
	ok, _ = stepComplete(session)
	assert.True(t, ok)

	session.Step = models.StepSelectService
	ok, _ = stepComplete(session)
	assert.False(t, ok)
	session.Draft.Service = &session.Services[0]
	ok, _ = stepComplete(session)
	assert.True(t, ok)

	session.Step = models.StepSelectStylist
	ok, _ = stepComplete(session)
	assert.False(t, ok)
	session.Draft.Stylist = &session.Stylists[0]
	ok, _ = stepComplete(session)
	assert.True(t, ok)

	session.Step = models.StepSelectDateTime
	ok, _ = stepComplete(session)
	assert.False(t, ok)
	session.Draft.Date = "2024-06-10"
	ok, _ = stepComplete(session)
	assert.False(t, ok, "date alone is not enough")
	session.Draft.Slot = &models.Slot{
		Start:     models.MustTimeOfDay("10:00"),
		End:       models.MustTimeOfDay("11:00"),
		Available: true,
	}
	ok, _ = stepComplete(session)
	assert.True(t, ok)
}

func TestEnterRescheduleModePrefillsDraft(t *testing.T) {
	svc := &DefaultBookingSessionService{
		AppointmentRepo: &fakeAppointmentRepo{appts: map[string]*models.Appointment{
			"appt-1": {
				ID:        "appt-1",
				PetID:     "pet-1",
				ServiceID: "svc-1",
				StylistID: "stylist-1",
				ClientID:  "client-1",
				Date:      "2024-06-10",
				Status:    models.AppointmentPending,
			},
		}},
	}

	session := referenceSession()
	require.NoError(t, svc.enterRescheduleMode(session, "appt-1"))

	assert.Equal(t, models.BookingModeReschedule, session.Mode)
	assert.Equal(t, "appt-1", session.RescheduleID)
	assert.Equal(t, models.StepSelectDateTime, session.Step)
	require.NotNil(t, session.Draft.Pet)
	assert.Equal(t, "pet-1", session.Draft.Pet.ID)
	require.NotNil(t, session.Draft.Service)
	assert.Equal(t, "svc-1", session.Draft.Service.ID)
	require.NotNil(t, session.Draft.Stylist)
	assert.Equal(t, "stylist-1", session.Draft.Stylist.ID)
}

func TestEnterRescheduleModeSilentLookupMiss(t *testing.T) {
	// The appointment references a pet and stylist absent from the loaded
	// lists; those selections stay empty and the flow continues.
	svc := &DefaultBookingSessionService{
		AppointmentRepo: &fakeAppointmentRepo{appts: map[string]*models.Appointment{
			"appt-1": {
				ID:        "appt-1",
				PetID:     "pet-gone",
				ServiceID: "svc-1",
				StylistID: "stylist-gone",
				ClientID:  "client-1",
				Status:    models.AppointmentPending,
			},
		}},
	}

	session := referenceSession()
	require.NoError(t, svc.enterRescheduleMode(session, "appt-1"))

	assert.Nil(t, session.Draft.Pet)
	require.NotNil(t, session.Draft.Service)
	assert.Nil(t, session.Draft.Stylist)
	assert.Equal(t, models.StepSelectDateTime, session.Step)
}

func TestEnterRescheduleModeRejectsNonPending(t *testing.T) {
	svc := &DefaultBookingSessionService{
		AppointmentRepo: &fakeAppointmentRepo{appts: map[string]*models.Appointment{
			"appt-1": {
				ID:       "appt-1",
				ClientID: "client-1",
				Status:   models.AppointmentConfirmed,
			},
		}},
	}

	session := referenceSession()
	err := svc.enterRescheduleMode(session, "appt-1")
	require.Error(t, err)

	var validationErr *utils.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestEnterRescheduleModeHidesForeignAppointment(t *testing.T) {
	svc := &DefaultBookingSessionService{
		AppointmentRepo: &fakeAppointmentRepo{appts: map[string]*models.Appointment{
			"appt-1": {
				ID:       "appt-1",
				ClientID: "someone-else",
				Status:   models.AppointmentPending,
			},
		}},
	}

	session := referenceSession()
	err := svc.enterRescheduleMode(session, "appt-1")
	require.Error(t, err)

	var notFoundErr *utils.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestEnterRescheduleModeUnknownAppointment(t *testing.T) {
	svc := &DefaultBookingSessionService{
		AppointmentRepo: &fakeAppointmentRepo{appts: map[string]*models.Appointment{}},
	}

	session := referenceSession()
	err := svc.enterRescheduleMode(session, "no-such-id")
	require.Error(t, err)

	var notFoundErr *utils.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

type memorySessionStore struct {
	sessions map[string]*models.BookingSession
}

func newMemorySessionStore(sessions ...*models.BookingSession) *memorySessionStore {
	store := &memorySessionStore{sessions: make(map[string]*models.BookingSession)}
	for _, s := range sessions {
		copied := *s
		store.sessions[s.SessionID] = &copied
	}
	return store
}

func (m *memorySessionStore) Load(sessionID string) (*models.BookingSession, error) {
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, &utils.NotFoundError{Message: "booking session not found or expired"}
	}
	copied := *session
	return &copied, nil
}

func (m *memorySessionStore) Save(session *models.BookingSession) error {
	copied := *session
	m.sessions[session.SessionID] = &copied
	return nil
}

func (m *memorySessionStore) Delete(sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

type silentNotifier struct{}

func (silentNotifier) NotifyAppointmentCreated(*models.Appointment)     {}
func (silentNotifier) NotifyAppointmentConfirmed(*models.Appointment)   {}
func (silentNotifier) NotifyAppointmentCancelled(*models.Appointment)   {}
func (silentNotifier) NotifyAppointmentRescheduled(*models.Appointment) {}
func (silentNotifier) RecordReminder(*models.Appointment) error         { return nil }
func (silentNotifier) ListForStylist(string) ([]models.StylistNotification, error) {
	return nil, nil
}
func (silentNotifier) UnreadCount(string) (int64, error) { return 0, nil }
func (silentNotifier) MarkRead(string, string) error     { return nil }
func (silentNotifier) MarkAllRead(string) error          { return nil }

// completeSession returns a reference session whose draft satisfies every
// step, parked on the given step.
func completeSession(step models.BookingStep) *models.BookingSession {
	session := referenceSession()
	session.Step = step
	session.Draft.Pet = &session.Pets[0]
	session.Draft.Service = &session.Services[0]
	session.Draft.Stylist = &session.Stylists[0]
	session.Draft.Date = "2024-06-10"
	session.Draft.Slot = &models.Slot{
		Start:     models.MustTimeOfDay("10:00"),
		End:       models.MustTimeOfDay("11:00"),
		Available: true,
	}
	return session
}

func TestAdvanceRequiresCompleteStep(t *testing.T) {
	session := referenceSession()
	session.Step = models.StepSelectPet
	store := newMemorySessionStore(session)
	svc := &DefaultBookingSessionService{Sessions: store}

	_, err := svc.Advance("s-1", "client-1")
	var validationErr *utils.ValidationError
	require.ErrorAs(t, err, &validationErr)

	stored, _ := store.Load("s-1")
	assert.Equal(t, models.StepSelectPet, stored.Step, "step unchanged after rejection")

	_, err = svc.SelectPet("s-1", "client-1", "pet-1")
	require.NoError(t, err)

	advanced, err := svc.Advance("s-1", "client-1")
	require.NoError(t, err)
	assert.Equal(t, models.StepSelectService, advanced.Step)

	stored, _ = store.Load("s-1")
	assert.Equal(t, models.StepSelectService, stored.Step, "step change is persisted")
}

func TestBackEndsSessionAtFirstStep(t *testing.T) {
	session := referenceSession()
	session.Step = models.StepSelectPet
	store := newMemorySessionStore(session)
	svc := &DefaultBookingSessionService{Sessions: store}

	ended, err := svc.Back("s-1", "client-1")
	require.NoError(t, err)
	assert.Nil(t, ended)

	_, err = store.Load("s-1")
	var notFound *utils.NotFoundError
	assert.ErrorAs(t, err, &notFound, "session deleted on back-out")
}

func TestBackEndsRescheduleAtDateTimeStep(t *testing.T) {
	session := completeSession(models.StepSelectDateTime)
	session.Mode = models.BookingModeReschedule
	session.RescheduleID = "appt-1"
	store := newMemorySessionStore(session)
	svc := &DefaultBookingSessionService{Sessions: store}

	ended, err := svc.Back("s-1", "client-1")
	require.NoError(t, err)
	assert.Nil(t, ended)

	_, err = store.Load("s-1")
	var notFound *utils.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestConfirmCreatesAppointmentAndEndsSession(t *testing.T) {
	store := newMemorySessionStore(completeSession(models.StepConfirm))
	repo := &fakeAppointmentRepo{}
	svc := &DefaultBookingSessionService{
		Sessions:        store,
		AppointmentRepo: repo,
		NotificationSvc: silentNotifier{},
	}

	appt, err := svc.Confirm("s-1", "client-1")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentPending, appt.Status)
	assert.Equal(t, "pet-1", appt.PetID)
	assert.Equal(t, "stylist-1", appt.StylistID)
	assert.Equal(t, "client-1", appt.ClientID)
	assert.Equal(t, "2024-06-10", appt.Date)
	assert.Equal(t, models.MustTimeOfDay("10:00"), appt.Start)

	assert.Contains(t, repo.appts, appt.ID, "appointment persisted")

	_, err = store.Load("s-1")
	var notFound *utils.NotFoundError
	assert.ErrorAs(t, err, &notFound, "session deleted after confirm")
}

func TestConfirmBeforeFinalStepRejected(t *testing.T) {
	store := newMemorySessionStore(completeSession(models.StepSelectDateTime))
	svc := &DefaultBookingSessionService{Sessions: store}

	_, err := svc.Confirm("s-1", "client-1")
	var validationErr *utils.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestConfirmConflictKeepsSession(t *testing.T) {
	store := newMemorySessionStore(completeSession(models.StepConfirm))
	repo := &fakeAppointmentRepo{slotTaken: true}
	svc := &DefaultBookingSessionService{
		Sessions:        store,
		AppointmentRepo: repo,
		NotificationSvc: silentNotifier{},
	}

	_, err := svc.Confirm("s-1", "client-1")
	var conflict *utils.ConflictError
	require.ErrorAs(t, err, &conflict)

	stored, loadErr := store.Load("s-1")
	require.NoError(t, loadErr, "session survives a conflict")
	assert.NotNil(t, stored.Draft.Slot, "draft intact for another attempt")
}

func TestConfirmRescheduleRejectedWhenNoLongerPending(t *testing.T) {
	// The appointment was cancelled after the reschedule session opened;
	// the conditional write refuses to move it.
	session := completeSession(models.StepConfirm)
	session.Mode = models.BookingModeReschedule
	session.RescheduleID = "appt-1"
	store := newMemorySessionStore(session)
	repo := &fakeAppointmentRepo{appts: map[string]*models.Appointment{
		"appt-1": {
			ID:       "appt-1",
			ClientID: "client-1",
			Status:   models.AppointmentCancelled,
			Date:     "2024-06-01",
		},
	}}
	svc := &DefaultBookingSessionService{
		Sessions:        store,
		AppointmentRepo: repo,
		NotificationSvc: silentNotifier{},
	}

	_, err := svc.Confirm("s-1", "client-1")
	var conflict *utils.ConflictError
	require.ErrorAs(t, err, &conflict)

	assert.Equal(t, "2024-06-01", repo.appts["appt-1"].Date, "appointment not moved")

	_, loadErr := store.Load("s-1")
	assert.NoError(t, loadErr, "session survives the rejection")
}

func TestSessionHiddenFromOtherClients(t *testing.T) {
	store := newMemorySessionStore(referenceSession())
	svc := &DefaultBookingSessionService{Sessions: store}

	_, err := svc.GetSession("s-1", "client-2")
	var notFound *utils.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
