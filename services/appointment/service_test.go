package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"groomly/models"
	"groomly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	appts map[string]*models.Appointment
}

func newMemoryRepo(appts ...*models.Appointment) *memoryRepo {
	r := &memoryRepo{appts: make(map[string]*models.Appointment)}
	for _, a := range appts {
		copied := *a
		r.appts[a.ID] = &copied
	}
	return r
}

func (r *memoryRepo) GetByID(id string) (*models.Appointment, error) {
	appt, ok := r.appts[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *appt
	return &copied, nil
}

func (r *memoryRepo) CreateConditional(ctx context.Context, appt *models.Appointment) error {
	return nil
}

func (r *memoryRepo) RescheduleConditional(ctx context.Context, id, date string, start, end models.TimeOfDay) error {
	return nil
}

func (r *memoryRepo) GetByStylistAndDate(stylistID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.StylistID == stylistID && a.Date == date {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *memoryRepo) GetByClient(clientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.ClientID == clientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *memoryRepo) GetByStylist(stylistID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.StylistID == stylistID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *memoryRepo) Update(appt *models.Appointment) error {
	if _, ok := r.appts[appt.ID]; !ok {
		return errors.New("not found")
	}
	copied := *appt
	r.appts[appt.ID] = &copied
	return nil
}

func (r *memoryRepo) GetUnfinishedBefore(date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.Date < date && (a.Status == models.AppointmentPending || a.Status == models.AppointmentConfirmed) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *memoryRepo) GetUpcoming(from, to string) ([]models.Appointment, error) {
	return nil, nil
}

type noopNotifier struct{}

func (noopNotifier) NotifyAppointmentCreated(*models.Appointment)     {}
func (noopNotifier) NotifyAppointmentConfirmed(*models.Appointment)   {}
func (noopNotifier) NotifyAppointmentCancelled(*models.Appointment)   {}
func (noopNotifier) NotifyAppointmentRescheduled(*models.Appointment) {}
func (noopNotifier) RecordReminder(*models.Appointment) error         { return nil }
func (noopNotifier) ListForStylist(string) ([]models.StylistNotification, error) {
	return nil, nil
}
func (noopNotifier) UnreadCount(string) (int64, error) { return 0, nil }
func (noopNotifier) MarkRead(string, string) error     { return nil }
func (noopNotifier) MarkAllRead(string) error          { return nil }

func fixedClock(date string, hhmm string) func() time.Time {
	return func() time.Time {
		day, _ := time.ParseInLocation(models.DateLayout, date, time.Local)
		t := models.MustTimeOfDay(hhmm)
		return day.Add(time.Duration(t) * time.Minute)
	}
}

func testAppointment(id, status string) *models.Appointment {
	return &models.Appointment{
		ID:        id,
		PetID:     "pet-1",
		ServiceID: "svc-1",
		StylistID: "stylist-1",
		ClientID:  "client-1",
		Date:      "2024-06-10",
		Start:     models.MustTimeOfDay("10:00"),
		End:       models.MustTimeOfDay("11:00"),
		Status:    status,
	}
}

func newService(repo *memoryRepo, now func() time.Time) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		Repo:            repo,
		NotificationSvc: noopNotifier{},
		Now:             now,
	}
}

func TestConfirmOnlyByOwningStylist(t *testing.T) {
	repo := newMemoryRepo(testAppointment("a1", models.AppointmentPending))
	svc := newService(repo, fixedClock("2024-06-10", "09:00"))

	_, err := svc.Confirm("a1", "other-stylist")
	var notFound *utils.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	appt, err := svc.Confirm("a1", "stylist-1")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentConfirmed, appt.Status)

	stored, _ := repo.GetByID("a1")
	assert.Equal(t, models.AppointmentConfirmed, stored.Status)
}

func TestConfirmRejectsNonPending(t *testing.T) {
	repo := newMemoryRepo(testAppointment("a1", models.AppointmentCancelled))
	svc := newService(repo, fixedClock("2024-06-10", "09:00"))

	_, err := svc.Confirm("a1", "stylist-1")
	var validationErr *utils.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCancelByClientAndStylist(t *testing.T) {
	repo := newMemoryRepo(
		testAppointment("a1", models.AppointmentPending),
		testAppointment("a2", models.AppointmentConfirmed),
	)
	svc := newService(repo, fixedClock("2024-06-10", "09:00"))

	appt, err := svc.Cancel("a1", "client-1", models.RoleClient)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCancelled, appt.Status)

	appt, err = svc.Cancel("a2", "stylist-1", models.RoleStylist)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCancelled, appt.Status)
}

func TestCancelHiddenFromStrangers(t *testing.T) {
	repo := newMemoryRepo(testAppointment("a1", models.AppointmentPending))
	svc := newService(repo, fixedClock("2024-06-10", "09:00"))

	_, err := svc.Cancel("a1", "other-client", models.RoleClient)
	var notFound *utils.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = svc.Cancel("a1", "other-stylist", models.RoleStylist)
	assert.ErrorAs(t, err, &notFound)
}

func TestCompleteRequiresElapsedEnd(t *testing.T) {
	repo := newMemoryRepo(testAppointment("a1", models.AppointmentConfirmed))

	early := newService(repo, fixedClock("2024-06-10", "10:30"))
	_, err := early.Complete("a1", "stylist-1")
	var validationErr *utils.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	late := newService(repo, fixedClock("2024-06-10", "11:30"))
	appt, err := late.Complete("a1", "stylist-1")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, appt.Status)
}

func TestListAutoCompletesPastAppointments(t *testing.T) {
	pastConfirmed := testAppointment("a1", models.AppointmentConfirmed)
	pastConfirmed.Date = "2024-06-01"
	upcoming := testAppointment("a2", models.AppointmentConfirmed)
	pastPending := testAppointment("a3", models.AppointmentPending)
	pastPending.Date = "2024-06-01"
	pastCancelled := testAppointment("a4", models.AppointmentCancelled)
	pastCancelled.Date = "2024-06-01"

	repo := newMemoryRepo(pastConfirmed, upcoming, pastPending, pastCancelled)
	svc := newService(repo, fixedClock("2024-06-10", "09:00"))

	appts, err := svc.ListForClient("client-1")
	require.NoError(t, err)

	byID := make(map[string]string, len(appts))
	for _, a := range appts {
		byID[a.ID] = a.Status
	}
	assert.Equal(t, models.AppointmentCompleted, byID["a1"], "past confirmed flips to completed")
	assert.Equal(t, models.AppointmentConfirmed, byID["a2"], "future confirmed untouched")
	assert.Equal(t, models.AppointmentCompleted, byID["a3"], "past pending flips to completed")
	assert.Equal(t, models.AppointmentCancelled, byID["a4"], "cancelled stays cancelled")

	for _, id := range []string{"a1", "a3"} {
		stored, _ := repo.GetByID(id)
		assert.Equal(t, models.AppointmentCompleted, stored.Status, "auto-completion is persisted")
	}
}

func TestListSameDayNotAutoCompleted(t *testing.T) {
	today := testAppointment("a1", models.AppointmentConfirmed)

	repo := newMemoryRepo(today)
	svc := newService(repo, fixedClock("2024-06-10", "23:00"))

	appts, err := svc.ListForStylist("stylist-1")
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, models.AppointmentConfirmed, appts[0].Status, "same-day visits are not finalized early")
}

func TestMarkNoShow(t *testing.T) {
	repo := newMemoryRepo(testAppointment("a1", models.AppointmentConfirmed))
	svc := newService(repo, fixedClock("2024-06-10", "12:00"))

	appt, err := svc.MarkNoShow("a1", "stylist-1")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentNoShow, appt.Status)
}
