package appointmentRepo

import (
	"testing"

	"groomly/models"
	"groomly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestReschedulableOnlyWhilePending(t *testing.T) {
	appt := &models.Appointment{ID: "a1", Status: models.AppointmentPending}
	assert.NoError(t, reschedulable(appt))

	for _, status := range []string{
		models.AppointmentConfirmed,
		models.AppointmentCancelled,
		models.AppointmentCompleted,
		models.AppointmentNoShow,
	} {
		appt.Status = status
		err := reschedulable(appt)
		require.Error(t, err, status)

		var conflict *utils.ConflictError
		assert.ErrorAs(t, err, &conflict, status)
	}
}

func TestBlockingOverlapFilter(t *testing.T) {
	start := models.MustTimeOfDay("10:00")
	end := models.MustTimeOfDay("11:00")
	filter := blockingOverlapFilter("stylist-1", "2024-06-10", start, end)

	assert.Equal(t, "stylist-1", filter["stylistId"])
	assert.Equal(t, "2024-06-10", filter["date"])
	assert.Equal(t, bson.M{"$in": bson.A{models.AppointmentPending, models.AppointmentConfirmed}}, filter["status"])
	assert.Equal(t, bson.M{"$lt": end}, filter["start"], "candidate must start before the window ends")
	assert.Equal(t, bson.M{"$gt": start}, filter["end"], "candidate must end after the window starts")
}
