package appointmentRepo

import (
	"context"
	"fmt"

	"groomly/models"
	"groomly/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// blockingOverlapFilter matches appointments that would collide with the
// half-open interval [start, end) for the given stylist and date.
// Cancelled and no-show appointments never block.
func blockingOverlapFilter(stylistID, date string, start, end models.TimeOfDay) bson.M {
	return bson.M{
		"stylistId": stylistID,
		"date":      date,
		"status":    bson.M{"$in": bson.A{models.AppointmentPending, models.AppointmentConfirmed}},
		"start":     bson.M{"$lt": end},
		"end":       bson.M{"$gt": start},
	}
}

// CreateConditional inserts the appointment inside a transaction that first
// re-checks the slot against blocking appointments. The check and the insert
// commit atomically, so two clients confirming the same slot cannot both win.
func (r *MongoAppointmentRepo) CreateConditional(ctx context.Context, appt *models.Appointment) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := blockingOverlapFilter(appt.StylistID, appt.Date, appt.Start, appt.End)
		count, err := r.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return &utils.ConflictError{Message: "the selected slot is no longer available"}
		}

		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}

// reschedulable reports whether the appointment can still be moved. Only
// pending appointments may be rescheduled; an appointment confirmed or
// cancelled since the flow started surfaces as a conflict.
func reschedulable(appt *models.Appointment) error {
	if appt.Status != models.AppointmentPending {
		return &utils.ConflictError{Message: fmt.Sprintf("appointment is %s and can no longer be rescheduled", appt.Status)}
	}
	return nil
}

// RescheduleConditional moves an appointment to a new slot under the same
// atomic overlap check. The appointment's pending status is re-verified
// inside the transaction, and the moved appointment is excluded from the
// overlap check so it cannot block itself.
func (r *MongoAppointmentRepo) RescheduleConditional(ctx context.Context, id, date string, start, end models.TimeOfDay) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		var appt models.Appointment
		if err := r.coll.FindOne(sc, bson.M{"id": id}).Decode(&appt); err != nil {
			if err == mongo.ErrNoDocuments {
				return &utils.NotFoundError{Message: fmt.Sprintf("appointment %s not found", id)}
			}
			return fmt.Errorf("failed to fetch appointment %s: %w", id, err)
		}
		if err := reschedulable(&appt); err != nil {
			return err
		}

		filter := blockingOverlapFilter(appt.StylistID, date, start, end)
		filter["id"] = bson.M{"$ne": id}
		count, err := r.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return &utils.ConflictError{Message: "the selected slot is no longer available"}
		}

		update := bson.M{"$set": bson.M{
			"date":  date,
			"start": start,
			"end":   end,
		}}
		if _, err := r.coll.UpdateOne(sc, bson.M{"id": id}, update); err != nil {
			return fmt.Errorf("reschedule update failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
