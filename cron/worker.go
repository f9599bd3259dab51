package cron

import (
	"context"
	"log"
	"time"

	"groomly/config"
	appointmentRepo "groomly/database/repository/appointment"
	"groomly/models"
	"groomly/services/notification"
	"groomly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeReminderScan    = "reminder:scan"
	TypeCompletionSweep = "appointments:finalize"
)

// InitReminderWorker starts the background appointment pipeline: a periodic
// enqueuer that schedules tasks, and an asynq worker that performs them.
// Reminder scans record a reminder notification for every pending or
// confirmed appointment inside the configured window, at most once per
// appointment. Completion sweeps finalize pending and confirmed
// appointments whose date has passed, so past visits complete even when
// nobody lists them.
func InitReminderWorker(apptRepo appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderScan, handleReminderScan(apptRepo, notifSvc))
	mux.HandleFunc(TypeCompletionSweep, handleCompletionSweep(apptRepo))

	go enqueueScans(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// enqueueScans enqueues a scan task immediately and then on every tick of
// the configured interval.
func enqueueScans(redisOpts asynq.RedisClientOpt) {
	client := asynq.NewClient(redisOpts)

	interval := time.Duration(config.AppConfig.ReminderScanMinutes) * time.Minute
	if interval <= 0 {
		interval = 30 * time.Minute
	}

	enqueue := func() {
		for _, taskType := range []string{TypeReminderScan, TypeCompletionSweep} {
			task := asynq.NewTask(taskType, nil)
			if _, err := client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
				log.Printf("[ReminderWorker] failed to enqueue %s: %v", taskType, err)
			}
		}
	}

	enqueue()
	ticker := time.NewTicker(interval)
	for range ticker.C {
		enqueue()
	}
}

func handleReminderScan(apptRepo appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		window := time.Duration(config.AppConfig.ReminderWindowHours) * time.Hour
		if window <= 0 {
			window = 24 * time.Hour
		}

		now := time.Now()
		from := now.Format(models.DateLayout)
		to := now.Add(window).Format(models.DateLayout)

		appts, err := apptRepo.GetUpcoming(from, to)
		if err != nil {
			utils.GetLogger().Error("reminder scan failed to load appointments", zap.Error(err))
			return err
		}

		for i := range appts {
			if err := notifSvc.RecordReminder(&appts[i]); err != nil {
				utils.GetLogger().Warn("failed to record reminder",
					zap.String("appointmentId", appts[i].ID),
					zap.Error(err))
			}
		}
		return nil
	}
}

func handleCompletionSweep(apptRepo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		today := time.Now().Format(models.DateLayout)

		appts, err := apptRepo.GetUnfinishedBefore(today)
		if err != nil {
			utils.GetLogger().Error("completion sweep failed to load appointments", zap.Error(err))
			return err
		}

		for i := range appts {
			appts[i].Status = models.AppointmentCompleted
			if err := apptRepo.Update(&appts[i]); err != nil {
				utils.GetLogger().Warn("failed to finalize past appointment",
					zap.String("appointmentId", appts[i].ID),
					zap.Error(err))
			}
		}
		return nil
	}
}
