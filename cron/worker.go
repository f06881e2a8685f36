package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"pickbook/config"
	"pickbook/database/repository/booking"
	"pickbook/models"
	"pickbook/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"gopkg.in/gomail.v2"
)

// InitEmailWorker runs the async email worker in background.
func InitEmailWorker(repo bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(tasks.TypeSendBookingEmail, handleBookingEmailTask(repo))

	go monitorRedisConnection()

	go func() {
		log.Println("[EmailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EmailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[EmailWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingEmailTask(repo bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[EmailWorker] invalid payload: %v", err)
			return err
		}

		booking, err := repo.GetByID(p.BookingID)
		if err != nil {
			return fmt.Errorf("failed to load booking %s: %w", p.BookingID, err)
		}
		if booking == nil {
			// Booking vanished; nothing to send and no point retrying.
			log.Printf("[EmailWorker] booking %s not found, dropping email task", p.BookingID)
			return nil
		}

		if err := sendBookingDetailsEmail(p.Email, booking); err != nil {
			log.Printf("[EmailWorker] failed to send booking email for %s: %v", p.BookingID, err)
			return err
		}
		return nil
	}
}

func sendBookingDetailsEmail(to string, booking *models.Booking) error {
	cfg := config.AppConfig

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Booking details for %s", booking.AreaName))
	m.SetBody("text/html", renderBookingEmail(booking))

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return d.DialAndSend(m)
}

func renderBookingEmail(booking *models.Booking) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Booking received</h2>")
	fmt.Fprintf(&b, "<p>Hi %s, your booking at <b>%s</b> (%s) is awaiting payment confirmation.</p>",
		booking.FirstName, booking.AreaName, booking.CourtName)

	b.WriteString("<ul>")
	for _, ds := range booking.Slots {
		fmt.Fprintf(&b, "<li><b>%s</b>: %s</li>", ds.Date, strings.Join(ds.Time, ", "))
	}
	b.WriteString("</ul>")

	if len(booking.Equipments) > 0 {
		b.WriteString("<p>Rented equipment:</p><ul>")
		for _, eq := range booking.Equipments {
			fmt.Fprintf(&b, "<li>%s x%d</li>", eq.Name, eq.Quantity)
		}
		b.WriteString("</ul>")
	}

	fmt.Fprintf(&b, "<p>Total amount: <b>%d</b></p>", booking.Amount)
	fmt.Fprintf(&b, "<p>Reference: %s</p>", booking.ID)
	return b.String()
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[EmailWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
