// Package scheduler runs the periodic background jobs of the record
// keeping service, currently the quarterly follow-up reminder sweep.
package scheduler

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/drepanocare/drepano-care-api/databases"
	"github.com/drepanocare/drepano-care-api/models"
	templates "github.com/drepanocare/drepano-care-api/templates/html"
)

const defaultReminderDays = 90

// Scheduler handles periodic background jobs for the follow-up program
type Scheduler struct {
	cron *cron.Cron
	PDB  databases.PatientDatabase
	FDB  databases.FollowUpDatabase
}

// NewScheduler creates a new scheduler instance
func NewScheduler(pDB databases.PatientDatabase, fDB databases.FollowUpDatabase) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		PDB:  pDB,
		FDB:  fDB,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Sweep for patients overdue for their quarterly follow-up daily at 6 AM UTC
	_, err := s.cron.AddFunc("0 6 * * *", s.processOverdueFollowUps)
	if err != nil {
		zap.S().Errorw("failed to register follow-up reminder job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Follow-up reminder scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Follow-up reminder scheduler stopped")
}

// reminderWindowDays returns the number of days after which a patient
// without a follow-up counts as overdue
func reminderWindowDays() int {
	if v := os.Getenv("FOLLOW_UP_REMINDER_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			return days
		}
		zap.S().Warnf("invalid FOLLOW_UP_REMINDER_DAYS %q, using default of %d", v, defaultReminderDays)
	}
	return defaultReminderDays
}

// processOverdueFollowUps finds patients whose last follow-up visit is
// older than the reminder window and mails the overdue list to the
// clinic inbox
func (s *Scheduler) processOverdueFollowUps() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	windowDays := reminderWindowDays()
	cutoff := time.Now().UTC().AddDate(0, 0, -windowDays)

	zap.S().Infow("Running follow-up reminder job", "window_days", windowDays)

	patients, err := s.PDB.Find(ctx, bson.D{}, nil)
	if err != nil {
		zap.S().Errorw("failed to list patients", "error", err)
		return
	}

	var overdue []overduePatient
	for _, patient := range patients {
		followUps, err := s.FDB.Find(ctx, bson.M{"patient_id": patient.ID}, nil)
		if err != nil {
			zap.S().Errorw("failed to list follow-ups", "patient_id", patient.ID, "error", err)
			continue
		}

		last := lastVisit(patient, followUps)
		if last.Before(cutoff) {
			overdue = append(overdue, overduePatient{Patient: patient, LastVisit: last})
		}
	}

	if len(overdue) == 0 {
		zap.S().Info("Follow-up reminder job found no overdue patients")
		return
	}

	zap.S().Infow("Follow-up reminder job found overdue patients", "count", len(overdue))

	if err := sendReminderEmail(overdue, windowDays); err != nil {
		zap.S().Errorw("failed to send follow-up reminder email", "error", err)
	}
}

type overduePatient struct {
	Patient   models.PatientProfile
	LastVisit time.Time
}

// lastVisit returns the most recent visit timestamp for a patient,
// falling back to the profile creation date when no follow-up exists
func lastVisit(patient models.PatientProfile, followUps []models.FollowUpData) time.Time {
	last := patient.CreatedAt
	for _, f := range followUps {
		if f.CreatedAt.After(last) {
			last = f.CreatedAt
		}
	}
	return last
}

func sendReminderEmail(overdue []overduePatient, windowDays int) error {
	toEmail := os.Getenv("REMINDER_EMAIL")
	if toEmail == "" {
		zap.S().Warn("REMINDER_EMAIL not set, skipping reminder email")
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Les patients suivants n'ont pas eu de visite de suivi depuis plus de %d jours :\n\n", windowDays)
	for _, o := range overdue {
		fmt.Fprintf(&sb, "- %s %s (%s), derniere visite le %s\n",
			o.Patient.Nom, o.Patient.Prenom,
			o.Patient.NumeroIdentificationUnique,
			o.LastVisit.Format("2006-01-02"))
	}
	sb.WriteString("\nMerci de programmer leur prochaine consultation de suivi.")

	subject := fmt.Sprintf("Rappel de suivi trimestriel : %d patient(s) en retard", len(overdue))
	from := mail.NewEmail("DrepanoCare", "no-reply@drepanocare.org")
	to := mail.NewEmail("", toEmail)
	html := templates.RenderGenericEmail(subject, sb.String())
	msg := mail.NewSingleEmail(from, subject, to, sb.String(), html)

	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	_, err := client.Send(msg)
	return err
}
