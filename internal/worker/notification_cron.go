package worker

// notification_cron.go
// Background goroutine that periodically scans for maintenances coming due
// and spare parts at or below their minimum stock, materializes in-app
// notifications for the tenant's admins and managers, and enqueues one email
// job per newly created notification. Dedup keys keep repeated ticks from
// notifying twice for the same event.

import (
	"context"
	"fmt"
	"time"

	"github.com/wyllersu/lifecyle-asset-insight/internal/model"
	"github.com/wyllersu/lifecyle-asset-insight/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const notifyTickInterval = time.Hour

// NotificationCronConfig holds the dependencies for the notification goroutine.
type NotificationCronConfig struct {
	MaintenanceRepo  repository.MaintenanceRepository
	PartRepo         repository.SparePartRepository
	ProfileRepo      repository.ProfileRepository
	NotificationRepo repository.NotificationRepository
	Dispatcher       *Dispatcher

	// DueDays is how many days ahead a scheduled maintenance triggers a
	// notification.
	DueDays int
}

// StartNotificationCron launches a goroutine that ticks hourly and respects
// the context for graceful shutdown. The first scan runs immediately so a
// restart does not delay overdue alerts by an hour.
func StartNotificationCron(ctx context.Context, cfg NotificationCronConfig) {
	go func() {
		ticker := time.NewTicker(notifyTickInterval)
		defer ticker.Stop()

		log.Info().Int("due_days", cfg.DueDays).Msg("notification_cron: started")
		scan(ctx, cfg)

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("notification_cron: shutting down")
				return
			case <-ticker.C:
				scan(ctx, cfg)
			}
		}
	}()
}

func scan(ctx context.Context, cfg NotificationCronConfig) {
	scanMaintenances(ctx, cfg)
	scanLowStock(ctx, cfg)
}

func scanMaintenances(ctx context.Context, cfg NotificationCronConfig) {
	cutoff := time.Now().AddDate(0, 0, cfg.DueDays)
	due, err := cfg.MaintenanceRepo.ListDueBefore(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Msg("notification_cron: due maintenance query failed")
		return
	}

	for i := range due {
		m := &due[i]
		if m.Asset == nil || m.Asset.Department == nil {
			continue
		}
		msg := fmt.Sprintf("Maintenance %q for asset %s is scheduled for %s",
			m.Description, m.Asset.Code, m.ScheduledDate.Format("2006-01-02"))
		fanOut(ctx, cfg, m.Asset.Department.CompanyID,
			model.NotificationMaintenanceDue,
			fmt.Sprintf("maintenance_due:%s", m.ID),
			"Maintenance due: "+m.Asset.Code,
			msg)
	}
}

func scanLowStock(ctx context.Context, cfg NotificationCronConfig) {
	parts, err := cfg.PartRepo.ListLowStockAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("notification_cron: low stock query failed")
		return
	}

	for i := range parts {
		p := &parts[i]
		msg := fmt.Sprintf("Spare part %q (%s) is at %d units, minimum is %d",
			p.Name, p.Code, p.Stock, p.MinStock)
		// the stock level is part of the key so a restock followed by a new
		// drop alerts again
		fanOut(ctx, cfg, p.CompanyID,
			model.NotificationLowStock,
			fmt.Sprintf("low_stock:%s:%d", p.ID, p.Stock),
			"Low stock: "+p.Name,
			msg)
	}
}

// fanOut creates one notification per admin or manager of the company and
// enqueues an email for each row actually created.
func fanOut(ctx context.Context, cfg NotificationCronConfig, companyID uuid.UUID, kind, dedupBase, subject, message string) {
	profiles, err := cfg.ProfileRepo.ListByCompany(ctx, companyID, false)
	if err != nil {
		log.Error().Err(err).Str("company_id", companyID.String()).
			Msg("notification_cron: recipient query failed")
		return
	}

	for i := range profiles {
		p := &profiles[i]
		if p.Role != model.RoleAdmin && p.Role != model.RoleManager {
			continue
		}

		created, err := cfg.NotificationRepo.CreateIfAbsent(ctx, &model.Notification{
			ProfileID: p.ID,
			Kind:      kind,
			Message:   message,
			DedupKey:  dedupBase + ":" + p.ID.String(),
		})
		if err != nil {
			log.Error().Err(err).Str("profile_id", p.ID.String()).
				Msg("notification_cron: notification insert failed")
			continue
		}
		if !created {
			continue
		}

		if err := cfg.Dispatcher.EnqueueEmail(ctx, EmailJobPayload{
			ToEmail: p.Email,
			Subject: subject,
			Body:    message,
		}); err != nil {
			log.Error().Err(err).Str("to", p.Email).
				Msg("notification_cron: email enqueue failed")
		}
	}
}
