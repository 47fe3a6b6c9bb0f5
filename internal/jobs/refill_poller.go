package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"wateen/client/internal/models"
	"wateen/client/internal/refill"
)

type MedicationLister interface {
	ListMedications(ctx context.Context) ([]models.Medication, error)
}

// RefillPoller keeps the dashboard's refill banner current while the app
// runs: on a cron schedule it re-fetches the medication list and recomputes
// which supplies are about to run out.
type RefillPoller struct {
	cron     *cron.Cron
	client   MedicationLister
	authed   func() bool
	schedule string
	log      zerolog.Logger

	mu      sync.RWMutex
	alerts  []models.RefillAlert
	snoozed map[int64]time.Time
}

func NewRefillPoller(client MedicationLister, authed func() bool, schedule string, log zerolog.Logger) *RefillPoller {
	return &RefillPoller{
		cron:     cron.New(cron.WithSeconds()),
		client:   client,
		authed:   authed,
		schedule: schedule,
		log:      log,
		snoozed:  map[int64]time.Time{},
	}
}

func (p *RefillPoller) Start() error {
	if _, err := p.cron.AddFunc(p.schedule, p.poll); err != nil {
		return err
	}
	p.cron.Start()
	go p.poll()
	return nil
}

// Stop halts the schedule and waits briefly for an in-flight poll.
func (p *RefillPoller) Stop() {
	ctx := p.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
	}
}

func (p *RefillPoller) poll() {
	if !p.authed() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	meds, err := p.client.ListMedications(ctx)
	if err != nil {
		p.log.Warn().Err(err).Msg("refill poll failed")
		return
	}

	alerts := refill.Alerts(meds, time.Now())

	p.mu.Lock()
	p.alerts = alerts
	p.mu.Unlock()
}

// Alerts returns the current alerts minus any the user snoozed.
func (p *RefillPoller) Alerts() []models.RefillAlert {
	p.mu.RLock()
	defer p.mu.RUnlock()

	now := time.Now()
	var out []models.RefillAlert
	for _, alert := range p.alerts {
		if until, ok := p.snoozed[alert.MedicationID]; ok && now.Before(until) {
			continue
		}
		out = append(out, alert)
	}
	return out
}

// Snooze hides a medication's alert for a day.
func (p *RefillPoller) Snooze(medicationID int64) {
	p.mu.Lock()
	p.snoozed[medicationID] = time.Now().AddDate(0, 0, 1)
	p.mu.Unlock()
}

// Dismiss drops an alert after a confirmed refill.
func (p *RefillPoller) Dismiss(medicationID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	kept := p.alerts[:0]
	for _, alert := range p.alerts {
		if alert.MedicationID != medicationID {
			kept = append(kept, alert)
		}
	}
	p.alerts = kept
}
