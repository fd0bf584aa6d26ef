package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/annaaimenedger987-crypto/massageBot/handlers"
	"github.com/annaaimenedger987-crypto/massageBot/services/ledger"
	"github.com/annaaimenedger987-crypto/massageBot/services/notification"
	"github.com/annaaimenedger987-crypto/massageBot/services/schedule"
	"github.com/annaaimenedger987-crypto/massageBot/utils"
)

// Worker runs the periodic maintenance jobs: the morning digest for the admin
// and pruning of dates that fell behind the booking horizon.
type Worker struct {
	ledger   ledger.LedgerService
	notifier notification.NotificationService
	cron     *cron.Cron
	spec     string
	log      *zap.Logger
}

func NewWorker(ledgerSvc ledger.LedgerService, notifier notification.NotificationService, digestSpec string) *Worker {
	return &Worker{
		ledger:   ledgerSvc,
		notifier: notifier,
		cron:     cron.New(),
		spec:     digestSpec,
		log:      utils.GetLogger(),
	}
}

// Start registers the jobs and launches the scheduler in its own goroutine.
func (w *Worker) Start() error {
	if _, err := w.cron.AddFunc(w.spec, w.runDaily); err != nil {
		return err
	}
	w.cron.Start()
	w.log.Info("maintenance worker started", zap.String("digest_cron", w.spec))
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (w *Worker) Stop() {
	<-w.cron.Stop().Done()
}

func (w *Worker) runDaily() {
	today := time.Now().Format(schedule.DateLayout)

	removed, err := w.ledger.Admin().Prune(today)
	if err != nil {
		w.log.Error("pruning stale dates failed", zap.Error(err))
	} else if removed > 0 {
		w.log.Info("stale dates pruned", zap.Int("removed", removed))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	digest := "🌅 Записи на сегодня:\n\n" + handlers.DigestFor(w.ledger, today)
	if err := w.notifier.NotifyDigest(ctx, digest); err != nil {
		w.log.Warn("failed to send morning digest", zap.Error(err))
	}
}
