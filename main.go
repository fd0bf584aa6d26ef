package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/annaaimenedger987-crypto/massageBot/config"
	botcron "github.com/annaaimenedger987-crypto/massageBot/cron"
	"github.com/annaaimenedger987-crypto/massageBot/handlers"
	"github.com/annaaimenedger987-crypto/massageBot/services/ledger"
	"github.com/annaaimenedger987-crypto/massageBot/services/notification"
	"github.com/annaaimenedger987-crypto/massageBot/storage"
	"github.com/annaaimenedger987-crypto/massageBot/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	cfg := config.AppConfig
	if err := cfg.Validate(); err != nil {
		logger.Sugar().Fatalf("main: invalid configuration: %v", err)
	}

	if err := utils.AcquireLock(cfg.LockFile); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	defer utils.ReleaseLock(cfg.LockFile)

	// Persistence and the ledger.
	store := storage.NewFileStore(cfg.DataFile)
	ledgerSvc, err := ledger.New(store, cfg.BaseStart, cfg.BaseEnd, cfg.SlotStepMin)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize ledger: %v", err)
	}

	// Telegram transport.
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to telegram: %v", err)
	}
	logger.Info("authorized on telegram", zap.String("username", bot.Self.UserName))

	notifier, err := notification.NewTelegramNotifier(bot, cfg.AdminID)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notifier: %v", err)
	}

	router := handlers.NewRouter(bot, ledgerSvc, notifier, cfg.AdminID, cfg.BookingHorizonDays, cfg.SlotStepMin)

	worker := botcron.NewWorker(ledgerSvc, notifier, cfg.DigestCron)
	if err := worker.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start maintenance worker: %v", err)
	}
	defer worker.Stop()

	// Poll until interrupted.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router.Run(ctx)
	logger.Info("shutting down")
}
