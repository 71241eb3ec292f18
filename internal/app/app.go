package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/virus84787/f1-fan-bot/internal/config"
	"github.com/virus84787/f1-fan-bot/internal/ergast"
	"github.com/virus84787/f1-fan-bot/internal/scheduler"
	"github.com/virus84787/f1-fan-bot/internal/store"
	"github.com/virus84787/f1-fan-bot/internal/telegram"
)

// App owns the bot's long-lived pieces and ties their lifetimes to one
// context.
type App struct {
	cfg     config.Config
	log     *zap.Logger
	bot     *tgbotapi.BotAPI
	httpSrv *http.Server
	feed    ergast.Feed
	repo    store.Repo
	router  *telegram.Router
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	// The Bot API client doubles as the notification delivery path, so
	// its HTTP client carries a timeout; a hung send must not stall a
	// reminder tick forever.
	httpClient := &http.Client{Timeout: 30 * time.Second}
	bot, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, err
	}
	bot.Debug = false

	reg := prometheus.NewRegistry()
	metrics := ergast.NewMetrics(reg)

	primary := ergast.NewClient(cfg.ErgastBaseURL, "jolpi", metrics, log)
	secondary := ergast.NewClient(cfg.ErgastBackupURL, "ergast", metrics, log)
	feed := ergast.NewFallback(primary, secondary, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	return &App{cfg: cfg, log: log, bot: bot, httpSrv: srv, feed: feed}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting f1-fan-bot",
		zap.Int("season", a.cfg.Season),
		zap.String("http", a.cfg.HTTPAddr),
	)

	// Open SQLite and run migrations.
	repo, err := store.OpenSQLite(ctx, a.cfg.DBPath)
	if err != nil {
		a.log.Error("open sqlite failed", zap.Error(err))
		return err
	}
	a.repo = repo
	a.log.Info("sqlite ready")

	a.router = telegram.NewRouter(a.bot, a.log, a.repo, a.feed, a.cfg.Season)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reminders := scheduler.NewReminders(a.feed, a.repo, a.router, a.log, a.cfg.Season, a.cfg.ReminderTick)
	go reminders.Run(ctx)

	refresh, err := scheduler.NewRefresh(a.feed, a.repo, a.log, a.cfg.RefreshCron, a.cfg.Season)
	if err != nil {
		a.log.Error("refresh schedule invalid", zap.String("cron", a.cfg.RefreshCron), zap.Error(err))
		return err
	}
	go refresh.Run(ctx)

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", zap.Error(err))
		}
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updCh := a.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			a.log.Info("shutdown signal received")

			shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := a.httpSrv.Shutdown(shCtx)
			cancel()

			if err != nil {
				a.log.Warn("http server shutdown error", zap.Error(err))
			}
			if a.repo != nil {
				_ = a.repo.Close()
			}
			return nil

		case upd := <-updCh:
			a.router.HandleUpdate(ctx, upd)
		}
	}
}
