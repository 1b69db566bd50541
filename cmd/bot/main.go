package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pressly/goose/v3"
	"github.com/subosito/gotenv"

	"github.com/Luum3/doceria-bot/internal/bot"
	"github.com/Luum3/doceria-bot/internal/config"
	"github.com/Luum3/doceria-bot/internal/dialog"
	"github.com/Luum3/doceria-bot/internal/gateway"
	"github.com/Luum3/doceria-bot/internal/infra/db"
	httpx "github.com/Luum3/doceria-bot/internal/infra/http"
	"github.com/Luum3/doceria-bot/internal/infra/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	_ = gotenv.Load() // .env local; ausência não é erro

	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN); err != nil {
		log.Error("migrations falharam", "err", err)
		return
	}
	log.Info("migrations aplicadas")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("conexão com o banco falhou", "err", err)
		return
	}
	defer pool.Close()
	log.Info("banco conectado")

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("erro no servidor HTTP", "err", err)
		}
	}()
	log.Info("servidor HTTP iniciado", "addr", cfg.HTTP.Addr)

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Error("autenticação no Telegram falhou", "err", err)
		return
	}
	log.Info("bot autenticado", slog.String("username", api.Self.UserName))

	gw := gateway.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, log)
	states := dialog.NewRepo(pool)

	b := bot.New(api, log, gw, states)
	if err := b.Run(ctx, 30); err != nil && ctx.Err() == nil {
		log.Error("bot encerrou com erro", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("encerramento concluído")
}
