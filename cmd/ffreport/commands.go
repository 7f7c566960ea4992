package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/omarshaarawi/ffreport/internal/bot"
	"github.com/omarshaarawi/ffreport/internal/config"
	"github.com/omarshaarawi/ffreport/internal/llm"
	"github.com/omarshaarawi/ffreport/internal/scheduler"
	"github.com/omarshaarawi/ffreport/internal/service"
)

func runWeekly(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("weekly", flag.ContinueOnError)
	week := fs.Int("week", cfg.Report.DefaultWeek, "week to render, the current week when 0")
	year := fs.Int("year", 0, "season, the configured YEAR when 0")
	output := fs.String("output", "", "output file, reports/<year>-week<week>.html by default")
	offline := fs.Bool("offline", cfg.Report.Offline, "read feature data from the cache only")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.Report.Offline = *offline

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	rep, err := a.writeWeek(ctx, a.reports(*year), *week, *output)
	if err != nil {
		return err
	}
	slog.Info("Weekly report complete", "year", rep.Year, "week", rep.Week, "run_id", rep.RunID)
	return nil
}

func runAll(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("all", flag.ContinueOnError)
	start := fs.Int("start", 1, "first week")
	end := fs.Int("end", 0, "last week, the current week when 0")
	year := fs.Int("year", 0, "season, the configured YEAR when 0")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	svc := a.reports(*year)
	last, err := svc.ResolveWeek(ctx, *end)
	if err != nil {
		return err
	}
	if *start < 1 || *start > last {
		return fmt.Errorf("invalid week range %d-%d", *start, last)
	}

	var failed int
	for week := *start; week <= last; week++ {
		if _, err := a.writeWeek(ctx, svc, week, ""); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Error("Failed to render week", "week", week, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d weeks failed", failed, last-*start+1)
	}
	return nil
}

func runLLM(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("llm", flag.ContinueOnError)
	week := fs.Int("week", 0, "week to summarize")
	through := fs.Int("through", 0, "also summarize every following week up to this one")
	providerName := fs.String("provider", "openai", "openai or gemini")
	force := fs.Bool("force", false, "replace an existing summary, keeping a .bk copy")
	preview := fs.Bool("preview", false, "print the summary without saving it")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *week < 1 {
		return errors.New("-week is required")
	}

	provider, err := llm.NewProvider(*providerName, cfg.LLM)
	if err != nil {
		return err
	}
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	results, err := a.narrator(provider).WriteRange(ctx, *week, max(*week, *through), llm.Options{Force: *force, Preview: *preview})
	for _, res := range results {
		if res.Text != "" {
			fmt.Println(res.Text)
		}
	}
	return err
}

func runIndex(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("index", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	a := &app{cfg: cfg}
	return a.writeIndex()
}

func runServe(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.TelegramBot.Validate(); err != nil {
		return err
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	svc := a.reports(0)
	telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, bot.NewHandler(svc))
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(cfg.Schedule, scheduler.Tasks{
		Report: func(ctx context.Context) error {
			rep, err := a.writeWeek(ctx, svc, cfg.Report.DefaultWeek, "")
			if err != nil {
				return err
			}
			return telegramBot.SendMessage(service.FormatFinalScores(rep))
		},
		CloseGames: func(ctx context.Context) error {
			rep, err := svc.Build(ctx, 0)
			if err != nil {
				return err
			}
			return telegramBot.SendMessage(service.FormatCloseGames(rep))
		},
	})
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/", healthCheckHandler)
	server := &http.Server{Addr: cfg.Server.HealthAddr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()
	defer server.Close()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")
	return nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
