package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/omarshaarawi/ffreport/internal/config"
)

const usage = `Usage: ffreport <command> [flags]

Commands:
  weekly   Render one week's report
  all      Render a range of weeks
  llm      Write the LLM recap of a week
  index    Rebuild the report index
  serve    Run the Telegram bot and the report schedule
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("no command given")
	}

	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command, rest := args[0], args[1:]
	switch command {
	case "weekly":
		return runWeekly(ctx, cfg, rest)
	case "all":
		return runAll(ctx, cfg, rest)
	case "llm":
		return runLLM(ctx, cfg, rest)
	case "index":
		return runIndex(cfg, rest)
	case "serve":
		return runServe(ctx, cfg, rest)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
