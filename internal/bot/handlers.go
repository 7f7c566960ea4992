package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/singleflight"

	"github.com/omarshaarawi/ffreport/internal/service"
)

const reportTTL = 10 * time.Minute

const helpText = "Available commands:\n" +
	"/scores [week] - Final scores and trophies\n" +
	"/standings - League standings\n" +
	"/margin [week] - Largest margins of victory\n" +
	"/beef [week] - Beef rankings\n" +
	"/touchdowns [week] - Touchdowns by team\n" +
	"/birthdays [week] - Player birthdays this week\n" +
	"/close [week] - Close games\n" +
	"/team <team> - View team's roster and points"

// ReportBuilder assembles the report of a week, the current one when week
// is zero. *service.ReportService satisfies it.
type ReportBuilder interface {
	Build(ctx context.Context, week int) (*service.Report, error)
}

type cachedReport struct {
	report *service.Report
	at     time.Time
}

type Handler struct {
	reports ReportBuilder
	group   singleflight.Group
	mu      sync.Mutex
	cache   map[int]cachedReport
	now     func() time.Time
}

func NewHandler(reports ReportBuilder) *Handler {
	return &Handler{reports: reports, cache: make(map[int]cachedReport), now: time.Now}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	msg.ParseMode = "Markdown"
	msg.Text = h.Respond(ctx, update.Message.Command(), update.Message.CommandArguments())
	return msg
}

// Respond answers one command.
func (h *Handler) Respond(ctx context.Context, command, args string) string {
	args = strings.TrimSpace(args)
	switch strings.ToLower(command) {
	case "start":
		return "Welcome to the league report bot! Use /help to see available commands."
	case "help":
		return helpText
	case "scores", "finalscore":
		return h.weekly(ctx, args, "final scores", service.FormatFinalScores)
	case "standings":
		return h.weekly(ctx, "", "standings", service.FormatStandings)
	case "margin":
		return h.weekly(ctx, args, "margins", service.FormatMargins)
	case "beef":
		return h.weekly(ctx, args, "beef rankings", service.FormatBeef)
	case "touchdowns":
		return h.weekly(ctx, args, "touchdowns", service.FormatTouchdowns)
	case "birthdays":
		return h.weekly(ctx, args, "birthdays", service.FormatBirthdays)
	case "close", "mondaynight":
		return h.weekly(ctx, args, "close games", service.FormatCloseGames)
	case "team":
		return h.handleTeam(ctx, args)
	default:
		return "Unknown command. Use /help to see available commands."
	}
}

func (h *Handler) weekly(ctx context.Context, args, what string, format func(*service.Report) string) string {
	week := 0
	if args != "" {
		w, err := strconv.Atoi(args)
		if err != nil || w < 1 {
			return fmt.Sprintf("Invalid week %q. Usage: /command [week]", args)
		}
		week = w
	}
	report, err := h.report(ctx, week)
	if err != nil {
		return fmt.Sprintf("Error fetching %s: %v", what, err)
	}
	return format(report)
}

func (h *Handler) handleTeam(ctx context.Context, args string) string {
	if args == "" {
		return "Please provide a team name. Usage: /team <team name>"
	}
	report, err := h.report(ctx, 0)
	if err != nil {
		return fmt.Sprintf("Error getting team roster: %v", err)
	}
	result, err := service.FormatTeam(report, args)
	if err != nil {
		return fmt.Sprintf("Error getting team roster: %v", err)
	}
	return result
}

// report returns a recently built report of week, building it at most once
// for concurrent commands.
func (h *Handler) report(ctx context.Context, week int) (*service.Report, error) {
	h.mu.Lock()
	c, ok := h.cache[week]
	h.mu.Unlock()
	if ok && h.now().Sub(c.at) < reportTTL {
		return c.report, nil
	}

	v, err, _ := h.group.Do(strconv.Itoa(week), func() (interface{}, error) {
		r, err := h.reports.Build(ctx, week)
		if err != nil {
			return nil, err
		}
		h.mu.Lock()
		h.cache[week] = cachedReport{report: r, at: h.now()}
		h.mu.Unlock()
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*service.Report), nil
}
