package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ESPNAPI     ESPNAPI
	Report      Report
	Features    Features
	Redis       Redis
	LLM         LLM
	TelegramBot TelegramBot
	Schedule    Schedule
	Server      Server
}

type ESPNAPI struct {
	Year     string `envconfig:"YEAR" required:"true"`
	LeagueID string `envconfig:"LEAGUE_ID" required:"true"`
	SWID     string `envconfig:"SWID"`
	ESPNS2   string `envconfig:"ESPN_S2"`
}

type Report struct {
	DefaultWeek    int    `envconfig:"DEFAULT_WEEK" default:"0"`
	ReportsDir     string `envconfig:"REPORTS_DIR" default:"reports"`
	CacheDir       string `envconfig:"CACHE_DIR" default:"cache"`
	FreeAgentLimit int    `envconfig:"FREE_AGENT_LIMIT" default:"50"`
	Offline        bool   `envconfig:"OFFLINE" default:"false"`
}

type Features struct {
	SleeperURL    string        `envconfig:"SLEEPER_URL" default:"https://api.sleeper.app/v1/players/nfl"`
	FinesURL      string        `envconfig:"FINES_URL" default:"https://www.spotrac.com/nfl/fines/_/year/%d"`
	ScoreboardURL string        `envconfig:"SCOREBOARD_URL" default:"https://site.api.espn.com/apis/site/v2/sports/football/nfl/scoreboard"`
	TTL           time.Duration `envconfig:"FEATURE_TTL" default:"24h"`
}

type Redis struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type LLM struct {
	OpenAIKey   string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel string `envconfig:"OPENAI_MODEL" default:"gpt-4o"`
	GeminiKey   string `envconfig:"GOOGLE_GEMINI_API_KEY"`
	GeminiModel string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	PromptFile  string `envconfig:"PROMPT_FILE" default:"prompt.txt"`
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

// Validate reports whether the bot has what it needs to run. Only the serve
// mode talks to Telegram, so these fields are not required at load time.
func (t TelegramBot) Validate() error {
	if t.Token == "" {
		return errors.New("TELEGRAM_TOKEN is required")
	}
	if t.ChatID == 0 {
		return errors.New("CHAT_ID is required")
	}
	return nil
}

type Schedule struct {
	Report   string `envconfig:"REPORT_SCHEDULE" default:"30 7 * * 2"`
	Timezone string `envconfig:"TIMEZONE" default:"America/Chicago"`
}

type Server struct {
	HealthAddr string `envconfig:"HEALTH_ADDR" default:":80"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
