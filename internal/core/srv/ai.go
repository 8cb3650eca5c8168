package srv

import (
	"context"
	"log/slog"
	"os"

	"github.com/selfjournal/journal-api/pkg/ai"
	"github.com/selfjournal/journal-api/pkg/ai/gemini"
	"github.com/selfjournal/journal-api/pkg/ai/openai"
)

const USAGE_REPORT = "report"

type AIConfig struct {
	Gemini Gemini `toml:"gemini"`
	Openai Openai `toml:"openai"`
	// Usage maps a usage name to a driver name, e.g. report = "gemini".
	Usage map[string]string `toml:"usage"`
}

func (c *AIConfig) FromENV() {
	c.Usage = make(map[string]string)
	c.Usage[USAGE_REPORT] = os.Getenv("JOURNAL_API_AI_USAGE_REPORT")

	c.Gemini.FromENV()
	c.Openai.FromENV()
}

type Gemini struct {
	Token     string `toml:"token"`
	ChatModel string `toml:"chat_model"`
}

func (c *Gemini) FromENV() {
	c.Token = os.Getenv("JOURNAL_API_AI_GEMINI_TOKEN")
	c.ChatModel = os.Getenv("JOURNAL_API_AI_GEMINI_CHAT_MODEL")
}

func (cfg *Gemini) Install(root *AI) {
	driver, err := gemini.New(context.Background(), cfg.Token, ai.ModelName{ChatModel: cfg.ChatModel})
	if err != nil {
		slog.Error("Failed to install ai driver", slog.String("driver", gemini.NAME), slog.String("error", err.Error()))
		return
	}
	installAI(root, gemini.NAME, driver)
}

type Openai struct {
	Token     string `toml:"token"`
	Endpoint  string `toml:"endpoint"`
	ChatModel string `toml:"chat_model"`
}

func (c *Openai) FromENV() {
	c.Token = os.Getenv("JOURNAL_API_AI_OPENAI_TOKEN")
	c.Endpoint = os.Getenv("JOURNAL_API_AI_OPENAI_ENDPOINT")
	c.ChatModel = os.Getenv("JOURNAL_API_AI_OPENAI_CHAT_MODEL")
}

func (cfg *Openai) Install(root *AI) {
	installAI(root, openai.NAME, openai.New(cfg.Token, cfg.Endpoint, ai.ModelName{ChatModel: cfg.ChatModel}))
}

// AI routes each usage to a configured driver, falling back to whichever
// driver installed first.
type AI struct {
	reportDrivers map[string]ai.ReportAI
	reportUsage   map[string]ai.ReportAI
	reportDefault ai.ReportAI

	// ChatModel per driver, used for token budgeting
	models map[string]ai.ModelName
}

func installAI(root *AI, name string, driver ai.ReportAI) {
	root.reportDrivers[name] = driver
	if root.reportDefault == nil {
		root.reportDefault = driver
	}
}

func ApplyAI(cfg AIConfig) ApplyFunc {
	return func(s *Srv) {
		root := &AI{
			reportDrivers: make(map[string]ai.ReportAI),
			reportUsage:   make(map[string]ai.ReportAI),
			models: map[string]ai.ModelName{
				gemini.NAME: {ChatModel: cfg.Gemini.ChatModel},
				openai.NAME: {ChatModel: cfg.Openai.ChatModel},
			},
		}

		if cfg.Gemini.Token != "" {
			cfg.Gemini.Install(root)
		}
		if cfg.Openai.Token != "" {
			cfg.Openai.Install(root)
		}

		for usage, driverName := range cfg.Usage {
			if driver, ok := root.reportDrivers[driverName]; ok {
				root.reportUsage[usage] = driver
			}
		}

		s.ai = root
	}
}

// Configured reports whether any report driver installed; without one the
// insight endpoint falls back to the template report.
func (s *AI) Configured() bool {
	return s.reportDefault != nil
}

func (s *AI) WeeklyReport(ctx context.Context, system, payload string) (ai.GenerateResponse, error) {
	if d := s.reportUsage[USAGE_REPORT]; d != nil {
		return d.WeeklyReport(ctx, system, payload)
	}
	return s.reportDefault.WeeklyReport(ctx, system, payload)
}

// ReportModel exposes the chat model backing the report usage, for token
// budgeting when rendering the payload.
func (s *AI) ReportModel() string {
	for name, driver := range s.reportDrivers {
		if driver == s.reportUsage[USAGE_REPORT] || (s.reportUsage[USAGE_REPORT] == nil && driver == s.reportDefault) {
			return s.models[name].ChatModel
		}
	}
	return ""
}
