package core

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/selfjournal/journal-api/internal/core/srv"
	"github.com/selfjournal/journal-api/internal/store"
	"github.com/selfjournal/journal-api/internal/store/entrystore"
	"github.com/selfjournal/journal-api/internal/store/kvstore"
	"github.com/selfjournal/journal-api/pkg/prompts"
	"github.com/selfjournal/journal-api/pkg/stt/elevenlabs"
)

type Core struct {
	cfg CoreConfig
	srv *srv.Srv

	entries    store.JournalEntryStore
	promptBank *prompts.Bank
	sttClient  *elevenlabs.Client
	httpClient *http.Client

	metrics *Metrics
	limiter *limiterPool
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28,   //days
				Compress:   true, // disabled by default
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	core := &Core{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Second * 30},
		metrics:    NewMetrics("journal_api", "core"),
		limiter:    newLimiterPool(),
	}

	core.entries = entrystore.NewEntryStore(kvstore.MustSetup(cfg.Store))
	core.promptBank = prompts.MustLoadBank(cfg.Prompts.Path)

	if cfg.STT.Token != "" {
		core.sttClient = elevenlabs.New(cfg.STT.Endpoint, cfg.STT.Token, cfg.STT.Model, core.httpClient)
	}

	core.srv = srv.SetupSrvs(srv.ApplyAI(cfg.AI))

	return core
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) Store() store.JournalEntryStore {
	return s.entries
}

func (s *Core) PromptBank() *prompts.Bank {
	return s.promptBank
}

// STT returns nil when no transcription token is configured.
func (s *Core) STT() *elevenlabs.Client {
	return s.sttClient
}

func (s *Core) HttpClient() *http.Client {
	return s.httpClient
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}
