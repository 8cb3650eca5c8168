package core

import (
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/selfjournal/journal-api/internal/core/srv"
	"github.com/selfjournal/journal-api/internal/store/kvstore"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var conf CoreConfig
	if err = toml.Unmarshal(raw, &conf); err != nil {
		panic(err)
	}
	return conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr string `toml:"addr"`
	Log  Log    `toml:"log"`

	Store kvstore.Config `toml:"store"`

	AI srv.AIConfig `toml:"ai"`

	STT STTConfig `toml:"stt"`

	Prompts PromptsConfig `toml:"prompts"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("JOURNAL_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Store.FromENV()
	c.AI.FromENV()
	c.STT.FromENV()
	c.Prompts.FromENV()
}

type PromptsConfig struct {
	// Path overrides the embedded prompt bank.
	Path string `toml:"path"`
}

func (c *PromptsConfig) FromENV() {
	c.Path = os.Getenv("JOURNAL_API_PROMPTS_PATH")
}

type STTConfig struct {
	Endpoint string `toml:"endpoint"`
	Token    string `toml:"token"`
	Model    string `toml:"model"`
}

func (c *STTConfig) FromENV() {
	c.Endpoint = os.Getenv("JOURNAL_API_STT_ENDPOINT")
	c.Token = os.Getenv("JOURNAL_API_STT_TOKEN")
	c.Model = os.Getenv("JOURNAL_API_STT_MODEL")
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("JOURNAL_API_LOG_LEVEL")
	l.Path = os.Getenv("JOURNAL_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
