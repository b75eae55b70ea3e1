package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFiles are loaded, when present, before the environment is parsed.
// Variables already set in the process environment take precedence.
var DefaultEnvFiles = []string{".env", "config/.env"}

type Config struct {
	OpenaiKey     string `env:"OPENAI_API_KEY,required,notEmpty"`
	OpenaiBaseURL string `env:"OPENAI_BASE_URL"`

	LlmModel   string `env:"LLM_MODEL" envDefault:"gpt-4o"`
	LlmRetries int    `env:"LLM_RETRIES" envDefault:"0"`

	StrictPlanPolicy   bool `env:"PLAN_STRICT_POLICY" envDefault:"false"`
	NotesMaxFetchBytes int  `env:"NOTES_MAX_FETCH_BYTES" envDefault:"65536"`

	Addr        string   `env:"ADDR" envDefault:":8080"`
	StaticDir   string   `env:"STATIC_DIR" envDefault:"./web"`
	CORSOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`

	Debug     bool   `env:"DEBUG" envDefault:"false"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	LogFile   string `env:"LOG_FILE"`
}

// LoadConfig reads the default env files and parses the environment.
func LoadConfig() (*Config, error) {
	return Load(DefaultEnvFiles...)
}

// Load reads each existing file in files into the environment and then
// parses Config. A missing OPENAI_API_KEY is reported as an error.
func Load(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
