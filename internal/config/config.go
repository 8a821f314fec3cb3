// internal/config/config.go
//
// Environment-driven configuration for the solver.
//
// Environment variables (a .env file is loaded first when present):
//   LOG_LEVEL                 zerolog level (default "info")
//   SOLVER_WORDS_FILE         dictionary file (default: embedded list)
//   SOLVER_FREQ_FILE          "word count" frequency file (default: embedded table)
//   SOLVER_BRUTE_FORCE_LIMIT  largest candidate set ranked by elimination (500)
//   SOLVER_SUGGESTIONS        suggestions shown per list (48)
//   SOLVER_WORKERS            elimination workers, 0 = GOMAXPROCS (0)
//   SOLVER_COLOR              colour feedback tiles on a terminal (false)
//   SOLVER_DAILY_SALT         salt for the deterministic daily word ("local_dev_salt")
//   SOLVER_MAX_TURNS          turn budget for simulated games (6)

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/ranker"
)

// Config holds every tunable of the solver.
type Config struct {
	LogLevel  string
	WordsFile string
	FreqFile  string
	Ranker    ranker.Config
	Color     bool
	DailySalt string
	MaxTurns  int
}

// Load reads .env (if any) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("read .env")
	}
	def := ranker.DefaultConfig()
	return Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		WordsFile: os.Getenv("SOLVER_WORDS_FILE"),
		FreqFile:  os.Getenv("SOLVER_FREQ_FILE"),
		Ranker: ranker.Config{
			BruteForceLimit: getEnvInt("SOLVER_BRUTE_FORCE_LIMIT", def.BruteForceLimit),
			Limit:           getEnvInt("SOLVER_SUGGESTIONS", def.Limit),
			Workers:         getEnvInt("SOLVER_WORKERS", def.Workers),
		},
		Color:     getEnvBool("SOLVER_COLOR", false),
		DailySalt: getEnv("SOLVER_DAILY_SALT", "local_dev_salt"),
		MaxTurns:  getEnvInt("SOLVER_MAX_TURNS", 6),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Warn().Str("key", k).Str("value", v).Msg("invalid integer, using default")
		return def
	}
	return n
}

func getEnvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("invalid boolean, using default")
		return def
	}
	return b
}
