package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Assessment AssessmentConfig `yaml:"assessment"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MaxBodyBytes caps the size of a request body; 0 removes the cap.
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES" env-default:"10485760"`
	MetricsEnabled bool `yaml:"metrics_enabled" env:"SERVER_METRICS_ENABLED" env-default:"true"`
	// SubmitRatePerMinute limits POST /submit per client address; 0 disables the limit.
	SubmitRatePerMinute int `yaml:"submit_rate_per_minute" env:"SERVER_SUBMIT_RATE_PER_MINUTE" env-default:"0"`
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DatabaseConfig holds settings of the embedded SQLite store.
type DatabaseConfig struct {
	Path        string        `yaml:"path"         env:"DATABASE_PATH"         env-default:"./submissions.db"`
	BusyTimeout time.Duration `yaml:"busy_timeout" env:"DATABASE_BUSY_TIMEOUT" env-default:"5s"`
	// MaxOpenConns bounds the pool; SQLite allows a single writer at a time.
	MaxOpenConns int `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS" env-default:"1"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AssessmentConfig holds candidate-facing settings of the test session.
type AssessmentConfig struct {
	Title string `yaml:"title" env:"ASSESSMENT_TITLE" env-default:"EulerQ Candidate Test"`
	// QuestionsPath points to a YAML question bank; empty uses the built-in one.
	QuestionsPath string        `yaml:"questions_path"   env:"ASSESSMENT_QUESTIONS_PATH"`
	AutosaveEvery time.Duration `yaml:"autosave_every"   env:"ASSESSMENT_AUTOSAVE_EVERY"   env-default:"5s"`
	AnonymousName string        `yaml:"anonymous_name"   env:"ASSESSMENT_ANONYMOUS_NAME"   env-default:"anonymous"`
	CookieName    string        `yaml:"cookie_name"      env:"ASSESSMENT_COOKIE_NAME"      env-default:"candidate_name"`
}
