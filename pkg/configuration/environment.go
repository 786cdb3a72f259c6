package configuration

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/iota-uz/utils/fs"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/jacksonlee411/safety-console/pkg/logging"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

// LoadEnv loads the env files that exist. Missing files are skipped; the
// returned count is the number of files actually read.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if fs.FileExists(file) {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

type DatabaseOptions struct {
	Opts     string `env:"-"`
	Name     string `env:"DB_NAME" envDefault:"safety_console"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	MaxConns int32  `env:"DB_MAX_CONNS" envDefault:"10"`
}

func (d *DatabaseOptions) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s password=%s sslmode=disable pool_max_conns=%d",
		d.Host, d.Port, d.User, d.Name, d.Password, d.MaxConns,
	)
}

type LokiOptions struct {
	AppName string `env:"LOKI_APP_NAME" envDefault:"safety-console"`
	LogPath string `env:"LOG_PATH" envDefault:"./logs/app.log"`
}

type OpenTelemetryOptions struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	TempoURL    string `env:"OTEL_TEMPO_URL" envDefault:"localhost:4318"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"safety-console"`
}

type PrometheusOptions struct {
	Enabled bool   `env:"PROMETHEUS_METRICS_ENABLED" envDefault:"false"`
	Path    string `env:"PROMETHEUS_METRICS_PATH" envDefault:"/debug/prometheus"`
}

type RateLimitOptions struct {
	Enabled   bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	GlobalRPS int    `env:"RATE_LIMIT_GLOBAL_RPS" envDefault:"1000"`
	Storage   string `env:"RATE_LIMIT_STORAGE" envDefault:"memory"` // memory or redis
	RedisURL  string `env:"RATE_LIMIT_REDIS_URL"`
}

// Validate checks the rate limit configuration for errors
func (r *RateLimitOptions) Validate() error {
	if r.GlobalRPS < 0 {
		return fmt.Errorf("rate limit GlobalRPS must be non-negative, got %d", r.GlobalRPS)
	}
	if r.GlobalRPS > 1000000 {
		return fmt.Errorf("rate limit GlobalRPS too high, maximum is 1,000,000, got %d", r.GlobalRPS)
	}
	if r.Storage != "memory" && r.Storage != "redis" {
		return fmt.Errorf("rate limit Storage must be 'memory' or 'redis', got '%s'", r.Storage)
	}
	if r.Storage == "redis" && r.RedisURL == "" {
		return fmt.Errorf("rate limit RedisURL is required when Storage is 'redis'")
	}
	return nil
}

type RosterOptions struct {
	CacheEnabled  bool          `env:"ROSTER_CACHE_ENABLED" envDefault:"false"`
	CacheTTL      time.Duration `env:"ROSTER_CACHE_TTL" envDefault:"5m"`
	MaxWeeks      int           `env:"ROSTER_MAX_WEEKS" envDefault:"8"`
	DefaultLocale string        `env:"ROSTER_DEFAULT_LOCALE" envDefault:"en"`
	AutoMigrate   bool          `env:"ROSTER_AUTO_MIGRATE" envDefault:"false"`
}

func (r *RosterOptions) Validate() error {
	if r.MaxWeeks < 1 || r.MaxWeeks > 53 {
		return fmt.Errorf("ROSTER_MAX_WEEKS must be within 1..53, got %d", r.MaxWeeks)
	}
	if r.CacheEnabled && r.CacheTTL <= 0 {
		return fmt.Errorf("ROSTER_CACHE_TTL must be positive when the cache is enabled, got %s", r.CacheTTL)
	}
	if _, err := language.Parse(r.DefaultLocale); err != nil {
		return fmt.Errorf("invalid ROSTER_DEFAULT_LOCALE=%q: %w", r.DefaultLocale, err)
	}
	return nil
}

type Configuration struct {
	Database      DatabaseOptions
	Loki          LokiOptions
	OpenTelemetry OpenTelemetryOptions
	Prometheus    PrometheusOptions
	RateLimit     RateLimitOptions
	Roster        RosterOptions

	RedisURL           string   `env:"REDIS_URL" envDefault:"localhost:6379"`
	ServerPort         int      `env:"PORT" envDefault:"3200"`
	GoAppEnvironment   string   `env:"GO_APP_ENV" envDefault:"development"`
	SocketAddress      string   `env:"-"`
	Origin             string   `env:"ORIGIN" envDefault:"http://localhost:3200"`
	SupportedLanguages []string `env:"SUPPORTED_LANGUAGES" envDefault:"en,zh" envSeparator:","`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"error"`
	// The server looks for this header in the request; if it's not present, a random uuidv4 is generated
	RequestIDHeader string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`
	// The server looks for this header in the request; if it's not present, request.RemoteAddr is used
	RealIPHeader string `env:"REAL_IP_HEADER" envDefault:"X-Real-IP"`
	// Allowed CORS origins for the roster API.
	CorsOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`

	// Ops endpoints guard (/health, /debug/prometheus). Enforced only in production.
	OpsGuardEnabled bool   `env:"OPS_GUARD_ENABLED" envDefault:"true"`
	OpsGuardCIDRs   string `env:"OPS_GUARD_CIDRS" envDefault:""`
	OpsGuardToken   string `env:"OPS_GUARD_TOKEN" envDefault:""`

	// Optional YAML route rules; the built-in rules are used when empty.
	RoutingRulesPath string `env:"ROUTING_RULES_PATH"`

	logFile *os.File
	logger  *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

func (c *Configuration) Scheme() string {
	if c.GoAppEnvironment == Production { // assume 'https' on production mode
		return "https"
	}
	return "http"
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := c.parse(); err != nil {
		return err
	}

	f, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.Loki.LogPath)
	if err != nil {
		return err
	}
	c.logFile = f
	c.logger = logger
	return nil
}

// parse reads the environment into c and derives the computed fields.
func (c *Configuration) parse() error {
	if err := env.Parse(c); err != nil {
		return err
	}
	if err := c.RateLimit.Validate(); err != nil {
		return fmt.Errorf("rate limit configuration error: %w", err)
	}
	if err := c.Roster.Validate(); err != nil {
		return fmt.Errorf("roster configuration error: %w", err)
	}
	if err := c.validateLanguages(); err != nil {
		return err
	}

	c.Database.Opts = c.Database.ConnectionString()
	if c.GoAppEnvironment == Production {
		c.SocketAddress = fmt.Sprintf(":%d", c.ServerPort)
	} else {
		c.SocketAddress = fmt.Sprintf("localhost:%d", c.ServerPort)
	}
	if os.Getenv("ORIGIN") == "" && c.GoAppEnvironment == "development" {
		c.Origin = fmt.Sprintf("%s://localhost:%d", c.Scheme(), c.ServerPort)
	}
	return nil
}

func (c *Configuration) validateLanguages() error {
	langs := make([]string, 0, len(c.SupportedLanguages))
	for _, raw := range c.SupportedLanguages {
		code := strings.ToLower(strings.TrimSpace(raw))
		if code == "" {
			continue
		}
		if _, err := language.Parse(code); err != nil {
			return fmt.Errorf("invalid SUPPORTED_LANGUAGES entry=%q: %w", raw, err)
		}
		langs = append(langs, code)
	}
	if len(langs) == 0 {
		return fmt.Errorf("SUPPORTED_LANGUAGES must list at least one language")
	}
	c.SupportedLanguages = langs
	return nil
}

// Unload handles a graceful shutdown.
func (c *Configuration) Unload() {
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil {
			log.Printf("Failed to close log file: %v", err)
		}
	}
}
