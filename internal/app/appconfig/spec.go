package appconfig

import (
	"time"

	"webby.dev/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address for serving the property board.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:4000"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotating log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, pprof is mounted and logs are emitted at trace level.
	DevMode bool `split_words:"true"`

	// PostgresDSN is the data source name for the PostgreSQL database. See
	// https://bun.uptrace.dev/postgres/#pgdriver for more details on how to construct a PostgreSQL DSN.
	// The default connects over the local unix socket to the webby database.
	PostgresDSN string `required:"true" split_words:"true" default:"postgres:///webby?host=/run/postgresql&sslmode=disable"`

	// PostgresMaxOpenConns also bounds how many statements may run concurrently.
	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	// BunDebugVerbose logs every statement instead of only the failed ones.
	BunDebugVerbose bool `split_words:"true"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	HTTPReadTimeout  time.Duration `split_words:"true" default:"20s"`
	HTTPWriteTimeout time.Duration `split_words:"true" default:"20s"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
