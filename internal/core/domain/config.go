package domain

import "time"

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "clustertap.yaml"

	// DefaultMaxAge is how long a correlation entry survives before a sweep purges it.
	DefaultMaxAge = 300 * time.Second

	// DefaultSweepInterval is how often the correlation cache is swept.
	DefaultSweepInterval = 60 * time.Second

	// DefaultHistorySize is the number of classified responses kept for the
	// extractor's envelope fallback.
	DefaultHistorySize = 64

	// DefaultServerAddr is the listen address of the ingest server.
	DefaultServerAddr = "127.0.0.1:7420"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Config is the static configuration of clustertap, loaded once at startup.
type Config struct {
	Cache      CacheConfig
	Classifier ClassifierConfig
	Extractor  ExtractorConfig
	Server     ServerConfig
	Spool      SpoolConfig
	Log        LogConfig
}

// CacheConfig configures the correlation cache.
type CacheConfig struct {
	MaxAge        time.Duration `validate:"gt=0"`
	SweepInterval time.Duration `validate:"gt=0"`
}

// ClassifierConfig configures the classifier's address pattern ladder.
// Patterns are regular expressions, matched case-insensitively in order.
type ClassifierConfig struct {
	Patterns []string `validate:"dive,required"`
}

// ExtractorConfig configures the shape matchers.
type ExtractorConfig struct {
	// CollectionFields are the field names under "data" that hold cluster
	// collections, tried in order.
	CollectionFields []string `validate:"min=1,dive,required"`
	// BodyFields are the envelope fields that may carry an embedded response body.
	BodyFields []string `validate:"dive,required"`
	// RequestFields are the envelope fields that may carry the companion request.
	RequestFields []string `validate:"dive,required"`
	// IDKeys are the keys whose values identify a cluster in a request.
	IDKeys []string `validate:"dive,required"`
	// HistorySize bounds the payload history.
	HistorySize int `validate:"gte=0"`
}

// ServerConfig configures the ingest server.
type ServerConfig struct {
	Addr string `validate:"required"`
}

// SpoolConfig configures the spool-directory source. An empty Dir disables it.
type SpoolConfig struct {
	Dir string
}

// LogConfig configures logging.
type LogConfig struct {
	Format string `validate:"oneof=pretty json"`
	Level  string `validate:"oneof=debug info warn error"`
}

// DefaultPatterns returns the default address pattern ladder. The last entry is
// the gateway-specific pattern.
func DefaultPatterns() []string {
	return []string{
		`graphql`,
		`/gql(/|\?|$)`,
		`persisted[-_]?quer(y|ies)`,
		`/api/query(/|\?|$)`,
		`/service/[a-z0-9-]+/gateway/graph`,
	}
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			MaxAge:        DefaultMaxAge,
			SweepInterval: DefaultSweepInterval,
		},
		Classifier: ClassifierConfig{
			Patterns: DefaultPatterns(),
		},
		Extractor: ExtractorConfig{
			CollectionFields: []string{"clusters", "matchClusters"},
			BodyFields:       []string{"responseBody", "body", "response"},
			RequestFields:    []string{"request", "requestBody"},
			IDKeys:           []string{"clusterId", "id"},
			HistorySize:      DefaultHistorySize,
		},
		Server: ServerConfig{
			Addr: DefaultServerAddr,
		},
		Log: LogConfig{
			Format: "pretty",
			Level:  "info",
		},
	}
}
