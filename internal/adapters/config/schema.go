package config

// File represents the structure of the clustertap.yaml configuration file.
// Every field is optional; absent fields keep their defaults.
type File struct {
	Cache      *CacheDTO      `yaml:"cache"`
	Classifier *ClassifierDTO `yaml:"classifier"`
	Extractor  *ExtractorDTO  `yaml:"extractor"`
	Server     *ServerDTO     `yaml:"server"`
	Spool      *SpoolDTO      `yaml:"spool"`
	Log        *LogDTO        `yaml:"log"`
}

// CacheDTO configures the correlation cache. Durations use Go syntax ("5m").
type CacheDTO struct {
	MaxAge        string `yaml:"maxAge"`
	SweepInterval string `yaml:"sweepInterval"`
}

// ClassifierDTO configures the address pattern ladder.
type ClassifierDTO struct {
	Patterns []string `yaml:"patterns"`
}

// ExtractorDTO configures the shape matchers.
type ExtractorDTO struct {
	CollectionFields []string `yaml:"collectionFields"`
	BodyFields       []string `yaml:"bodyFields"`
	RequestFields    []string `yaml:"requestFields"`
	IDKeys           []string `yaml:"idKeys"`
	HistorySize      *int     `yaml:"historySize"`
}

// ServerDTO configures the ingest server.
type ServerDTO struct {
	Addr string `yaml:"addr"`
}

// SpoolDTO configures the spool directory source.
type SpoolDTO struct {
	Dir string `yaml:"dir"`
}

// LogDTO configures logging.
type LogDTO struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}
