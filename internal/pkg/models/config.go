package models

// Config represents application configuration
type Config struct {
	App            AppConfig
	Server         ServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	NATS           NATSConfig
	NewRelic       NewRelicConfig
	Logger         LoggerConfig
	DistanceMatrix DistanceMatrixConfig
	Pricing        PricingConfig
	Pagination     PaginationConfig
	RateLimit      RateLimitConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NewRelicConfig contains New Relic monitoring configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}

// DistanceMatrixConfig contains the external distance-matrix provider settings
type DistanceMatrixConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

// PricingConfig contains fare calculation settings
type PricingConfig struct {
	RatePerKm string
}

// PaginationConfig contains listing settings shared process-wide
type PaginationConfig struct {
	PageSize int
}

// RateLimitConfig contains booking rate limiter settings
type RateLimitConfig struct {
	Enabled       bool
	Limit         int
	PeriodSeconds int
}
