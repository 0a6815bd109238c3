package storage

// Config holds configuration for the object storage used for feed mirrors and run reports.
type Config struct {
	// Enabled turns the storage integration on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds feed mirrors and reports.
	Bucket string `mapstructure:"bucket" default:"stock-sync"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// ReportPrefix is the key prefix of uploaded run reports.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports/"`
	// ReportRetention is how many reports to keep; 0 keeps all.
	ReportRetention int `mapstructure:"report_retention" default:"200"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
