package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ganeshpodishetti/portfolio-api/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. Token lifetimes are given in minutes (access) and days (refresh).
// Zero values are treated as "not set" and leave the target untouched.
type JsonConfig struct {
	EndpointAddrHTTP   string  `json:"endpoint_addr_http"`
	DatabaseDSN        string  `json:"database_dsn"`
	SecretKey          string  `json:"secret_key"`
	JWTIssuer          string  `json:"jwt_issuer"`
	JWTAudience        string  `json:"jwt_audience"`
	AccessTokenMinutes int     `json:"access_token_minutes"`
	RefreshTokenDays   int     `json:"refresh_token_days"`
	RateLimitRPS       float64 `json:"rate_limit_rps"`
	RateLimitBurst     int     `json:"rate_limit_burst"`
	S3AccessKey        string  `json:"s3_access_key"`
	S3SecretKey        string  `json:"s3_secret_key"`
	S3Bucket           string  `json:"s3_bucket"`
	S3Region           string  `json:"s3_region"`
	S3BaseEndpoint     string  `json:"s3_base_endpoint"`
}

// parseJson loads configuration from the JSON file named by the -c/-config
// flags, if any. An unreadable or invalid file panics: the server must not
// start on a half-applied configuration.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.JWTIssuer != "" {
		config.JWTIssuer = c.JWTIssuer
	}
	if c.JWTAudience != "" {
		config.JWTAudience = c.JWTAudience
	}
	if c.AccessTokenMinutes > 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenMinutes) * time.Minute
	}
	if c.RefreshTokenDays > 0 {
		config.RefreshTokenValidityDuration = time.Duration(c.RefreshTokenDays) * 24 * time.Hour
	}
	if c.RateLimitRPS > 0 {
		config.RateLimitRPS = c.RateLimitRPS
	}
	if c.RateLimitBurst > 0 {
		config.RateLimitBurst = c.RateLimitBurst
	}
	if c.S3AccessKey != "" {
		config.S3AccessKey = c.S3AccessKey
	}
	if c.S3SecretKey != "" {
		config.S3SecretKey = c.S3SecretKey
	}
	if c.S3Bucket != "" {
		config.S3Bucket = c.S3Bucket
	}
	if c.S3Region != "" {
		config.S3Region = c.S3Region
	}
	if c.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = c.S3BaseEndpoint
	}
}
