package config

// RateLimitConfig controls the optional per-client limiter on the static
// routes.  Rate uses the limiter's "<limit>-<period>" notation, e.g. "60-M"
// for sixty requests per minute.  It is off unless RATE_LIMIT_ENABLED is set.
type RateLimitConfig struct {
	Enabled bool
	Rate    string
	Prefix  string
}

func LoadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled: envBool("RATE_LIMIT_ENABLED", false),
		Rate:    envStr("RATE_LIMIT_RATE", "60-M"),
		Prefix:  envStr("RATE_LIMIT_PREFIX", "rl"),
	}
}
