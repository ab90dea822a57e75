package config

import "time"

const (
	defaultLockExpiry     = 8 * time.Second
	defaultLockTries      = 16
	defaultLockRetryDelay = 50 * time.Millisecond
)

type ServiceConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
	ClientURL   string `yaml:"client_url"`

	// OfferChannelPattern is the per-user notification channel; %d is the
	// recipient user id.
	OfferChannelPattern string `yaml:"offer_channel_pattern"`

	// RecommendationMaxTeamSize caps team size for recommendation
	// eligibility. Teams at or above the cap are not proposed to users.
	RecommendationMaxTeamSize int `yaml:"recommendation_max_team_size"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LockConfig bounds the wait for the per-offer distributed mutex.
type LockConfig struct {
	Expiry     time.Duration `yaml:"expiry"`
	Tries      int           `yaml:"tries"`
	RetryDelay time.Duration `yaml:"retry_delay"`
}
