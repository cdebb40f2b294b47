package retries

import (
	"errors"
	"time"
)

// Config for exponential backoff retries.
type Config struct {
	// InitialInterval between attempts.
	InitialInterval time.Duration
	// RandomizationFactor adds jitter: RandomizedInterval = RetryInterval * [1 - RandomizationFactor, 1 + RandomizationFactor].
	RandomizationFactor float64
	// Multiplier is applied to RetryInterval after every attempt.
	Multiplier float64
	// MaxInterval caps RetryInterval, not RandomizedInterval.
	MaxInterval time.Duration
	// MaxElapsedTime caps the time passed since the first attempt.
	MaxElapsedTime time.Duration
	// MaxRetriesCount is the amount of retries after the first attempt.
	MaxRetriesCount uint64
}

// DefaultHealthcheckConfig is used for datasource availability probes
func DefaultHealthcheckConfig() Config {
	return Config{
		InitialInterval:     200 * time.Millisecond,
		RandomizationFactor: 0.5,
		Multiplier:          2,
		MaxInterval:         2 * time.Second,
		MaxElapsedTime:      10 * time.Second,
		MaxRetriesCount:     2,
	}
}

var (
	errNoInitialInterval                  = errors.New("initial_interval must be specified and can't be 0")
	errNoMaxInterval                      = errors.New("max_interval must be specified and can't be 0")
	errNoMaxElapsedTimeAndMaxRetriesCount = errors.New("at least one of max_elapsed_time, max_retries_count must be specified")
)

// Validate checks that retries Config has all necessary fields.
func (conf Config) Validate() error {
	resErrors := make([]error, 0)

	if conf.InitialInterval == 0 {
		resErrors = append(resErrors, errNoInitialInterval)
	}

	if conf.MaxInterval == 0 {
		resErrors = append(resErrors, errNoMaxInterval)
	}

	if conf.MaxElapsedTime == 0 && conf.MaxRetriesCount == 0 {
		resErrors = append(resErrors, errNoMaxElapsedTimeAndMaxRetriesCount)
	}

	return errors.Join(resErrors...)
}
