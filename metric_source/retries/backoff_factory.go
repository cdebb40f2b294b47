package retries

import "github.com/cenkalti/backoff/v4"

// BackoffFactory returns a fresh backoff policy for every probe.
type BackoffFactory func() backoff.BackOff

// Exponential builds a BackoffFactory from config. MaxRetriesCount caps the
// attempts on top of MaxElapsedTime when set.
func Exponential(config Config) BackoffFactory {
	return func() backoff.BackOff {
		var policy backoff.BackOff = backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(config.InitialInterval),
			backoff.WithRandomizationFactor(config.RandomizationFactor),
			backoff.WithMultiplier(config.Multiplier),
			backoff.WithMaxInterval(config.MaxInterval),
			backoff.WithMaxElapsedTime(config.MaxElapsedTime),
		)
		if config.MaxRetriesCount > 0 {
			policy = backoff.WithMaxRetries(policy, config.MaxRetriesCount)
		}
		return policy
	}
}
