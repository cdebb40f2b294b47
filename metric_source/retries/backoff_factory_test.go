package retries

import (
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	testInitialInterval     = time.Millisecond * 5
	testRandomizationFactor = 0.0
	testMultiplier          = 2.0
	testMaxInterval         = time.Millisecond * 40
)

func TestExponential(t *testing.T) {
	Convey("Exponential backoff factory", t, func() {
		conf := Config{
			InitialInterval:     testInitialInterval,
			RandomizationFactor: testRandomizationFactor,
			Multiplier:          testMultiplier,
			MaxInterval:         testMaxInterval,
		}

		Convey("with retry interval always lower then config.MaxInterval", func() {
			conf.MaxRetriesCount = 3

			expectedBackoffs := []time.Duration{
				testInitialInterval,
				testInitialInterval * testMultiplier,
				testInitialInterval * 4.0,
				backoff.Stop,
				backoff.Stop,
			}

			b := Exponential(conf)()
			for i := range expectedBackoffs {
				So(b.NextBackOff(), ShouldEqual, expectedBackoffs[i])
			}
		})

		Convey("with retry interval reaching config.MaxInterval", func() {
			conf.MaxRetriesCount = 5

			expectedBackoffs := []time.Duration{
				testInitialInterval,
				testInitialInterval * testMultiplier,
				testInitialInterval * 4.0,
				testMaxInterval,
				testMaxInterval,
				backoff.Stop,
			}

			b := Exponential(conf)()
			for i := range expectedBackoffs {
				So(b.NextBackOff(), ShouldEqual, expectedBackoffs[i])
			}
		})
	})
}
