package stream

import (
	"math"
	"time"

	"github.com/framecast-cli/framecast/log"
	"github.com/framecast-cli/framecast/util"
)

const (
	backoffBase        = time.Second
	backoffFactor      = 1.5
	backoffMaxExponent = 10
	backoffCeiling     = 30 * time.Second
)

// Delay returns the wait before retry attempt n (0-based). Delays grow
// geometrically and are capped at the ceiling.
func Delay(attempt int) time.Duration {
	exponent := util.Min(attempt, backoffMaxExponent)
	delay := time.Duration(float64(backoffBase) * math.Pow(backoffFactor, float64(exponent)))
	return util.Min(delay, backoffCeiling)
}

// Reconnector re-establishes a dropped feed connection with exponential
// backoff. It retries indefinitely while the gate holds; there is no attempt
// cap, since an unattended display should outlast arbitrarily long outages.
type Reconnector struct {
	// Connect attempts one connection and reports whether it succeeded.
	Connect func() error

	// Authenticated gates retrying. Once it reports false the loop stops,
	// so logging out cancels any reconnection in flight.
	Authenticated func() bool

	// Sleep is swapped out in tests. Nil means time.Sleep.
	Sleep func(time.Duration)
}

// Run blocks until a connection attempt succeeds or the gate closes.
func (r *Reconnector) Run() {
	sleep := r.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	for attempt := 0; ; attempt++ {
		if !r.Authenticated() {
			log.Info("stream: reconnect abandoned, no longer authenticated")
			return
		}

		delay := Delay(attempt)
		log.Infof("stream: reconnecting in %s (attempt %d)", delay, attempt+1)
		sleep(delay)

		if !r.Authenticated() {
			log.Info("stream: reconnect abandoned, no longer authenticated")
			return
		}

		err := r.Connect()
		if err == nil {
			return
		}
		log.Warnf("stream: reconnect attempt %d failed: %v", attempt+1, err)
	}
}
