package stream

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDelay(t *testing.T) {
	Convey("Backoff delays grow geometrically up to the ceiling", t, func() {
		So(Delay(0), ShouldEqual, 1000*time.Millisecond)
		So(Delay(1), ShouldEqual, 1500*time.Millisecond)
		So(Delay(2), ShouldEqual, 2250*time.Millisecond)
		So(Delay(3), ShouldEqual, 3375*time.Millisecond)
		So(Delay(4), ShouldEqual, 5062500*time.Microsecond)

		Convey("The exponent stops growing after ten retries", func() {
			So(Delay(10), ShouldEqual, Delay(11))
			So(Delay(10), ShouldEqual, Delay(100))
		})

		Convey("Delays never exceed thirty seconds", func() {
			for attempt := 0; attempt < 20; attempt++ {
				So(Delay(attempt), ShouldBeLessThanOrEqualTo, 30*time.Second)
			}
		})
	})
}

func TestReconnectorRun(t *testing.T) {
	Convey("Given a reconnector with a recorded sleep", t, func() {
		var slept []time.Duration
		var attempts int

		Convey("It retries with growing delays until a connect succeeds", func() {
			r := &Reconnector{
				Connect: func() error {
					attempts++
					if attempts < 4 {
						return errors.New("refused")
					}
					return nil
				},
				Authenticated: func() bool { return true },
				Sleep:         func(d time.Duration) { slept = append(slept, d) },
			}

			r.Run()

			So(attempts, ShouldEqual, 4)
			So(slept, ShouldResemble, []time.Duration{Delay(0), Delay(1), Delay(2), Delay(3)})
		})

		Convey("It never attempts a connect once the gate closes", func() {
			authenticated := true
			r := &Reconnector{
				Connect: func() error {
					attempts++
					return errors.New("refused")
				},
				Authenticated: func() bool { return authenticated },
				Sleep: func(d time.Duration) {
					slept = append(slept, d)
					if len(slept) == 3 {
						authenticated = false
					}
				},
			}

			r.Run()

			So(attempts, ShouldEqual, 2)
			So(len(slept), ShouldEqual, 3)
		})

		Convey("It does not sleep at all when the gate is already closed", func() {
			r := &Reconnector{
				Connect:       func() error { attempts++; return nil },
				Authenticated: func() bool { return false },
				Sleep:         func(d time.Duration) { slept = append(slept, d) },
			}

			r.Run()

			So(attempts, ShouldEqual, 0)
			So(slept, ShouldBeEmpty)
		})
	})
}
