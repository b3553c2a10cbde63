package engine

import (
	"encoding/json"
	"testing"

	"github.com/framecast-cli/framecast/mirror"
	"github.com/framecast-cli/framecast/stream"
	. "github.com/smartystreets/goconvey/convey"
)

type nopDisplay struct {
	running     bool
	transitions int
}

func (d *nopDisplay) PauseAutoplay()                  { d.running = false }
func (d *nopDisplay) ResumeAutoplay()                 { d.running = true }
func (d *nopDisplay) AutoplayRunning() bool           { return d.running }
func (d *nopDisplay) TransitionTo(_ *stream.MediaRef) { d.transitions++ }

func TestStatus(t *testing.T) {
	Convey("Status starts unauthenticated and flips explicitly", t, func() {
		status := NewStatus()
		So(status.Authenticated(), ShouldBeFalse)

		status.SetAuthenticated(true)
		So(status.Authenticated(), ShouldBeTrue)

		status.SetAuthenticated(false)
		So(status.Authenticated(), ShouldBeFalse)
	})
}

func TestOnMessage(t *testing.T) {
	Convey("Given an engine with a selector over a fake display", t, func() {
		display := &nopDisplay{running: true}
		e := &Engine{
			status:   NewStatus(),
			selector: mirror.NewSelector(display),
		}

		Convey("Session batches reach the selector", func() {
			e.onMessage(stream.Envelope{
				MessageType: stream.MsgSessions,
				Data: json.RawMessage(`[{
					"DeviceId": "dev1",
					"PlayState": {"IsPaused": false, "PositionTicks": 0},
					"NowPlayingItem": {"Id": "m1", "Name": "Movie", "Type": "Movie", "RunTimeTicks": 0}
				}]`),
			})

			So(e.selector.Mirroring(), ShouldBeTrue)
			So(display.transitions, ShouldEqual, 1)
			e.selector.Reset()
		})

		Convey("Malformed session batches are discarded without state changes", func() {
			e.onMessage(stream.Envelope{
				MessageType: stream.MsgSessions,
				Data:        json.RawMessage(`{"not": "a batch"}`),
			})

			So(e.selector.Mirroring(), ShouldBeFalse)
			So(display.transitions, ShouldEqual, 0)
		})

		Convey("Unrelated message types are ignored", func() {
			e.onMessage(stream.Envelope{MessageType: "ActivityLogEntry"})
			So(display.transitions, ShouldEqual, 0)
		})
	})
}
