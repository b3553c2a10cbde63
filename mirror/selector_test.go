package mirror

import (
	"sync"
	"testing"
	"time"

	"github.com/framecast-cli/framecast/stream"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeDisplay struct {
	mu          sync.Mutex
	running     bool
	pauses      int
	resumes     int
	transitions []string
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{running: true}
}

func (d *fakeDisplay) PauseAutoplay() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = false
	d.pauses++
}

func (d *fakeDisplay) ResumeAutoplay() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = true
	d.resumes++
}

func (d *fakeDisplay) AutoplayRunning() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

func (d *fakeDisplay) TransitionTo(media *stream.MediaRef) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.transitions = append(d.transitions, media.ID)
}

func (d *fakeDisplay) shown() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.transitions...)
}

func (d *fakeDisplay) resumeCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.resumes
}

func playingSnapshot(device string, media *stream.MediaRef, positionTicks int64) stream.SessionSnapshot {
	return stream.SessionSnapshot{
		DeviceID:       device,
		PlayState:      &stream.PlayState{IsPaused: false, PositionTicks: positionTicks},
		NowPlayingItem: media,
	}
}

func pausedSnapshot(device string, media *stream.MediaRef, positionTicks int64) stream.SessionSnapshot {
	return stream.SessionSnapshot{
		DeviceID:       device,
		PlayState:      &stream.PlayState{IsPaused: true, PositionTicks: positionTicks},
		NowPlayingItem: media,
	}
}

func TestEndDelay(t *testing.T) {
	Convey("The end-of-media prediction converts ticks and pads a buffer", t, func() {
		So(endDelay(600000000, 0), ShouldEqual, 60*time.Second+500*time.Millisecond)
		So(endDelay(600000000, 590000000), ShouldEqual, 1*time.Second+500*time.Millisecond)

		Convey("A position past the runtime leaves only the buffer", func() {
			So(endDelay(100, 200), ShouldEqual, 500*time.Millisecond)
		})
	})
}

func TestSessionSelection(t *testing.T) {
	track := &stream.MediaRef{ID: "trackX", Name: "Track X", RunTimeTicks: 600000000}

	Convey("Given a selector over a fake display", t, func() {
		display := newFakeDisplay()
		selector := NewSelector(display)

		Convey("A playing session pauses autoplay and transitions the display", func() {
			selector.OnSnapshotBatch([]stream.SessionSnapshot{playingSnapshot("dev1", track, 0)})

			So(selector.Mirroring(), ShouldBeTrue)
			So(display.AutoplayRunning(), ShouldBeFalse)
			So(display.shown(), ShouldResemble, []string{"trackX"})
			selector.Reset()
		})

		Convey("Batches without any playing session clear tracking and resume autoplay", func() {
			selector.OnSnapshotBatch([]stream.SessionSnapshot{playingSnapshot("dev1", track, 0)})

			selector.OnSnapshotBatch(nil)
			So(selector.Mirroring(), ShouldBeFalse)
			So(display.AutoplayRunning(), ShouldBeTrue)

			Convey("And repeated empty batches are idempotent", func() {
				resumes := display.resumeCount()
				selector.OnSnapshotBatch(nil)
				selector.OnSnapshotBatch(nil)
				So(selector.Mirroring(), ShouldBeFalse)
				So(display.resumeCount(), ShouldEqual, resumes)
			})
		})

		Convey("A finished item reported as playing ends the session synchronously", func() {
			selector.OnSnapshotBatch([]stream.SessionSnapshot{playingSnapshot("dev1", track, 0)})

			selector.OnSnapshotBatch([]stream.SessionSnapshot{
				playingSnapshot("dev1", track, track.RunTimeTicks),
			})

			So(selector.Mirroring(), ShouldBeFalse)
			So(display.AutoplayRunning(), ShouldBeTrue)
		})

		Convey("Pausing ends the session whether or not the media changed", func() {
			selector.OnSnapshotBatch([]stream.SessionSnapshot{playingSnapshot("dev1", track, 0)})

			selector.OnSnapshotBatch([]stream.SessionSnapshot{pausedSnapshot("dev1", track, 50)})

			So(selector.Mirroring(), ShouldBeFalse)
			So(display.AutoplayRunning(), ShouldBeTrue)
		})

		Convey("The tracked device wins over other playing sessions", func() {
			selector.OnSnapshotBatch([]stream.SessionSnapshot{playingSnapshot("dev1", track, 0)})

			other := &stream.MediaRef{ID: "other", Name: "Other", RunTimeTicks: 600000000}
			selector.OnSnapshotBatch([]stream.SessionSnapshot{
				playingSnapshot("dev2", other, 0),
				pausedSnapshot("dev1", track, 50),
			})

			// dev1 paused, so its session ends even though dev2 is playing.
			So(selector.Mirroring(), ShouldBeFalse)
			So(display.shown(), ShouldResemble, []string{"trackX"})

			Convey("Once tracking clears, the next batch adopts the playing device", func() {
				selector.OnSnapshotBatch([]stream.SessionSnapshot{
					playingSnapshot("dev2", other, 0),
				})
				So(selector.Mirroring(), ShouldBeTrue)
				So(display.shown(), ShouldResemble, []string{"trackX", "other"})
				selector.Reset()
			})
		})

		Convey("A media change on the tracked device transitions again", func() {
			selector.OnSnapshotBatch([]stream.SessionSnapshot{playingSnapshot("dev1", track, 0)})

			next := &stream.MediaRef{ID: "trackY", Name: "Track Y", RunTimeTicks: 600000000}
			selector.OnSnapshotBatch([]stream.SessionSnapshot{playingSnapshot("dev1", next, 0)})

			So(selector.Mirroring(), ShouldBeTrue)
			So(display.shown(), ShouldResemble, []string{"trackX", "trackY"})
			selector.Reset()
		})
	})
}

func TestPredictiveEndTimer(t *testing.T) {
	Convey("Given a short item playing on a remote device", t, func() {
		display := newFakeDisplay()
		selector := NewSelector(display)

		// 200ms of runtime, so the timer fires at ~700ms.
		short := &stream.MediaRef{ID: "short", Name: "Short", RunTimeTicks: 2000000}

		selector.OnSnapshotBatch([]stream.SessionSnapshot{playingSnapshot("dev1", short, 0)})
		So(selector.Mirroring(), ShouldBeTrue)
		So(display.AutoplayRunning(), ShouldBeFalse)

		Convey("A repeat snapshot of the same media leaves the timer untouched", func() {
			selector.OnSnapshotBatch([]stream.SessionSnapshot{playingSnapshot("dev1", short, 500000)})
			So(selector.Mirroring(), ShouldBeTrue)
			So(display.shown(), ShouldResemble, []string{"short"})

			Convey("And with no further batches the timer resumes the slideshow", func() {
				So(selector.Mirroring(), ShouldBeTrue)
				time.Sleep(time.Second)
				So(selector.Mirroring(), ShouldBeFalse)
				So(display.AutoplayRunning(), ShouldBeTrue)
			})
		})

		Convey("A media change supersedes the armed timer", func() {
			unknown := &stream.MediaRef{ID: "unknown", Name: "Unknown", RunTimeTicks: 0}
			selector.OnSnapshotBatch([]stream.SessionSnapshot{playingSnapshot("dev1", unknown, 0)})

			// The first item's timer would have fired by now; the session
			// it armed for is gone, so mirroring must survive.
			time.Sleep(time.Second)
			So(selector.Mirroring(), ShouldBeTrue)
			So(display.shown(), ShouldResemble, []string{"short", "unknown"})
			selector.Reset()
		})

		Convey("An unknown runtime never arms a timer", func() {
			unknown := &stream.MediaRef{ID: "unknown", Name: "Unknown", RunTimeTicks: 0}
			selector.OnSnapshotBatch([]stream.SessionSnapshot{playingSnapshot("dev2", unknown, 0)})
			selector.mu.Lock()
			timer := selector.endTimer
			selector.mu.Unlock()
			So(timer, ShouldBeNil)
			selector.Reset()
		})
	})
}
