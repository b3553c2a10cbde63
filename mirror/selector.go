// Package mirror decides, on every inbound session batch, whether the display
// keeps looping its slideshow, interrupts it to reflect a live remote playback
// session, or resumes looping when that session ends.
package mirror

import (
	"sync"
	"time"

	"github.com/framecast-cli/framecast/log"
	"github.com/framecast-cli/framecast/stream"
	"github.com/framecast-cli/framecast/util"
	"github.com/samber/mo"
)

// endBuffer pads the predicted end-of-media instant so the timer fires just
// after playback actually finishes.
const endBuffer = 500 * time.Millisecond

// Display is the carousel surface the selector commands.
type Display interface {
	PauseAutoplay()
	ResumeAutoplay()
	AutoplayRunning() bool
	TransitionTo(media *stream.MediaRef)
}

// Selector tracks at most one remote playback session and mirrors it on the
// display. The remote feed gives no guaranteed "stopped" event before going
// quiet, so the selector also arms a predictive end-of-media timer that
// resumes the slideshow even if no further batch arrives.
type Selector struct {
	mu      sync.Mutex
	display Display

	trackedDevice mo.Option[string]
	trackedMedia  mo.Option[string]
	mirroring     bool
	endTimer      *time.Timer
}

// NewSelector creates a selector commanding the given display.
func NewSelector(display Display) *Selector {
	return &Selector{display: display}
}

// Mirroring reports whether a remote session currently owns the display.
func (s *Selector) Mirroring() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mirroring
}

// Reset cancels any pending timer and drops all tracking state without
// touching the display. Used on shutdown and logout.
func (s *Selector) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelTimerLocked()
	s.trackedDevice = mo.None[string]()
	s.trackedMedia = mo.None[string]()
	s.mirroring = false
}

// OnSnapshotBatch is the sole entry point, called once per telemetry push.
// Each batch is a full replacement of the feed's known session set.
func (s *Selector) OnSnapshotBatch(batch []stream.SessionSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := s.selectLocked(batch)
	if selected == nil || selected.NowPlayingItem == nil {
		s.endSessionLocked()
		return
	}

	media := selected.NowPlayingItem
	playing := selected.Playing()
	position := selected.Position()

	// The feed sometimes reports a finished item as still playing at its
	// final position; treat that as already ended.
	if playing && media.RunTimeTicks > 0 && position >= media.RunTimeTicks {
		log.Debugf("mirror: %q already past its runtime, ending session", media.Name)
		s.endSessionLocked()
		return
	}

	mediaChanged := s.trackedMedia.OrEmpty() != media.ID

	switch {
	case mediaChanged && playing:
		log.Infof("mirror: device %s started %q", selected.DeviceID, media.Name)
		s.cancelTimerLocked()
		s.mirroring = true
		s.trackedDevice = mo.Some(selected.DeviceID)
		s.trackedMedia = mo.Some(media.ID)
		s.display.PauseAutoplay()
		s.display.TransitionTo(media)
		s.armTimerLocked(media, position)

	case !mediaChanged && playing:
		// Same media, still playing. Only arm the timer if none is live,
		// such as when the engine started mid-playback.
		if s.endTimer == nil {
			s.armTimerLocked(media, position)
		}

	default:
		// Paused, whether or not the media changed.
		s.endSessionLocked()
	}
}

// selectLocked picks the session to mirror: a snapshot from the tracked
// device wins regardless of pause state; otherwise the first actively playing
// snapshot is adopted and its device becomes tracked.
func (s *Selector) selectLocked(batch []stream.SessionSnapshot) *stream.SessionSnapshot {
	if device, ok := s.trackedDevice.Get(); ok {
		for i := range batch {
			if batch[i].DeviceID == device {
				return &batch[i]
			}
		}
	}

	for i := range batch {
		if batch[i].Playing() && batch[i].NowPlayingItem != nil {
			s.trackedDevice = mo.Some(batch[i].DeviceID)
			return &batch[i]
		}
	}
	return nil
}

// endSessionLocked clears all tracking state and hands the display back to
// its own autoplay loop. Safe to call repeatedly.
func (s *Selector) endSessionLocked() {
	s.cancelTimerLocked()

	if s.mirroring {
		log.Info("mirror: session ended, resuming slideshow")
	}

	s.trackedDevice = mo.None[string]()
	s.trackedMedia = mo.None[string]()
	s.mirroring = false

	if !s.display.AutoplayRunning() {
		s.display.ResumeAutoplay()
	}
}

// endDelay predicts how long until playback finishes, plus the buffer.
func endDelay(runtimeTicks, positionTicks int64) time.Duration {
	remainingMs := util.Max(runtimeTicks-positionTicks, 0) / stream.TicksPerMillisecond
	return time.Duration(remainingMs)*time.Millisecond + endBuffer
}

// armTimerLocked schedules the predictive end-of-media timer. An unknown
// runtime never arms one; detecting the end then relies on the next batch.
func (s *Selector) armTimerLocked(media *stream.MediaRef, positionTicks int64) {
	s.cancelTimerLocked()

	if media.RunTimeTicks <= 0 {
		return
	}

	armedMedia := media.ID
	delay := endDelay(media.RunTimeTicks, positionTicks)
	log.Debugf("mirror: expecting %q to end in %s", media.Name, delay)

	s.endTimer = time.AfterFunc(delay, func() {
		s.onEndTimer(armedMedia)
	})
}

// onEndTimer fires when the armed media should have finished. A newer
// snapshot may have superseded the arming, so the precondition is
// re-validated under the lock before acting.
func (s *Selector) onEndTimer(mediaID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mirroring || s.trackedMedia.OrEmpty() != mediaID {
		return
	}

	s.endTimer = nil
	s.endSessionLocked()
}

func (s *Selector) cancelTimerLocked() {
	if s.endTimer != nil {
		s.endTimer.Stop()
		s.endTimer = nil
	}
}
