package carousel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/framecast-cli/framecast/catalog"
	"github.com/framecast-cli/framecast/key"
	"github.com/framecast-cli/framecast/stream"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

type fakeResolver struct {
	failMedia bool
}

func (r *fakeResolver) ResolveAsset(item *catalog.Item) catalog.Asset {
	return catalog.Asset{
		ImageURL: "https://example.com/" + item.ID,
		Name:     item.Name,
		Overview: item.Overview,
	}
}

func (r *fakeResolver) ResolveMediaAsset(_ context.Context, mediaID string) (catalog.Asset, error) {
	if r.failMedia {
		return catalog.Asset{}, errors.New("artwork lookup failed")
	}
	return catalog.Asset{ImageURL: "https://example.com/" + mediaID, Name: mediaID}, nil
}

type recordRenderer struct {
	mu     sync.Mutex
	frames []Frame
}

func (r *recordRenderer) Render(frame Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, frame)
}

func (r *recordRenderer) rendered() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Frame(nil), r.frames...)
}

func setupSlideshowConfig() {
	viper.Set(key.SlideshowDelay, 3600)
	viper.Set(key.SlideshowPreloadCount, 3)
	viper.Set(key.SlideshowCacheSize, 10)
}

func testItems(n int) []catalog.Item {
	items := make([]catalog.Item, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, catalog.Item{
			ID:        fmt.Sprintf("item-%d", i),
			Name:      fmt.Sprintf("Item %d", i),
			Kind:      catalog.KindMovie,
			ImageType: catalog.ImagePrimary,
		})
	}
	return items
}

func TestInitialize(t *testing.T) {
	setupSlideshowConfig()

	Convey("Initialize shows the first slide and starts autoplay", t, func() {
		renderer := &recordRenderer{}
		controller := NewController(&fakeResolver{}, renderer)
		defer controller.Close()

		ready := false
		controller.OnReady(func() { ready = true })

		So(controller.Initialize(testItems(3)), ShouldBeNil)
		So(ready, ShouldBeTrue)
		So(controller.AutoplayRunning(), ShouldBeTrue)

		frames := renderer.rendered()
		So(len(frames), ShouldEqual, 1)
		So(frames[0].Asset.Name, ShouldEqual, "Item 1")
		So(frames[0].Mirrored, ShouldBeFalse)
	})

	Convey("An empty catalog aborts initialization", t, func() {
		controller := NewController(&fakeResolver{}, &recordRenderer{})
		So(controller.Initialize(nil), ShouldEqual, ErrNoItems)
	})

	Convey("An uninitialized controller tolerates every command", t, func() {
		controller := NewController(&fakeResolver{}, &recordRenderer{})
		controller.Advance()
		controller.PauseAutoplay()
		controller.ResumeAutoplay()
		So(controller.AutoplayRunning(), ShouldBeTrue)
	})
}

func TestUnseenFirstAdvance(t *testing.T) {
	setupSlideshowConfig()

	Convey("A full cycle of advances shows every item exactly once", t, func() {
		renderer := &recordRenderer{}
		controller := NewController(&fakeResolver{}, renderer)
		defer controller.Close()

		cycleEnds := 0
		controller.OnCycleEnd(func() { cycleEnds++ })

		items := testItems(5)
		So(controller.Initialize(items), ShouldBeNil)

		// Initialize consumed one advance already.
		for i := 0; i < len(items)-1; i++ {
			controller.Advance()
		}

		frames := renderer.rendered()
		So(len(frames), ShouldEqual, len(items))

		shown := make(map[string]int)
		for _, frame := range frames {
			shown[frame.Asset.Name]++
		}
		So(len(shown), ShouldEqual, len(items))
		for _, count := range shown {
			So(count, ShouldEqual, 1)
		}
		So(cycleEnds, ShouldEqual, 0)

		Convey("The next advance resets the cycle and repeats", func() {
			controller.Advance()
			So(cycleEnds, ShouldEqual, 1)
			So(len(renderer.rendered()), ShouldEqual, len(items)+1)
		})
	})
}

func TestPauseResume(t *testing.T) {
	setupSlideshowConfig()

	Convey("Pausing suppresses autoplay until resumed", t, func() {
		controller := NewController(&fakeResolver{}, &recordRenderer{})
		defer controller.Close()

		So(controller.Initialize(testItems(2)), ShouldBeNil)

		controller.PauseAutoplay()
		So(controller.AutoplayRunning(), ShouldBeFalse)

		controller.ResumeAutoplay()
		So(controller.AutoplayRunning(), ShouldBeTrue)
	})
}

func TestTransitionTo(t *testing.T) {
	setupSlideshowConfig()

	media := &stream.MediaRef{ID: "pushed", Name: "Pushed Media", MediaType: "Video"}

	Convey("Stream-pushed media resolves and renders as a mirrored frame", t, func() {
		renderer := &recordRenderer{}
		controller := NewController(&fakeResolver{}, renderer)

		controller.TransitionTo(media)

		frames := renderer.rendered()
		So(len(frames), ShouldEqual, 1)
		So(frames[0].Mirrored, ShouldBeTrue)
		So(frames[0].Layout, ShouldEqual, catalog.LayoutLandscape)
		So(frames[0].Asset.ImageURL, ShouldEqual, "https://example.com/pushed")
	})

	Convey("Audio media gets the audio layout", t, func() {
		renderer := &recordRenderer{}
		controller := NewController(&fakeResolver{}, renderer)

		controller.TransitionTo(&stream.MediaRef{ID: "song", Name: "Song", MediaType: "Audio"})
		So(renderer.rendered()[0].Layout, ShouldEqual, catalog.LayoutAudio)
	})

	Convey("Resolution failure degrades to the placeholder caption", t, func() {
		renderer := &recordRenderer{}
		controller := NewController(&fakeResolver{failMedia: true}, renderer)

		controller.TransitionTo(media)

		frames := renderer.rendered()
		So(len(frames), ShouldEqual, 1)
		So(frames[0].Asset.Name, ShouldEqual, "Content Unavailable")
		So(frames[0].Asset.ImageURL, ShouldBeEmpty)

		Convey("And the failed lookup is not cached", func() {
			So(controller.cache.Size(), ShouldEqual, 0)
		})
	})
}
