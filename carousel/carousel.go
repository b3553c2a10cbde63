package carousel

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/framecast-cli/framecast/catalog"
	"github.com/framecast-cli/framecast/key"
	"github.com/framecast-cli/framecast/log"
	"github.com/framecast-cli/framecast/stream"
	"github.com/spf13/viper"
)

// fallbackCaption labels a slide whose asset could not be resolved.
const fallbackCaption = "Content Unavailable"

// resolveTimeout bounds the detail lookup for stream-pushed media.
const resolveTimeout = 30 * time.Second

// ErrNoItems is returned when the carousel is initialized with an empty catalog.
var ErrNoItems = errors.New("carousel: no catalog items to display")

// Resolver turns catalog items and stream-pushed media ids into display assets.
// *catalog.Client satisfies it.
type Resolver interface {
	ResolveAsset(item *catalog.Item) catalog.Asset
	ResolveMediaAsset(ctx context.Context, mediaID string) (catalog.Asset, error)
}

// Controller runs the slideshow. Ordinary advances follow catalog order with
// an unseen-first policy; the session selector interrupts them via
// PauseAutoplay and TransitionTo. All methods tolerate an uninitialized
// controller.
type Controller struct {
	resolver Resolver
	renderer Renderer
	cache    *Cache

	delay        time.Duration
	preloadCount int

	mu      sync.Mutex
	items   []catalog.Item
	current int
	seen    map[string]struct{}
	running bool
	ticker  *time.Ticker
	done    chan struct{}

	onReady         func()
	onBeforeAdvance func()
	onAdvanced      func(catalog.Item)
	onCycleEnd      func()
}

// NewController creates a stopped controller reading its delay, preload
// window, and cache bound from configuration.
func NewController(resolver Resolver, renderer Renderer) *Controller {
	return &Controller{
		resolver:     resolver,
		renderer:     renderer,
		cache:        NewCache(viper.GetInt(key.SlideshowCacheSize)),
		delay:        time.Duration(viper.GetInt(key.SlideshowDelay)) * time.Second,
		preloadCount: viper.GetInt(key.SlideshowPreloadCount),
		current:      -1,
	}
}

// OnReady registers a callback fired once the first slide is showing.
func (c *Controller) OnReady(fn func()) { c.onReady = fn }

// OnBeforeAdvance registers a callback fired before each ordinary advance.
func (c *Controller) OnBeforeAdvance(fn func()) { c.onBeforeAdvance = fn }

// OnAdvanced registers a callback fired after each ordinary advance.
func (c *Controller) OnAdvanced(fn func(catalog.Item)) { c.onAdvanced = fn }

// OnCycleEnd registers a callback fired when every item has been shown and
// the seen set resets.
func (c *Controller) OnCycleEnd(fn func()) { c.onCycleEnd = fn }

// Initialize loads the catalog, shows the first slide, and starts autoplay.
func (c *Controller) Initialize(items []catalog.Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	c.mu.Lock()
	c.items = items
	c.current = -1
	c.seen = make(map[string]struct{}, len(items))
	c.running = true
	c.startTimerLocked()
	c.mu.Unlock()

	c.Advance()

	if c.onReady != nil {
		c.onReady()
	}
	return nil
}

// Close stops the autoplay timer. The controller cannot be restarted.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	if c.ticker != nil {
		c.ticker.Stop()
		close(c.done)
		c.ticker = nil
	}
}

// PauseAutoplay suppresses timed advances until ResumeAutoplay. The timer
// keeps running; only its firings are ignored.
func (c *Controller) PauseAutoplay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
}

// ResumeAutoplay re-enables timed advances.
func (c *Controller) ResumeAutoplay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = true
}

// AutoplayRunning reports whether timed advances are currently enabled.
func (c *Controller) AutoplayRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *Controller) startTimerLocked() {
	if c.ticker != nil {
		return
	}
	c.ticker = time.NewTicker(c.delay)
	c.done = make(chan struct{})

	ticker, done := c.ticker, c.done
	go func() {
		for {
			select {
			case <-ticker.C:
				if c.AutoplayRunning() {
					c.Advance()
				}
			case <-done:
				return
			}
		}
	}()
}

// Advance shows the next slide, preferring items not yet seen this cycle.
// Once every item has been shown, the seen set resets and a new cycle begins.
func (c *Controller) Advance() {
	c.mu.Lock()
	if len(c.items) == 0 {
		c.mu.Unlock()
		return
	}

	if c.onBeforeAdvance != nil {
		c.onBeforeAdvance()
	}

	idx, cycleEnded := c.nextUnseenLocked()
	item := c.items[idx]
	c.current = idx
	c.seen[item.ID] = struct{}{}
	upcoming := c.upcomingLocked()
	c.mu.Unlock()

	if cycleEnded && c.onCycleEnd != nil {
		c.onCycleEnd()
	}

	c.showItem(&item)

	if c.onAdvanced != nil {
		c.onAdvanced(item)
	}

	go c.preload(upcoming)
}

// nextUnseenLocked scans forward from the current position, with wraparound,
// for the first item not yet shown this cycle. It reports whether the cycle
// had to reset.
func (c *Controller) nextUnseenLocked() (int, bool) {
	for offset := 1; offset <= len(c.items); offset++ {
		idx := (c.current + offset) % len(c.items)
		if _, shown := c.seen[c.items[idx].ID]; !shown {
			return idx, false
		}
	}

	c.seen = make(map[string]struct{}, len(c.items))
	return (c.current + 1) % len(c.items), true
}

// upcomingLocked returns copies of the next few items in catalog order.
func (c *Controller) upcomingLocked() []catalog.Item {
	count := c.preloadCount
	if count > len(c.items) {
		count = len(c.items)
	}

	upcoming := make([]catalog.Item, 0, count)
	for offset := 1; offset <= count; offset++ {
		upcoming = append(upcoming, c.items[(c.current+offset)%len(c.items)])
	}
	return upcoming
}

// showItem renders a catalog item, resolving its asset through the cache.
func (c *Controller) showItem(item *catalog.Item) {
	asset, ok := c.cache.Get(item.ID).Get()
	if !ok {
		asset = c.resolver.ResolveAsset(item)
		c.cache.Put(item.ID, asset)
	}

	c.renderer.Render(Frame{Asset: asset, Layout: item.Layout()})
}

// TransitionTo shows media pushed by the telemetry stream. Resolution failure
// degrades to a placeholder slide; it never propagates an error.
func (c *Controller) TransitionTo(media *stream.MediaRef) {
	asset, ok := c.cache.Get(media.ID).Get()
	if !ok {
		ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
		defer cancel()

		resolved, err := c.resolver.ResolveMediaAsset(ctx, media.ID)
		if err != nil {
			log.Warnf("carousel: falling back to placeholder for %q: %v", media.Name, err)
			resolved = fallbackAsset(media)
		} else {
			c.cache.Put(media.ID, resolved)
		}
		asset = resolved
	}

	c.renderer.Render(Frame{Asset: asset, Layout: layoutForMedia(media), Mirrored: true})
}

// preload resolves upcoming items into the cache so the next advances don't
// wait on resolution. Failures here only cost a later cache miss.
func (c *Controller) preload(items []catalog.Item) {
	for i := range items {
		item := items[i]
		if c.cache.Get(item.ID).IsPresent() {
			continue
		}
		c.cache.Put(item.ID, c.resolver.ResolveAsset(&item))
	}
}

// fallbackAsset is the degraded slide shown when resolution fails.
func fallbackAsset(media *stream.MediaRef) catalog.Asset {
	return catalog.Asset{Name: fallbackCaption, Overview: media.Name}
}

// layoutForMedia picks the slide arrangement for stream-pushed media, whose
// artwork variant is unknown until resolved.
func layoutForMedia(media *stream.MediaRef) catalog.Layout {
	if media.MediaType == "Audio" {
		return catalog.LayoutAudio
	}
	return catalog.LayoutLandscape
}
