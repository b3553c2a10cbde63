package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/framecast-cli/framecast/auth"
	"github.com/framecast-cli/framecast/carousel"
	"github.com/framecast-cli/framecast/catalog"
	"github.com/framecast-cli/framecast/log"
	"github.com/framecast-cli/framecast/mirror"
	"github.com/framecast-cli/framecast/stream"
	"github.com/framecast-cli/framecast/tui"
	"github.com/framecast-cli/framecast/util"
)

// catalogTimeout is a safety bound on the initial catalog load, not a tuning
// parameter. It only exists to prevent an unhandled indefinite hang.
const catalogTimeout = 4 * time.Hour

// Engine owns the assembled components and their lifecycles.
type Engine struct {
	status     *Status
	catalogC   *catalog.Client
	streamC    *stream.Client
	selector   *mirror.Selector
	controller *carousel.Controller
	display    *tui.Display
}

// New assembles the engine from the stored login. Returns
// auth.ErrNotLoggedIn when no credentials are available.
func New() (*Engine, error) {
	record, err := auth.LoadRecord()
	if err != nil {
		return nil, err
	}

	token, err := auth.GetToken()
	if err != nil {
		return nil, fmt.Errorf("read access token: %w", err)
	}

	display := tui.New()
	catalogC := catalog.New(record.Address, token, record.UserID)
	controller := carousel.NewController(catalogC, display)
	display.Attach(controller)

	e := &Engine{
		status:     NewStatus(),
		catalogC:   catalogC,
		selector:   mirror.NewSelector(controller),
		controller: controller,
		display:    display,
	}
	e.status.SetAuthenticated(true)

	e.streamC = stream.NewClient(stream.Options{
		Address:  record.Address,
		APIKey:   token,
		DeviceID: record.DeviceID,
	})
	e.streamC.OnConnect(e.onConnect)
	e.streamC.OnMessage(e.onMessage)
	e.streamC.OnUnexpectedClose(e.onUnexpectedClose)

	return e, nil
}

// Run starts the background pipeline and blocks on the display loop.
func (e *Engine) Run() error {
	go e.start()

	err := e.display.Run()
	e.shutdown()
	return err
}

func (e *Engine) start() {
	items := e.loadCatalog()
	if err := e.controller.Initialize(items); err != nil {
		// The slideshow cannot start, but the stream side still runs: a
		// live session can drive the display on its own.
		e.display.Status(fmt.Sprintf("Slideshow unavailable: %v", err))
		log.Errorf("engine: %v", err)
	}

	if err := e.streamC.Connect(); err != nil {
		log.Warnf("engine: initial stream connect failed: %v", err)
		e.onUnexpectedClose()
	}
}

// loadCatalog returns the item listing, preferring a fresh disk snapshot and
// otherwise fetching with unbounded backoff. It only gives up on shutdown.
func (e *Engine) loadCatalog() []catalog.Item {
	if items, ok := catalog.CachedSnapshot().Get(); ok {
		log.Infof("engine: loaded %s from snapshot", util.Quantify(len(items), "item", "items"))
		return items
	}

	ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
	defer cancel()

	for attempt := 0; ; attempt++ {
		e.display.Status("Loading catalog")

		items, err := e.catalogC.AllItems(ctx)
		if err == nil {
			if err := catalog.SaveSnapshot(items); err != nil {
				log.Warnf("engine: persisting catalog snapshot: %v", err)
			}
			return items
		}

		delay := stream.Delay(attempt)
		log.Warnf("engine: catalog load failed, retrying in %s: %v", delay, err)
		e.display.Status(fmt.Sprintf("Catalog unavailable, retrying in %s", delay.Round(time.Second)))

		select {
		case <-ctx.Done():
			log.Errorf("engine: catalog load abandoned: %v", ctx.Err())
			return nil
		case <-time.After(delay):
		}
	}
}

func (e *Engine) onConnect() {
	log.Info("engine: stream connected, subscribing to session feed")
	e.streamC.Subscribe()
}

// onMessage routes inbound envelopes. Shape failures are logged and the
// message is discarded without mutating any state.
func (e *Engine) onMessage(env stream.Envelope) {
	switch env.MessageType {
	case stream.MsgSessions:
		batch, err := stream.DecodeSessions(env.Data)
		if err != nil {
			log.Errorf("engine: discarding malformed session batch: %v", err)
			return
		}
		e.selector.OnSnapshotBatch(batch)
	default:
		log.Debugf("engine: ignoring %s message", env.MessageType)
	}
}

func (e *Engine) onUnexpectedClose() {
	r := &stream.Reconnector{
		Connect:       e.streamC.Connect,
		Authenticated: e.status.Authenticated,
	}
	go r.Run()
}

func (e *Engine) shutdown() {
	e.status.SetAuthenticated(false)
	e.selector.Reset()
	e.controller.Close()
	e.streamC.Disconnect()
	log.Info("engine: shut down")
}
