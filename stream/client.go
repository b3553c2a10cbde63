package stream

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/framecast-cli/framecast/log"
	"github.com/framecast-cli/framecast/util"
	"github.com/gorilla/websocket"
)

// State identifies the lifecycle stage of a stream connection.
type State int

const (
	StateClosed State = iota
	StateConnecting
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	default:
		return "closed"
	}
}

// keepAliveFloor is the minimum interval between client keep-alive pings,
// regardless of how short a timeout the server advertises.
const keepAliveFloor = 10 * time.Second

// Options configures a stream Client.
type Options struct {
	// Address is the server's normalized http(s) base URL.
	Address  string
	APIKey   string
	DeviceID string
}

// Client is a websocket connection to the session feed. Keep-alive traffic is
// absorbed internally; every other inbound envelope is passed to the message
// handler. All callbacks run on the read goroutine.
type Client struct {
	opts Options

	mu         sync.Mutex
	conn       *websocket.Conn
	state      State
	deliberate bool
	pinger     *time.Ticker
	pingerDone chan struct{}

	writeMu sync.Mutex

	handler           func(Envelope)
	onConnect         func()
	onClose           func()
	onUnexpectedClose func()
}

// NewClient creates a disconnected stream client.
func NewClient(opts Options) *Client {
	return &Client{opts: opts}
}

// OnMessage registers the handler for inbound envelopes other than keep-alives.
func (c *Client) OnMessage(fn func(Envelope)) { c.handler = fn }

// OnConnect registers a callback invoked after the socket opens.
func (c *Client) OnConnect(fn func()) { c.onConnect = fn }

// OnClose registers a callback invoked whenever the socket closes.
func (c *Client) OnClose(fn func()) { c.onClose = fn }

// OnUnexpectedClose registers a callback invoked when the socket closes
// without Disconnect having been called.
func (c *Client) OnUnexpectedClose(fn func()) { c.onUnexpectedClose = fn }

// State returns the connection's lifecycle stage.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// socketURL derives the websocket endpoint from the server's http(s) address.
func socketURL(opts Options) (string, error) {
	parsed, err := url.Parse(opts.Address)
	if err != nil {
		return "", fmt.Errorf("parse server address: %w", err)
	}

	switch parsed.Scheme {
	case "https":
		parsed.Scheme = "wss"
	default:
		parsed.Scheme = "ws"
	}
	parsed.Path = "/socket"

	q := url.Values{}
	q.Set("api_key", opts.APIKey)
	q.Set("deviceId", opts.DeviceID)
	parsed.RawQuery = q.Encode()

	return parsed.String(), nil
}

// Connect dials the session feed and starts the read loop. Calling Connect on
// a client that is not closed is a no-op.
func (c *Client) Connect() error {
	c.mu.Lock()
	if c.state != StateClosed {
		c.mu.Unlock()
		log.Warnf("stream: connect ignored, state is %s", c.state)
		return nil
	}
	c.state = StateConnecting
	c.deliberate = false
	c.mu.Unlock()

	endpoint, err := socketURL(c.opts)
	if err != nil {
		c.setClosed()
		return err
	}

	log.Infof("stream: dialing %s", c.opts.Address)
	conn, _, err := websocket.DefaultDialer.Dial(endpoint, nil)
	if err != nil {
		c.setClosed()
		return fmt.Errorf("dial session feed: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.state = StateOpen
	c.mu.Unlock()

	go c.readLoop(conn)

	if c.onConnect != nil {
		c.onConnect()
	}
	return nil
}

func (c *Client) setClosed() {
	c.mu.Lock()
	c.state = StateClosed
	c.conn = nil
	c.mu.Unlock()
}

// Send marshals an envelope onto the socket. It reports whether the message
// was written; sends on a closed connection are dropped with a warning.
func (c *Client) Send(messageType string, data any) bool {
	c.mu.Lock()
	conn := c.conn
	open := c.state == StateOpen
	c.mu.Unlock()

	if !open || conn == nil {
		log.Warnf("stream: dropped %s, connection not open", messageType)
		return false
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := conn.WriteJSON(outboundEnvelope{MessageType: messageType, Data: data}); err != nil {
		log.Errorf("stream: write %s: %v", messageType, err)
		return false
	}
	return true
}

// Disconnect closes the connection deliberately. The close callback still
// fires from the read loop, but the unexpected-close callback does not.
func (c *Client) Disconnect() {
	c.mu.Lock()
	c.deliberate = true
	conn := c.conn
	c.mu.Unlock()

	c.stopKeepAlive()
	if conn != nil {
		util.Ignore(conn.Close)
	}
}

func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			c.handleClose(err)
			return
		}

		var env Envelope
		if err := json.Unmarshal(payload, &env); err != nil {
			log.Errorf("stream: discarding malformed message: %v", err)
			continue
		}

		switch env.MessageType {
		case MsgKeepAlive:
			log.Debug("stream: keep-alive acknowledged")
		case MsgForceKeepAlive:
			c.handleForceKeepAlive(env.Data)
		default:
			if c.handler != nil {
				c.handler(env)
			}
		}
	}
}

// handleForceKeepAlive answers the server's keep-alive demand immediately and
// schedules recurring pings for the advertised timeout.
func (c *Client) handleForceKeepAlive(data json.RawMessage) {
	var timeoutSeconds int
	if err := json.Unmarshal(data, &timeoutSeconds); err != nil {
		log.Errorf("stream: discarding malformed keep-alive timeout: %v", err)
		return
	}

	c.Send(MsgKeepAlive, nil)
	c.startKeepAlive(KeepAliveInterval(timeoutSeconds))
}

// KeepAliveInterval returns the ping cadence for a server-advertised timeout:
// half the timeout, but never below the floor.
func KeepAliveInterval(timeoutSeconds int) time.Duration {
	return util.Max(time.Duration(timeoutSeconds)*time.Second/2, keepAliveFloor)
}

func (c *Client) startKeepAlive(interval time.Duration) {
	c.stopKeepAlive()

	c.mu.Lock()
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	c.pinger = ticker
	c.pingerDone = done
	c.mu.Unlock()

	log.Infof("stream: sending keep-alive every %s", interval)

	go func() {
		for {
			select {
			case <-ticker.C:
				c.Send(MsgKeepAlive, nil)
			case <-done:
				return
			}
		}
	}()
}

func (c *Client) stopKeepAlive() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pinger != nil {
		c.pinger.Stop()
		c.pinger = nil
	}
	if c.pingerDone != nil {
		close(c.pingerDone)
		c.pingerDone = nil
	}
}

func (c *Client) handleClose(err error) {
	c.mu.Lock()
	deliberate := c.deliberate
	c.conn = nil
	c.state = StateClosed
	c.mu.Unlock()

	c.stopKeepAlive()

	if deliberate {
		log.Info("stream: connection closed")
	} else {
		log.Warnf("stream: connection lost: %v", err)
	}

	if c.onClose != nil {
		c.onClose()
	}
	if !deliberate && c.onUnexpectedClose != nil {
		c.onUnexpectedClose()
	}
}
