// Package stream maintains the persistent websocket connection to the media
// server's session-telemetry feed.
package stream

import "encoding/json"

// Wire message type identifiers.
const (
	MsgKeepAlive             = "KeepAlive"
	MsgForceKeepAlive        = "ForceKeepAlive"
	MsgSessions              = "Sessions"
	MsgSessionsStart         = "SessionsStart"
	MsgActivityLogEntryStart = "ActivityLogEntryStart"
)

// TicksPerMillisecond converts the feed's 100ns tick unit to milliseconds.
const TicksPerMillisecond = 10_000

// Envelope is the inbound wire message wrapper.
type Envelope struct {
	MessageType string          `json:"MessageType"`
	Data        json.RawMessage `json:"Data,omitempty"`
}

// outboundEnvelope is the wire wrapper for messages sent to the server.
type outboundEnvelope struct {
	MessageType string `json:"MessageType"`
	Data        any    `json:"Data,omitempty"`
}

// MediaRef describes the media item a remote session is playing.
type MediaRef struct {
	ID           string `json:"Id"`
	Name         string `json:"Name"`
	Album        string `json:"Album,omitempty"`
	Overview     string `json:"Overview,omitempty"`
	MediaType    string `json:"Type"`
	RunTimeTicks int64  `json:"RunTimeTicks"`
}

// PlayState carries the playback position and suspension state of a session.
type PlayState struct {
	IsPaused      bool  `json:"IsPaused"`
	PositionTicks int64 `json:"PositionTicks"`
}

// SessionSnapshot is one remote device's reported playback state at a point
// in time. Snapshots arrive in batches; each batch is a full replacement of
// the server's known session set, never a delta.
type SessionSnapshot struct {
	DeviceID       string     `json:"DeviceId"`
	PlayState      *PlayState `json:"PlayState,omitempty"`
	NowPlayingItem *MediaRef  `json:"NowPlayingItem,omitempty"`
}

// Playing reports whether the session is actively playing media. Sessions
// without a play state are treated as not playing.
func (s *SessionSnapshot) Playing() bool {
	return s.PlayState != nil && !s.PlayState.IsPaused
}

// Position returns the session's playback offset in ticks.
func (s *SessionSnapshot) Position() int64 {
	if s.PlayState == nil {
		return 0
	}
	return s.PlayState.PositionTicks
}

// DecodeSessions parses the payload of a Sessions envelope into a snapshot batch.
func DecodeSessions(data json.RawMessage) ([]SessionSnapshot, error) {
	var batch []SessionSnapshot
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, err
	}
	return batch, nil
}
