package network

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/event"
)

// MessageType identifies the semantic meaning of a frame
type MessageType uint8

const (
	// MsgHello is the first frame a spectator receives
	MsgHello MessageType = 0x01

	// MsgSnapshot carries the full board
	MsgSnapshot MessageType = 0x11

	// MsgEvent carries one game notification
	MsgEvent MessageType = 0x12
)

// Frame is one binary websocket message
type Frame struct {
	Type MessageType `msgpack:"t"`
	Seq  uint32      `msgpack:"s"`

	Hello    *Hello       `msgpack:"h,omitempty"`
	Snapshot *Snapshot    `msgpack:"b,omitempty"`
	Event    *EventRecord `msgpack:"e,omitempty"`
}

// Hello identifies the peer and the board it is watching
type Hello struct {
	PeerID string `msgpack:"peer"`
	Width  int    `msgpack:"w"`
	Height int    `msgpack:"h"`
}

// Snapshot is the renderable projection of a session
type Snapshot struct {
	SessionID string        `msgpack:"sid"`
	Screen    string        `msgpack:"screen"`
	Mode      string        `msgpack:"mode"`
	Width     int           `msgpack:"w"`
	Height    int           `msgpack:"h"`
	Snake     [][2]int      `msgpack:"snake"`
	Direction string        `msgpack:"dir"`
	Items     []ItemRecord  `msgpack:"items"`
	Effects   []EffectTimer `msgpack:"fx,omitempty"`
	Score     int           `msgpack:"score"`
	Best      int           `msgpack:"best"`
	GameOver  bool          `msgpack:"over"`
	Cause     string        `msgpack:"cause,omitempty"`
	Paused    bool          `msgpack:"paused"`
	Resuming  bool          `msgpack:"resuming"`
	GameTime  float64       `msgpack:"time"`
	Frame     int64         `msgpack:"frame"`
}

// ItemRecord is one live item
type ItemRecord struct {
	Col  int    `msgpack:"c"`
	Row  int    `msgpack:"r"`
	Kind string `msgpack:"k"`
}

// EffectTimer is one active status countdown
type EffectTimer struct {
	Effect    string  `msgpack:"e"`
	Remaining float64 `msgpack:"rem"`
}

// EventRecord is a notification with its payload re-encoded as msgpack
type EventRecord struct {
	Type    string             `msgpack:"type"`
	Frame   int64              `msgpack:"frame"`
	Payload msgpack.RawMessage `msgpack:"payload,omitempty"`
}

// NewSnapshot projects a session for spectators
func NewSnapshot(ss *engine.Session) *Snapshot {
	s := ss.State
	snap := &Snapshot{
		SessionID: ss.ID,
		Screen:    ss.Screen.String(),
		Mode:      s.Mode().String(),
		Width:     s.Width,
		Height:    s.Height,
		Snake:     make([][2]int, len(s.Snake)),
		Direction: s.Dir.String(),
		Items:     make([]ItemRecord, len(s.Items)),
		Score:     s.Score,
		Best:      s.BestScore(),
		GameOver:  s.GameOver,
		Paused:    s.UserPaused,
		Resuming:  s.Resuming,
		GameTime:  s.GameTime,
		Frame:     s.Frame,
	}
	for i, c := range s.Snake {
		snap.Snake[i] = [2]int{c.Col, c.Row}
	}
	for i, it := range s.Items {
		snap.Items[i] = ItemRecord{Col: it.Cell.Col, Row: it.Cell.Row, Kind: it.Kind.String()}
	}
	for e := core.Effect(0); e < core.EffectCount; e++ {
		if s.Effects.Active(e) {
			snap.Effects = append(snap.Effects, EffectTimer{Effect: e.String(), Remaining: s.Effects.Remaining(e)})
		}
	}
	if s.GameOver {
		snap.Cause = s.Cause.String()
	}
	return snap
}

// NewEventRecord converts a queued notification
func NewEventRecord(ev event.GameEvent) (*EventRecord, error) {
	rec := &EventRecord{Type: ev.Type.String(), Frame: ev.Frame}
	if ev.Payload != nil {
		raw, err := msgpack.Marshal(ev.Payload)
		if err != nil {
			return nil, err
		}
		rec.Payload = raw
	}
	return rec, nil
}

// Encode serializes a frame
func Encode(f *Frame) ([]byte, error) {
	return msgpack.Marshal(f)
}

// Decode parses a frame
func Decode(data []byte) (*Frame, error) {
	f := &Frame{}
	if err := msgpack.Unmarshal(data, f); err != nil {
		return nil, err
	}
	return f, nil
}
