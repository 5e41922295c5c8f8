package network

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/event"
)

func newPlayingSession() *engine.Session {
	ss := engine.NewSession(engine.NewEngine(engine.NewFastRand(5), nil), 12, 8)
	ss.SelectMode(core.ModeRegular)
	ss.Start()
	return ss
}

func startTestServer(t *testing.T, cfg *Config) (*Service, string) {
	t.Helper()
	svc := NewService(cfg)
	srv := httptest.NewServer(svc.Handler())
	t.Cleanup(func() {
		svc.peers.Close()
		srv.Close()
	})
	return svc, "ws" + strings.TrimPrefix(srv.URL, "http") + svc.config.Path
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial %s: %v", url, err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readFrame(t *testing.T, ws *websocket.Conn) *Frame {
	t.Helper()
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	mt, data, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read frame: %v", err)
	}
	if mt != websocket.BinaryMessage {
		t.Fatalf("Expected binary message, got %d", mt)
	}
	f, err := Decode(data)
	if err != nil {
		t.Fatalf("Failed to decode frame: %v", err)
	}
	return f
}

func waitPeers(t *testing.T, svc *Service, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for svc.PeerCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("Expected %d peers, got %d", n, svc.PeerCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSpectatorHelloAndSnapshot(t *testing.T) {
	svc, url := startTestServer(t, nil)
	ss := newPlayingSession()

	if !svc.PublishSnapshot(ss, time.Unix(100, 0)) {
		t.Fatal("Expected first snapshot to publish")
	}

	ws := dial(t, url)
	hello := readFrame(t, ws)
	if hello.Type != MsgHello || hello.Hello == nil {
		t.Fatalf("Expected hello frame, got %+v", hello)
	}
	if hello.Hello.PeerID == "" || hello.Hello.Width != 12 || hello.Hello.Height != 8 {
		t.Errorf("Unexpected hello %+v", hello.Hello)
	}

	snap := readFrame(t, ws)
	if snap.Type != MsgSnapshot || snap.Snapshot == nil {
		t.Fatalf("Expected snapshot frame, got %+v", snap)
	}
	head := ss.State.Head()
	if got := snap.Snapshot.Snake[0]; got != [2]int{head.Col, head.Row} {
		t.Errorf("Expected head %v, got %v", head, got)
	}
	if snap.Snapshot.SessionID != ss.ID || snap.Snapshot.Mode != "regular" {
		t.Errorf("Unexpected snapshot identity %q %q", snap.Snapshot.SessionID, snap.Snapshot.Mode)
	}
	if len(snap.Snapshot.Items) != len(ss.State.Items) {
		t.Errorf("Expected %d items, got %d", len(ss.State.Items), len(snap.Snapshot.Items))
	}
	if snap.Seq == hello.Seq {
		t.Errorf("Expected distinct sequence numbers, got %d", snap.Seq)
	}
}

func TestSpectatorEventBroadcast(t *testing.T) {
	svc, url := startTestServer(t, nil)
	ws := dial(t, url)
	readFrame(t, ws) // hello
	waitPeers(t, svc, 1)

	svc.PublishEvent(event.GameEvent{
		Type:    event.EventItemEaten,
		Payload: &event.ItemEatenPayload{Kind: core.ItemBoost, Cell: core.Cell{Col: 3, Row: 4}, Applied: true},
		Frame:   42,
	})

	f := readFrame(t, ws)
	if f.Type != MsgEvent || f.Event == nil {
		t.Fatalf("Expected event frame, got %+v", f)
	}
	if f.Event.Type != "EventItemEaten" || f.Event.Frame != 42 {
		t.Errorf("Unexpected event record %+v", f.Event)
	}

	var p event.ItemEatenPayload
	if err := msgpack.Unmarshal(f.Event.Payload, &p); err != nil {
		t.Fatalf("Failed to decode payload: %v", err)
	}
	if p.Kind != core.ItemBoost || p.Cell != (core.Cell{Col: 3, Row: 4}) || !p.Applied {
		t.Errorf("Unexpected payload %+v", p)
	}
}

func TestSpectatorSnapshotThrottle(t *testing.T) {
	svc := NewService(nil)
	ss := newPlayingSession()
	now := time.Unix(100, 0)

	if !svc.PublishSnapshot(ss, now) {
		t.Error("Expected first snapshot")
	}
	if svc.PublishSnapshot(ss, now.Add(svc.config.SnapshotInterval/2)) {
		t.Error("Expected throttled snapshot")
	}
	if !svc.PublishSnapshot(ss, now.Add(svc.config.SnapshotInterval)) {
		t.Error("Expected snapshot after interval")
	}
}

func TestSpectatorMaxPeers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPeers = 1
	svc, url := startTestServer(t, cfg)

	first := dial(t, url)
	readFrame(t, first)
	waitPeers(t, svc, 1)

	second := dial(t, url)
	second.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := second.ReadMessage(); err == nil {
		t.Error("Expected second spectator to be closed")
	}
	if svc.PeerCount() != 1 {
		t.Errorf("Expected 1 peer, got %d", svc.PeerCount())
	}
}

func TestSpectatorDisconnect(t *testing.T) {
	svc, url := startTestServer(t, nil)
	ws := dial(t, url)
	readFrame(t, ws)
	waitPeers(t, svc, 1)

	ws.Close()
	waitPeers(t, svc, 0)
}

func TestServiceStartStop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "127.0.0.1:0"
	svc := NewService(cfg)

	if err := svc.Start(); err != nil {
		t.Fatalf("Failed to start: %v", err)
	}
	if !svc.IsRunning() || svc.Addr() == "" {
		t.Errorf("Expected running with an address, got %v %q", svc.IsRunning(), svc.Addr())
	}
	if err := svc.Start(); !errors.Is(err, ErrServiceRunning) {
		t.Errorf("Expected ErrServiceRunning, got %v", err)
	}

	ws := dial(t, "ws://"+svc.Addr()+cfg.Path)
	if f := readFrame(t, ws); f.Type != MsgHello {
		t.Errorf("Expected hello, got %v", f.Type)
	}

	if err := svc.Stop(); err != nil {
		t.Errorf("Unexpected stop error: %v", err)
	}
	if svc.IsRunning() {
		t.Error("Expected stopped service")
	}
}

func TestServiceInvalidAddress(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "no-port"
	svc := NewService(cfg)

	if err := svc.Start(); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("Expected ErrInvalidAddress, got %v", err)
	}
	if svc.IsRunning() {
		t.Error("Expected service not running after failed start")
	}
}

func TestNewSnapshotEffectsAndGameOver(t *testing.T) {
	ss := newPlayingSession()
	ss.State.Effects.Start(core.EffectWallPass, 4)
	ss.ForceGameOver()

	snap := NewSnapshot(ss)
	if !snap.GameOver || snap.Cause != "quit" {
		t.Errorf("Expected quit game over, got %v %q", snap.GameOver, snap.Cause)
	}
	if len(snap.Effects) != 1 || snap.Effects[0].Effect != "wall-pass" || snap.Effects[0].Remaining != 4 {
		t.Errorf("Unexpected effects %+v", snap.Effects)
	}
	if snap.Screen != "playing" {
		t.Errorf("Expected playing screen, got %q", snap.Screen)
	}
}
