package network

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/event"
)

var (
	ErrServiceRunning = errors.New("spectator service already running")
	ErrInvalidAddress = errors.New("invalid spectator address")
	ErrMaxPeers       = errors.New("max peers reached")
)

// Service streams the local game to websocket spectators
// Publish methods are called from the game loop; peers write on their own goroutines
type Service struct {
	config   *Config
	peers    *PeerManager
	upgrader websocket.Upgrader

	server   *http.Server
	listener net.Listener
	running  atomic.Bool
	wg       sync.WaitGroup

	seq atomic.Uint32

	mu           sync.Mutex
	latest       []byte
	width        int
	height       int
	lastSnapshot time.Time
}

// NewService creates a stopped spectator service; nil cfg uses DefaultConfig
func NewService(cfg *Config) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &Service{
		config: cfg,
		peers:  NewPeerManager(cfg),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	s.peers.SetHandlers(s.onConnect, s.onDisconnect)
	return s
}

// Handler returns the HTTP handler serving the upgrade path
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.config.Path, s.handleUpgrade)
	return mux
}

// Start binds the configured address and serves in the background
func (s *Service) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrServiceRunning
	}
	if err := s.config.Validate(); err != nil {
		s.running.Store(false)
		return err
	}

	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		s.running.Store(false)
		return fmt.Errorf("spectator listen: %w", err)
	}
	s.listener = ln
	s.server = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectator server: %v", err)
		}
	}()

	log.Printf("spectator feed on ws://%s%s", ln.Addr(), s.config.Path)
	return nil
}

// Stop closes the listener and every peer
func (s *Service) Stop() error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	var err error
	if s.server != nil {
		err = s.server.Close()
	}
	s.peers.Close()
	s.wg.Wait()
	return err
}

// Addr returns the bound address, empty when stopped
func (s *Service) Addr() string {
	if s.listener == nil || !s.running.Load() {
		return ""
	}
	return s.listener.Addr().String()
}

// PeerCount returns connected spectator count
func (s *Service) PeerCount() int {
	return s.peers.PeerCount()
}

// IsRunning returns true if the listener is active
func (s *Service) IsRunning() bool {
	return s.running.Load()
}

// PublishSnapshot broadcasts the session board, throttled to the snapshot interval
// Returns whether a frame was sent
func (s *Service) PublishSnapshot(ss *engine.Session, now time.Time) bool {
	s.mu.Lock()
	if !s.lastSnapshot.IsZero() && now.Sub(s.lastSnapshot) < s.config.SnapshotInterval {
		s.mu.Unlock()
		return false
	}
	s.lastSnapshot = now
	s.mu.Unlock()

	data, err := s.encode(&Frame{Type: MsgSnapshot, Snapshot: NewSnapshot(ss)})
	if err != nil {
		log.Printf("spectator snapshot: %v", err)
		return false
	}

	s.mu.Lock()
	s.latest = data
	s.width, s.height = ss.State.Width, ss.State.Height
	s.mu.Unlock()

	s.peers.Broadcast(data)
	return true
}

// PublishEvent broadcasts one notification; usable as an event.Router tap
func (s *Service) PublishEvent(ev event.GameEvent) {
	if s.peers.PeerCount() == 0 {
		return
	}
	rec, err := NewEventRecord(ev)
	if err != nil {
		log.Printf("spectator event %s: %v", ev.Type, err)
		return
	}
	data, err := s.encode(&Frame{Type: MsgEvent, Event: rec})
	if err != nil {
		log.Printf("spectator event %s: %v", ev.Type, err)
		return
	}
	s.peers.Broadcast(data)
}

func (s *Service) encode(f *Frame) ([]byte, error) {
	f.Seq = s.seq.Add(1)
	return Encode(f)
}

func (s *Service) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectator upgrade: %v", err)
		return
	}
	if _, err := s.peers.Add(ws); err != nil {
		log.Printf("spectator %s rejected: %v", r.RemoteAddr, err)
	}
}

// onConnect greets a new peer with the latest board
func (s *Service) onConnect(p *Peer) {
	s.mu.Lock()
	latest, w, h := s.latest, s.width, s.height
	s.mu.Unlock()

	hello, err := s.encode(&Frame{Type: MsgHello, Hello: &Hello{PeerID: p.ID, Width: w, Height: h}})
	if err != nil {
		log.Printf("spectator hello: %v", err)
		p.Close()
		return
	}
	p.Send(hello)
	if latest != nil {
		p.Send(latest)
	}
	log.Printf("spectator %s connected from %s", p.ID, p.Addr)
}

func (s *Service) onDisconnect(p *Peer) {
	log.Printf("spectator %s disconnected (%d frames dropped)", p.ID, p.Dropped.Load())
}
