package network

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Peer is one connected spectator
type Peer struct {
	ID   string
	Addr string

	LastSent atomic.Int64 // UnixNano
	Dropped  atomic.Uint64

	ws           *websocket.Conn
	writeTimeout time.Duration

	// Send queue
	sendCh chan []byte

	// Lifecycle
	closeCh   chan struct{}
	closeOnce sync.Once
}

func newPeer(ws *websocket.Conn, sendQueueSize int, writeTimeout time.Duration) *Peer {
	return &Peer{
		ID:           uuid.NewString(),
		Addr:         ws.RemoteAddr().String(),
		ws:           ws,
		writeTimeout: writeTimeout,
		sendCh:       make(chan []byte, sendQueueSize),
		closeCh:      make(chan struct{}),
	}
}

// Send queues an encoded frame; returns false if the peer is closed or its queue is full
func (p *Peer) Send(data []byte) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}

	select {
	case p.sendCh <- data:
		return true
	default:
		p.Dropped.Add(1)
		return false
	}
}

// Close disconnects the peer once
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		p.ws.Close()
	})
}

// Done is closed when the peer disconnects
func (p *Peer) Done() <-chan struct{} {
	return p.closeCh
}

// readLoop discards inbound messages and detects disconnects
func (p *Peer) readLoop() {
	defer p.Close()

	p.ws.SetReadLimit(512)
	for {
		if _, _, err := p.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("spectator %s read error: %v", p.ID, err)
			}
			return
		}
	}
}

// writeLoop sends queued frames
func (p *Peer) writeLoop() {
	defer p.Close()

	for {
		select {
		case <-p.closeCh:
			return
		case data := <-p.sendCh:
			p.ws.SetWriteDeadline(time.Now().Add(p.writeTimeout))
			if err := p.ws.WriteMessage(websocket.BinaryMessage, data); err != nil {
				return
			}
			p.LastSent.Store(time.Now().UnixNano())
		}
	}
}

// PeerManager tracks connected spectators
type PeerManager struct {
	mu       sync.RWMutex
	peers    map[string]*Peer
	maxPeers int
	config   *Config

	// Callbacks
	onConnect    func(*Peer)
	onDisconnect func(*Peer)
}

// NewPeerManager creates a peer manager
func NewPeerManager(cfg *Config) *PeerManager {
	return &PeerManager{
		peers:    make(map[string]*Peer),
		maxPeers: cfg.MaxPeers,
		config:   cfg,
	}
}

// SetHandlers configures connection callbacks
func (pm *PeerManager) SetHandlers(onConnect, onDisconnect func(*Peer)) {
	pm.onConnect = onConnect
	pm.onDisconnect = onDisconnect
}

// Add registers an upgraded connection and starts its I/O loops
func (pm *PeerManager) Add(ws *websocket.Conn) (*Peer, error) {
	pm.mu.Lock()
	if len(pm.peers) >= pm.maxPeers {
		pm.mu.Unlock()
		ws.Close()
		return nil, ErrMaxPeers
	}
	peer := newPeer(ws, pm.config.SendQueueSize, pm.config.WriteTimeout)
	pm.peers[peer.ID] = peer
	pm.mu.Unlock()

	// Hello goes in before the writer starts so it is always first
	if pm.onConnect != nil {
		pm.onConnect(peer)
	}

	go peer.readLoop()
	go peer.writeLoop()
	go pm.monitorPeer(peer)

	return peer, nil
}

// monitorPeer watches for disconnection
func (pm *PeerManager) monitorPeer(peer *Peer) {
	<-peer.closeCh

	pm.mu.Lock()
	delete(pm.peers, peer.ID)
	pm.mu.Unlock()

	if pm.onDisconnect != nil {
		pm.onDisconnect(peer)
	}
}

// Broadcast queues a frame for every peer
func (pm *PeerManager) Broadcast(data []byte) {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	for _, peer := range pm.peers {
		peer.Send(data)
	}
}

// PeerCount returns current connected peer count
func (pm *PeerManager) PeerCount() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.peers)
}

// Close disconnects all peers
func (pm *PeerManager) Close() {
	pm.mu.Lock()
	peers := pm.peers
	pm.peers = make(map[string]*Peer)
	pm.mu.Unlock()

	for _, peer := range peers {
		peer.Close()
	}
}
