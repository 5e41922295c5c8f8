package constant

import "time"

// Spectator Feed
const (
	// SpectatorPath is the websocket upgrade path
	SpectatorPath = "/spectate"

	// SpectatorMaxPeers caps concurrent spectators
	SpectatorMaxPeers = 16

	// SpectatorSendQueueSize buffers frames per peer; a full queue drops frames for that peer
	SpectatorSendQueueSize = 32

	// SpectatorWriteTimeout bounds a single frame write
	SpectatorWriteTimeout = 2 * time.Second

	// SpectatorSnapshotInterval throttles state frames (events are sent as they happen)
	SpectatorSnapshotInterval = 100 * time.Millisecond
)
