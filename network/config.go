package network

import (
	"fmt"
	"net"
	"time"

	"github.com/lixenwraith/term-snake/constant"
)

// Config holds spectator feed configuration
type Config struct {
	// Address to bind, host:port
	Address string

	// Path serves the websocket upgrade
	Path string

	// Connection limits
	MaxPeers int

	// Timing
	WriteTimeout     time.Duration
	SnapshotInterval time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
}

// DefaultConfig returns localhost defaults
func DefaultConfig() *Config {
	return &Config{
		Address:          "127.0.0.1:7777",
		Path:             constant.SpectatorPath,
		MaxPeers:         constant.SpectatorMaxPeers,
		WriteTimeout:     constant.SpectatorWriteTimeout,
		SnapshotInterval: constant.SpectatorSnapshotInterval,
		ReadBufferSize:   1024,
		WriteBufferSize:  16 * 1024,
		SendQueueSize:    constant.SpectatorSendQueueSize,
	}
}

// Validate checks the config before binding
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Address); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidAddress, c.Address, err)
	}
	if c.MaxPeers <= 0 {
		return fmt.Errorf("max peers must be positive, got %d", c.MaxPeers)
	}
	if c.SendQueueSize <= 0 {
		c.SendQueueSize = constant.SpectatorSendQueueSize
	}
	if c.Path == "" {
		c.Path = constant.SpectatorPath
	}
	return nil
}
