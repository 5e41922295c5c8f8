package engine

import (
	"github.com/lixenwraith/term-snake/core"
)

// HighScores keeps the best score per game mode
type HighScores [core.GameModeCount]int

// State is the authoritative simulation model
// Single writer: only the game loop goroutine mutates it, through Engine and Session
type State struct {
	Preset        ModePreset
	Width, Height int

	// Snake cells, head first
	Snake []core.Cell

	// Queue holds steering inputs not yet applied
	Queue DirectionQueue

	// Dir is the current travel direction; zero while stationary
	Dir core.Direction

	// MoveAccum is seconds since the last grid step
	MoveAccum float64

	Items   []Item
	Effects StatusEffects

	Score    int
	Best     HighScores
	GameOver bool
	Cause    core.DeathCause

	// GameTime is unpaused seconds since reset
	GameTime float64

	// Frame counts ticks that advanced the simulation
	Frame int64

	// Pause control
	UserPaused  bool
	Resuming    bool
	ResumeTimer float64

	bestAtStart      int
	pendingReplenish bool
	debuffPulse      float64
	resumePulse      float64
}

// NewState creates an empty state for a mode; Engine.Reset populates it
func NewState(mode core.GameMode, width, height int) *State {
	return &State{
		Preset: Preset(mode),
		Width:  width,
		Height: height,
	}
}

// Mode returns the session's game mode
func (s *State) Mode() core.GameMode {
	return s.Preset.Mode
}

// Head returns the snake head cell
func (s *State) Head() core.Cell {
	return s.Snake[0]
}

// Len returns the snake length
func (s *State) Len() int {
	return len(s.Snake)
}

// BestScore returns the best score for the current mode
func (s *State) BestScore() int {
	return s.Best[s.Preset.Mode]
}

// Paused reports whether the simulation is frozen by the player
func (s *State) Paused() bool {
	return s.UserPaused || s.Resuming
}

// OnSnake reports whether c is any snake cell
func (s *State) OnSnake(c core.Cell) bool {
	for _, seg := range s.Snake {
		if seg == c {
			return true
		}
	}
	return false
}

// ItemIndexAt returns the index of the item on c, or -1
func (s *State) ItemIndexAt(c core.Cell) int {
	for i, it := range s.Items {
		if it.Cell == c {
			return i
		}
	}
	return -1
}

// IsFree reports whether c holds neither snake nor item
func (s *State) IsFree(c core.Cell) bool {
	return !s.OnSnake(c) && s.ItemIndexAt(c) < 0
}

// recordHighScore raises the mode best to the current score
func (s *State) recordHighScore() {
	m := s.Preset.Mode
	if s.Score > s.Best[m] {
		s.Best[m] = s.Score
	}
}

func (s *State) removeItem(i int) Item {
	it := s.Items[i]
	s.Items = append(s.Items[:i], s.Items[i+1:]...)
	return it
}

func (s *State) pushHead(c core.Cell) {
	s.Snake = append(s.Snake, core.Cell{})
	copy(s.Snake[1:], s.Snake)
	s.Snake[0] = c
}

func (s *State) dropTail() {
	s.Snake = s.Snake[:len(s.Snake)-1]
}

// growTail duplicates the tail so the snake extends on the next step
func (s *State) growTail() {
	s.Snake = append(s.Snake, s.Snake[len(s.Snake)-1])
}

func (s *State) reverseSnake() {
	for i, j := 0, len(s.Snake)-1; i < j; i, j = i+1, j-1 {
		s.Snake[i], s.Snake[j] = s.Snake[j], s.Snake[i]
	}
}
