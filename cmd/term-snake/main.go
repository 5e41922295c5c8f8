package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/audio"
	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/network"
)

// EnvSpectateAddr enables the spectator feed when -spectate is not given
const EnvSpectateAddr = "TERM_SNAKE_SPECTATE_ADDR"

var (
	modeFlag     = flag.String("mode", "", "Start directly in a mode: regular, accelerated")
	seedFlag     = flag.Uint64("seed", 0, "Random seed (0 = time based)")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/term-snake.log")
	muteFlag     = flag.Bool("mute", false, "Start with sound muted")
	spectateFlag = flag.String("spectate", "", "Serve a websocket spectator feed on host:port")
)

// crash is the terminal panic path; replaced in tests
var crash = core.HandleCrash

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	// Panic Recovery: flush the log, then restore the terminal and print the stack
	defer func() {
		handlePanic(recover(), logFile)
	}()

	err := run()
	closeLog(logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "term-snake: %v\n", err)
		os.Exit(1)
	}
}

// handlePanic records r in the debug log and hands it to the crash handler
func handlePanic(r any, logFile *os.File) {
	if r == nil {
		return
	}
	log.Printf("panic: %v", r)
	closeLog(logFile)
	crash(r)
}

func closeLog(f *os.File) {
	if f == nil {
		return
	}
	f.Sync()
	f.Close()
}

func run() error {
	var startMode *core.GameMode
	if *modeFlag != "" {
		m, err := core.ParseGameMode(*modeFlag)
		if err != nil {
			return err
		}
		startMode = &m
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("seed=%d", seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// HandleCrash restores this screen on panic
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.HideCursor()

	sound := startAudio(*muteFlag)
	if sound != nil {
		defer sound.Cleanup()
	}

	spectators := startSpectators()
	if spectators != nil {
		defer spectators.Stop()
	}

	eng := engine.NewEngine(engine.NewFastRand(seed), nil)
	session := engine.NewSession(eng, constant.GridWidth, constant.GridHeight)
	if startMode != nil {
		session.SelectMode(*startMode)
		session.Start()
	}

	var player audio.Player
	if sound != nil {
		player = sound
	}
	g := newGame(screen, session, engine.NewMonotonicTimeProvider(), player, spectators)

	eventChan := make(chan tcell.Event, constant.InputChannelSize)
	// Input polling uses its own goroutine as PollEvent blocks
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constant.FrameUpdateInterval)
	defer frameTicker.Stop()

	g.frame()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return nil
			}
		case <-frameTicker.C:
			g.frame()
		}
	}
}

// startAudio opens the speaker; failures leave the game silent
func startAudio(muted bool) *audio.SoundManager {
	cfg := audio.LoadAudioConfig()
	if !cfg.Enabled {
		return nil
	}
	sm := audio.NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		log.Printf("audio unavailable: %v (continuing without audio)", err)
		return nil
	}
	if muted {
		sm.ToggleMute()
	}
	return sm
}

// startSpectators binds the spectator feed when configured; failures are logged and the game continues
func startSpectators() *network.Service {
	addr := *spectateFlag
	if addr == "" {
		addr = os.Getenv(EnvSpectateAddr)
	}
	if addr == "" {
		return nil
	}

	cfg := network.DefaultConfig()
	cfg.Address = addr
	svc := network.NewService(cfg)
	if err := svc.Start(); err != nil {
		log.Printf("spectator feed disabled: %v", err)
		return nil
	}
	return svc
}
