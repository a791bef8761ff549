package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/maze-chase/config"
	"github.com/lixenwraith/maze-chase/engine"
	"github.com/lixenwraith/maze-chase/render"
)

// keyHold is how long an arrow press counts as held; terminals report repeats, not releases
const keyHold = 150 * time.Millisecond

var (
	configFlag = flag.String("config", "", "YAML config file (also "+config.EnvConfig+")")
	envFlag    = flag.String("env", ".env", "Env file applied before the environment")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, overrides config when non-zero")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
)

type game struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	sim      *engine.Simulation
	log      logrus.FieldLogger
	frame    time.Duration

	held map[tcell.Key]time.Time
}

func main() {
	var screen tcell.Screen
	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\nMAZE-CHASE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	path := *configFlag
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	cfg, err := config.Load(path, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}

	logger, logFile := setupLogging(cfg.Debug, cfg.Level())
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err = newScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	g := newGame(screen, cfg, logger)
	g.run()
}

func newScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	screen.EnableMouse()
	screen.HideCursor()
	return screen, nil
}

func newGame(screen tcell.Screen, cfg *config.Config, logger *logrus.Logger) *game {
	view := render.DefaultViewport()
	w, h := view.WorldSize(screen.Size())

	sim := engine.New(w, h, cfg.Options(logger))
	logger.WithFields(logrus.Fields{
		"seed":  cfg.Seed,
		"world": fmt.Sprintf("%.0fx%.0f", w, h),
		"fps":   cfg.FPS,
	}).Info("maze-chase starting")

	return &game{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen, view),
		sim:      sim,
		log:      logger,
		frame:    cfg.FrameDuration(),
		held:     make(map[tcell.Key]time.Time),
	}
}

func (g *game) run() {
	ticker := time.NewTicker(g.frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			g.sim.SetInput(g.input(now))
			g.sim.Tick(now.Sub(last))
			last = now

			for _, e := range g.sim.ConsumeEvents() {
				g.log.WithField("event", e.Type.String()).Debug("simulation event")
			}

			snap := g.sim.Snapshot()
			g.renderer.Draw(&snap)
			g.screen.Show()
		}
	}
}

// handleEvent returns false when the player quits
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
			g.held[ev.Key()] = time.Now()
			g.sim.Start()
		case tcell.KeyEnter:
			g.sim.Start()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				g.sim.Start()
			case 'r':
				g.sim.Reset()
				clear(g.held)
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := g.renderer.Viewport().ToWorld(col, row)
		g.sim.SetPlayer(x, y)
		// Any pointer move onto a safe spot starts the run
		g.sim.Start()

	case *tcell.EventResize:
		g.screen.Sync()
		w, h := g.renderer.Viewport().WorldSize(g.screen.Size())
		g.sim.Resize(w, h)
		clear(g.held)
	}

	return true
}

// input derives held directions from recent arrow presses
func (g *game) input(now time.Time) engine.Input {
	isHeld := func(k tcell.Key) bool {
		t, ok := g.held[k]
		return ok && now.Sub(t) < keyHold
	}
	return engine.Input{
		Up:    isHeld(tcell.KeyUp),
		Down:  isHeld(tcell.KeyDown),
		Left:  isHeld(tcell.KeyLeft),
		Right: isHeld(tcell.KeyRight),
	}
}
