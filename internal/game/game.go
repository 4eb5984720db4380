package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsgambit/internal/config"
	"github.com/samdwyer/dungeonsgambit/internal/encounter"
	"github.com/samdwyer/dungeonsgambit/internal/gamedata"
	"github.com/samdwyer/dungeonsgambit/internal/telemetry"
	"github.com/samdwyer/dungeonsgambit/internal/ui"
)

// ErrScreenClosed is returned by Run when the terminal stops delivering
// events before the player quits.
var ErrScreenClosed = errors.New("game: terminal event stream closed")

// Game holds the entire game state.
type Game struct {
	cfg    config.Config
	clock  encounter.Clock
	logger *log.Logger

	screen    *ui.Screen
	renderer  *ui.Renderer
	presenter *ui.Presenter

	registry *gamedata.CardRegistry
	heroDef  gamedata.HeroDef
	rng      *rand.Rand
	seed     int64

	state     State
	enteredAt time.Time

	// Set only while a run is in progress.
	session *encounter.Session
	machine *encounter.Machine

	buttons tcell.ButtonMask
	running bool
}

// New creates a new game instance on the terminal.
func New(cfg config.Config, logger *log.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g, err := NewWithScreen(screen, cfg, encounter.RealClock{}, logger)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game on an initialized screen with the given
// clock.
func NewWithScreen(screen *ui.Screen, cfg config.Config, clock encounter.Clock, logger *log.Logger) (*Game, error) {
	registry, err := gamedata.LoadCardRegistry()
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	heroDef, err := gamedata.LoadHero()
	if err != nil {
		return nil, fmt.Errorf("load hero: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}

	return &Game{
		cfg:       cfg,
		clock:     clock,
		logger:    logger,
		screen:    screen,
		renderer:  ui.NewRenderer(screen),
		presenter: ui.NewPresenter(clock, cfg.MessageDuration),
		registry:  registry,
		heroDef:   heroDef,
		rng:       rand.New(rand.NewSource(seed)),
		seed:      seed,
		state:     StateTitle,
		enteredAt: clock.Now(),
		running:   true,
	}, nil
}

// State returns the current screen.
func (g *Game) State() State { return g.state }

// Run executes the main game loop until the player quits or ctx is done.
// It returns ErrScreenClosed if the terminal goes away first.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int64("seed", g.seed),
		attribute.Int("deck.starter_size", g.registry.StarterSize()),
		attribute.Int64("frame_interval_ms", g.cfg.FrameInterval.Milliseconds()),
	)
	initSpan.End()

	ticker := time.NewTicker(g.cfg.FrameInterval)
	defer ticker.Stop()
	events := g.screen.Events()

	var err error
	for g.running {
		g.render()

		select {
		case <-ctx.Done():
			g.running = false
		case ev, ok := <-events:
			if !ok {
				g.running = false
				err = ErrScreenClosed
				break
			}
			g.handleEvent(ctx, ev)
		case <-ticker.C:
			g.update(ctx)
		}
	}

	g.screen.Close()
	return err
}

// update advances timers once per frame.
func (g *Game) update(ctx context.Context) {
	switch g.state {
	case StateShuffle:
		if g.elapsed() >= g.cfg.ShuffleDuration {
			g.setState(ctx, StateRoom)
		}
	case StateRoom:
		g.machine.Tick(ctx)
	}
}

func (g *Game) render() {
	switch g.state {
	case StateTitle:
		g.renderer.RenderTitle(g.titleReady())
	case StateShuffle:
		progress := 1.0
		if g.cfg.ShuffleDuration > 0 {
			progress = float64(g.elapsed()) / float64(g.cfg.ShuffleDuration)
		}
		g.renderer.RenderShuffle(progress)
	case StateRoom:
		g.renderer.RenderRoom(g.roomView())
	}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input. Space and Enter tap the
// default target: the deck when idle, the enemy during a fight.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyEnter:
		g.activate(ctx, true)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case ' ':
			g.activate(ctx, true)
		}
	}
}

// handleMouseEvent turns a primary button press into a tap. Held buttons
// report repeatedly, so only the press edge counts.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && g.buttons&tcell.Button1 == 0
	g.buttons = buttons
	if !pressed {
		return
	}
	x, y := ev.Position()
	g.activate(ctx, g.renderer.Layout().OnCard(x, y))
}

// activate routes a tap to the current screen.
func (g *Game) activate(ctx context.Context, onCard bool) {
	switch g.state {
	case StateTitle:
		if g.titleReady() {
			g.startRun(ctx)
		}
	case StateShuffle:
		// Taps wait for the shuffle.
	case StateRoom:
		if g.machine.Activate(ctx, onCard) == encounter.SignalReturnToTitle {
			g.endRun(ctx)
		}
	}
}

func (g *Game) titleReady() bool {
	return g.elapsed() >= g.cfg.TitleDelay
}

func (g *Game) elapsed() time.Duration {
	return g.clock.Now().Sub(g.enteredAt)
}

func (g *Game) setState(ctx context.Context, next State) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.screen")
	span.SetAttributes(
		attribute.String("from", g.state.String()),
		attribute.String("to", next.String()),
	)
	span.End()

	g.state = next
	g.enteredAt = g.clock.Now()
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
