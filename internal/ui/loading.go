package ui

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/panelreel/internal/panels"
)

// LoadingScreen loads the panel list in the background and then replaces
// itself with the screen built by next.
type LoadingScreen struct {
	source panels.Source
	next   func([]panels.Panel) Screen

	cancel context.CancelFunc
	frames int
	width  int
	height int

	mu     sync.Mutex
	done   bool
	result []panels.Panel
	err    error
}

func NewLoadingScreen(source panels.Source, next func([]panels.Panel) Screen) *LoadingScreen {
	return &LoadingScreen{source: source, next: next}
}

func (ls *LoadingScreen) Name() string { return "Loading" }

func (ls *LoadingScreen) OnEnter() {
	if ls.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	ls.cancel = cancel
	go ls.load(ctx)
}

func (ls *LoadingScreen) OnExit() {
	if ls.cancel != nil {
		ls.cancel()
	}
}

func (ls *LoadingScreen) Resize(width, height int) {
	ls.width, ls.height = width, height
}

func (ls *LoadingScreen) load(ctx context.Context) {
	ps, err := ls.source.Load(ctx)
	if err != nil {
		log.Printf("Failed to load panels from %s: %v", ls.source.Name(), err)
	} else {
		log.Printf("Loaded %d panels from %s", len(ps), ls.source.Name())
	}

	ls.mu.Lock()
	ls.result, ls.err, ls.done = ps, err, true
	ls.mu.Unlock()
}

func (ls *LoadingScreen) Update() (*ScreenTransition, error) {
	ls.frames++

	ls.mu.Lock()
	done, ps, err := ls.done, ls.result, ls.err
	ls.mu.Unlock()

	if !done || err != nil {
		return nil, nil
	}
	return &ScreenTransition{Type: TransitionReplace, Screen: ls.next(ps)}, nil
}

func (ls *LoadingScreen) Draw(dst *ebiten.Image) {
	cx, cy := float64(ls.width)/2, float64(ls.height)/2

	ls.mu.Lock()
	err := ls.err
	ls.mu.Unlock()

	if err != nil {
		DrawTextCentered(dst, "Could not load panels", cx, cy-FontSizeHeading, FontSizeHeading, ColorError)
		DrawTextCentered(dst, err.Error(), cx, cy+FontSizeBody, FontSizeBody, ColorTextSecondary)
		return
	}
	dots := strings.Repeat(".", ls.frames/20%4)
	DrawTextCentered(dst, "Loading panels"+dots, cx, cy, FontSizeHeading, ColorTextSecondary)
}
