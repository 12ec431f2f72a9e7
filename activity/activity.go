// Package activity drives one render per display event.
//
// An Activity follows lifecycle events from golang.org/x/mobile: when the
// app comes alive it renders the configured rectangle and hands the
// pixmap to its view; when the app dies the pixmap is discarded.
package activity

import (
	"errors"
	"fmt"
	"io"

	"github.com/oklog/ulid/v2"
	"golang.org/x/mobile/event/lifecycle"

	"github.com/gogpu/kitdemo"
	"github.com/gogpu/kitdemo/display"
)

// Config describes what the activity draws.
type Config struct {
	Width, Height int
	Rect          kitdemo.Rect
	Color         kitdemo.RGBA
	Background    kitdemo.RGBA
	Blend         kitdemo.BlendMode
}

// DefaultConfig returns the demo configuration: a 200x200 surface with a
// red 100x100 square in the top-left corner.
func DefaultConfig() Config {
	return Config{
		Width:      200,
		Height:     200,
		Rect:       kitdemo.R(0, 0, 100, 100),
		Color:      kitdemo.Red,
		Background: kitdemo.Transparent,
		Blend:      kitdemo.BlendSrcOver,
	}
}

// ErrNoView is returned when the activity has no view to show into.
var ErrNoView = errors.New("activity: no view")

// Activity owns the surface for the current display event.
type Activity struct {
	cfg      Config
	renderer *kitdemo.RectangleRenderer
	view     display.View
	stage    lifecycle.Stage

	surface *kitdemo.Pixmap
	eventID ulid.ULID
}

// New creates an activity showing into view.
func New(cfg Config, view display.View) *Activity {
	return &Activity{
		cfg: cfg,
		renderer: kitdemo.NewRectangleRenderer(
			kitdemo.WithBackground(cfg.Background),
			kitdemo.WithBlendMode(cfg.Blend),
		),
		view: view,
	}
}

// Handle applies a lifecycle event. Crossing into StageAlive creates and
// shows the surface; crossing out of it destroys the surface.
func (a *Activity) Handle(e lifecycle.Event) error {
	a.stage = e.To
	switch e.Crosses(lifecycle.StageAlive) {
	case lifecycle.CrossOn:
		return a.onCreate()
	case lifecycle.CrossOff:
		return a.onDestroy()
	}
	return nil
}

// SetView replaces the view. The old surface is discarded, the old view is
// released if it is an io.Closer, and while the activity is alive a fresh
// surface is rendered for the new view.
func (a *Activity) SetView(v display.View) error {
	a.discard("view replaced")
	old := a.view
	a.view = v
	if err := release(old, v); err != nil {
		return err
	}
	if a.stage < lifecycle.StageAlive {
		return nil
	}
	return a.onCreate()
}

// Surface returns the current surface, or nil when none is shown.
func (a *Activity) Surface() *kitdemo.Pixmap {
	return a.surface
}

// EventID identifies the current display event. It is the zero ULID when
// no surface is shown.
func (a *Activity) EventID() ulid.ULID {
	return a.eventID
}

// Stage returns the last lifecycle stage seen.
func (a *Activity) Stage() lifecycle.Stage {
	return a.stage
}

// View returns the current view.
func (a *Activity) View() display.View {
	return a.view
}

func (a *Activity) onCreate() error {
	if a.view == nil {
		return ErrNoView
	}

	pm, err := a.renderer.RenderRect(a.cfg.Width, a.cfg.Height, a.cfg.Rect, a.cfg.Color)
	if err != nil {
		return fmt.Errorf("activity: create surface: %w", err)
	}
	id := ulid.Make()
	log := kitdemo.Logger().With("event", id.String())
	log.Info("activity: surface created",
		"width", pm.Width(), "height", pm.Height(), "format", pm.Format(),
		"rect", a.cfg.Rect, "color", a.cfg.Color)

	if err := a.view.SetImage(pm); err != nil {
		return fmt.Errorf("activity: set image: %w", err)
	}
	a.surface = pm
	a.eventID = id
	log.Info("activity: view set", "view", fmt.Sprintf("%T", a.view))
	return nil
}

func (a *Activity) onDestroy() error {
	a.discard("activity destroyed")
	return release(a.view, nil)
}

// release closes old unless it is still in use as next.
func release(old, next display.View) error {
	if old == nil || old == next {
		return nil
	}
	c, ok := old.(io.Closer)
	if !ok {
		return nil
	}
	if err := c.Close(); err != nil {
		kitdemo.Logger().Warn("activity: view release failed", "err", err)
		return fmt.Errorf("activity: release view: %w", err)
	}
	return nil
}

func (a *Activity) discard(reason string) {
	if a.surface == nil {
		return
	}
	kitdemo.Logger().Info("activity: surface discarded",
		"event", a.eventID.String(), "reason", reason)
	a.surface = nil
	a.eventID = ulid.ULID{}
}
