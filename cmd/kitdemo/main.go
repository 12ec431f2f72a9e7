// Command kitdemo draws a red square on a 200x200 surface and shows it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"golang.org/x/mobile/event/lifecycle"

	"github.com/gogpu/kitdemo"
	"github.com/gogpu/kitdemo/activity"
	"github.com/gogpu/kitdemo/display"
	_ "github.com/gogpu/kitdemo/display/termview"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "kitdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	cfg := activity.DefaultConfig()
	rect := rectFlag(cfg.Rect)
	color := colorFlag(cfg.Color)
	background := colorFlag(cfg.Background)

	fs := flag.NewFlagSet("kitdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "surface width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "surface height")
	fs.Var(&rect, "rect", "rectangle corners x0,y0,x1,y1")
	fs.Var(&color, "color", "fill color: name, #rrggbb or #aarrggbb")
	fs.Var(&background, "background", "background color")
	blend := fs.String("blend", "src-over", "blend mode: src-over or src")
	view := fs.String("view", "file", "view: "+strings.Join(display.List(), ", ")+" or auto")
	output := fs.String("output", "kitdemo.png", "output file for the file view (.png, .bmp, .tif)")
	scale := fs.Float64("scale", 1, "scale factor applied before display")
	title := fs.String("title", "kitdemo", "window title")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	kitdemo.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cfg.Rect = kitdemo.Rect(rect)
	cfg.Color = kitdemo.RGBA(color)
	cfg.Background = kitdemo.RGBA(background)
	switch *blend {
	case "src-over":
		cfg.Blend = kitdemo.BlendSrcOver
	case "src":
		cfg.Blend = kitdemo.BlendSrc
	default:
		return fmt.Errorf("unknown blend mode %q", *blend)
	}

	opts := display.Options{Output: *output, Scale: *scale, Title: *title}
	var (
		v   display.View
		err error
	)
	if *view == "auto" {
		v, err = display.NewView(opts)
	} else {
		v, err = display.NewViewByName(*view, opts)
	}
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return show(ctx, activity.New(cfg, v))
}

// show runs one display event: create, present until dismissed, destroy.
// The destroy event is sent even when create fails so the view is released.
func show(ctx context.Context, a *activity.Activity) (err error) {
	defer func() {
		derr := a.Handle(lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageDead})
		err = errors.Join(err, derr)
	}()
	if err := a.Handle(lifecycle.Event{From: lifecycle.StageDead, To: lifecycle.StageFocused}); err != nil {
		return err
	}

	if p, ok := a.View().(display.Presenter); ok {
		if err := p.Present(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	return nil
}

// rectFlag parses "x0,y0,x1,y1".
type rectFlag kitdemo.Rect

func (r *rectFlag) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X0, r.Y0, r.X1, r.Y1)
}

func (r *rectFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return fmt.Errorf("want x0,y0,x1,y1, got %q", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("bad coordinate %q: %w", p, err)
		}
		v[i] = n
	}
	*r = rectFlag(kitdemo.R(v[0], v[1], v[2], v[3]))
	return nil
}

// colorFlag parses anything kitdemo.ParseColor accepts.
type colorFlag kitdemo.RGBA

func (c *colorFlag) String() string {
	return kitdemo.RGBA(*c).String()
}

func (c *colorFlag) Set(s string) error {
	v, err := kitdemo.ParseColor(s)
	if err != nil {
		return err
	}
	*c = colorFlag(v)
	return nil
}
