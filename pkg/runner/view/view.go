// Package view provides runners for the persisted view controls.
package view

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/category"
	"tableflip.dev/timeline/pkg/layout"
	"tableflip.dev/timeline/pkg/printers"
)

// Zoom changes or prints the stored zoom factor. Action is one of "in",
// "out", "reset", a factor such as "1.5", or empty to print the current value.
type Zoom struct {
	Service *app.Service
	Action  string
	JSON    bool
	Out     io.Writer
}

type zoomOutput struct {
	Zoom   float64       `json:"zoom"`
	Window layout.Window `json:"window"`
}

func (n *Zoom) Do(_ context.Context) error {
	if n.Service == nil || n.Service.View == nil {
		return errors.New("can not zoom, no view state")
	}
	current := n.Service.View.Zoom()

	var next float64
	switch action := strings.ToLower(strings.TrimSpace(n.Action)); action {
	case "":
		next = current
	case "in", "+":
		next = layout.ZoomIn(current)
	case "out", "-":
		next = layout.ZoomOut(current)
	case "reset":
		next = layout.DefaultZoom
	default:
		f, err := strconv.ParseFloat(strings.TrimSuffix(action, "x"), 64)
		if err != nil {
			return fmt.Errorf("invalid zoom %q, expected in, out, reset or a factor", n.Action)
		}
		next = f
	}

	z, err := n.Service.SetZoom(next)
	if err != nil {
		return err
	}
	w, err := n.Service.Window()
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, zoomOutput{Zoom: z, Window: w})
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Title("Window")
	pp.Window(w)
	return nil
}

// Categories changes or prints the active category filter.
type Categories struct {
	Service *app.Service
	Names   []string
	Clear   bool
	JSON    bool
	Out     io.Writer
}

type categoriesOutput struct {
	Active []category.Category `json:"active"`
}

func (n *Categories) Do(_ context.Context) error {
	if n.Service == nil || n.Service.View == nil {
		return errors.New("can not filter, no view state")
	}
	switch {
	case n.Clear:
		if err := n.Service.SetCategories(nil); err != nil {
			return err
		}
	case len(n.Names) > 0:
		cs, err := category.ParseList(n.Names)
		if err != nil {
			return err
		}
		if err := n.Service.SetCategories(cs); err != nil {
			return err
		}
	}

	active := n.Service.View.Categories()
	if n.JSON {
		if active == nil {
			active = []category.Category{}
		}
		return printers.JSON(n.Out, categoriesOutput{Active: active})
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Title("Categories")
	pp.Legend(category.Palette(), category.NewSet(active...))
	return nil
}

// Legend prints the category palette.
type Legend struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

func (n *Legend) Do(_ context.Context) error {
	if n.JSON {
		return printers.JSON(n.Out, category.Palette())
	}
	var active category.Set
	if n.Service != nil && n.Service.View != nil {
		active = category.NewSet(n.Service.View.Categories()...)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Legend(category.Palette(), active)
	return nil
}
