// Package show provides runners that print the computed timeline.
package show

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/item"
	"tableflip.dev/timeline/pkg/printers"
)

var errNoService = errors.New("can not show, no timeline loaded")

// Layout prints the full pipeline: window, visible items and their lanes.
type Layout struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

func (n *Layout) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	res, err := n.Service.Layout()
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, res)
	}

	pp := printers.PrettyPrint{Out: n.Out, Swatches: true}
	pp.NewLine()
	pp.Layout(res)
	return nil
}

// Lanes prints the lane assignment over every item, ignoring zoom and filter.
type Lanes struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

type lanesOutput struct {
	LaneCount int         `json:"laneCount"`
	Items     []item.Item `json:"items"`
}

func (n *Lanes) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	assigned, count, err := n.Service.Lanes()
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, lanesOutput{LaneCount: count, Items: assigned})
	}

	pp := printers.PrettyPrint{Out: n.Out, Swatches: true}
	pp.NewLine()
	pp.TitleWithCount("Lanes", count, "lane")
	pp.Lanes(assigned, count)
	return nil
}

// Window prints the view window for the stored zoom.
type Window struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

func (n *Window) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	w, err := n.Service.Window()
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, w)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Title("Window")
	pp.Window(w)
	return nil
}
