// Package move provides runners that change items in the in-memory store and
// print the recomputed layout.
package move

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/item"
	"tableflip.dev/timeline/pkg/layout"
	"tableflip.dev/timeline/pkg/printers"
)

// Move applies a horizontal drag to one item.
type Move struct {
	Service *app.Service
	ID      int
	// Drag is the raw gesture. DeltaX is used when Drag is nil.
	Drag   *layout.Drag
	DeltaX float64
	Span   time.Duration
	Width  float64
	JSON   bool
	Out    io.Writer
}

func (n *Move) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no timeline loaded")
	}
	delta := n.DeltaX
	if n.Drag != nil {
		delta = n.Drag.DeltaX()
	}
	res, err := n.Service.Move(app.MoveOptions{
		ID:     n.ID,
		DeltaX: delta,
		Span:   n.Span,
		Width:  n.Width,
	})
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, res)
	}

	pp := printers.PrettyPrint{Out: n.Out, Swatches: true}
	pp.NewLine()
	pp.Title("Moved")
	pp.Item(res.After)
	pp.NewLine()
	pp.Layout(res.Layout)
	return nil
}

// Edit replaces fields of one item.
type Edit struct {
	Service *app.Service
	ID      int
	Options app.EditOptions
	JSON    bool
	Out     io.Writer
}

type editOutput struct {
	Item   item.Item     `json:"item"`
	Layout layout.Result `json:"layout"`
}

func (n *Edit) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no timeline loaded")
	}
	if n.Options.Empty() {
		return errors.New("nothing to edit, set at least one of --name, --start, --end or --category")
	}
	it, err := n.Service.Edit(n.ID, n.Options)
	if err != nil {
		return err
	}
	res, err := n.Service.Layout()
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, editOutput{Item: it, Layout: res})
	}

	pp := printers.PrettyPrint{Out: n.Out, Swatches: true}
	pp.NewLine()
	pp.Title("Edited")
	pp.Item(it)
	pp.NewLine()
	pp.Layout(res)
	return nil
}
