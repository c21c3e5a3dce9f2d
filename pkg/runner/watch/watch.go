// Package watch reprints the layout whenever the seed file changes.
package watch

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/logger"
	"tableflip.dev/timeline/pkg/printers"
	"tableflip.dev/timeline/pkg/store"
)

type Watch struct {
	Service  *app.Service
	SeedPath string
	JSON     bool
	Out      io.Writer
	// OnReload is called after each successful reload and print.
	OnReload func()
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not watch, no timeline loaded")
	}
	if n.SeedPath == "" {
		return errors.New("watch needs a seed file, set --items or the items config key")
	}

	events, err := store.WatchSeed(ctx, n.SeedPath)
	if err != nil {
		return err
	}
	if err := n.print(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == store.EventSeedRemoved {
				logger.L().Warn("seed removed, keeping current items", "path", ev.Path)
				continue
			}
			if err := n.Service.Reload(n.SeedPath); err != nil {
				logger.L().Warn("seed reload failed", "path", ev.Path, "error", err)
				continue
			}
			if err := n.print(); err != nil {
				return err
			}
			if n.OnReload != nil {
				n.OnReload()
			}
		}
	}
}

func (n *Watch) print() error {
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
