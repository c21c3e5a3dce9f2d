package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(_ context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("TIMELINE_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "TIMELINE_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "TIMELINE_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	file := n.Config.File()
	if file == "" {
		file = "none"
	}
	seedPath := n.Config.SeedPath()
	if seedPath == "" {
		seedPath = "built-in"
	}
	_, _ = fmt.Fprintln(out, "Config.file: ", file)
	_, _ = fmt.Fprintln(out, "Config.items:", seedPath)
	_, _ = fmt.Fprintln(out, "Config.state:", n.Config.StatePath())
	_, _ = fmt.Fprintln(out, "Config.width:", n.Config.TrackWidth())

	if n.Service == nil {
		return fmt.Errorf("failed to load timeline items")
	}

	_, _ = fmt.Fprintf(out, "Items: %d\n", n.Service.Items.Len())
	if n.Service.View != nil {
		v := n.Service.View.View()
		_, _ = fmt.Fprintf(out, "Zoom: %gx\n", v.Zoom)
		if len(v.Categories) == 0 {
			_, _ = fmt.Fprintln(out, "Categories: all")
		} else {
			_, _ = fmt.Fprintf(out, "Categories: %v\n", v.Categories)
		}
	}

	return nil
}
