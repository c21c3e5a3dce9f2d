package options

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/layout"
	"tableflip.dev/timeline/pkg/timeutil"
)

// MoveOptions holds the drag flags of the move command.
type MoveOptions struct {
	DX     float64
	From   float64
	To     float64
	Scroll float64
	By     string
	Width  float64
}

func AddMoveArgs(cmd *cobra.Command, o *MoveOptions) {
	cmd.Flags().Float64Var(&o.DX, "dx", 0,
		"Horizontal drag distance in pixels.")
	cmd.Flags().Float64Var(&o.From, "from", 0,
		"Pointer x position where the drag started.")
	cmd.Flags().Float64Var(&o.To, "to", 0,
		"Pointer x position where the drag ended.")
	cmd.Flags().Float64Var(&o.Scroll, "scroll", 0,
		"Horizontal scroll of the track during the drag, in pixels.")
	cmd.Flags().StringVar(&o.By, "by", "",
		Wrap80(`Shift by a span of days or weeks instead of pixels, example: --by=3d, --by=-1w.`))
	cmd.Flags().Float64Var(&o.Width, "width", 0,
		"Rendered track width in pixels. Defaults to the width config key.")
}

// Drag returns the gesture described by --from/--to/--scroll, or nil when
// neither --from nor --to was given.
func (o *MoveOptions) Drag(cmd *cobra.Command) *layout.Drag {
	if !cmd.Flags().Changed("from") && !cmd.Flags().Changed("to") {
		return nil
	}
	return &layout.Drag{StartX: o.From, CurrentX: o.To, ScrollDelta: o.Scroll}
}

// Span parses --by.
func (o *MoveOptions) Span() (time.Duration, error) {
	if o.By == "" {
		return 0, nil
	}
	d, _, err := timeutil.ParseSpan(o.By)
	return d, err
}

func (o *MoveOptions) Validate(cmd *cobra.Command) error {
	f := cmd.Flags()
	if !f.Changed("dx") && !f.Changed("from") && !f.Changed("to") && !f.Changed("by") {
		return errors.New("set --dx, --from/--to or --by")
	}
	if f.Changed("dx") && (f.Changed("from") || f.Changed("to")) {
		return errors.New("--dx can not be combined with --from/--to")
	}
	return nil
}
