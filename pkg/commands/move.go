package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/pick"
	"tableflip.dev/timeline/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	mo := &options.MoveOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Drag an item along the track and print the new layout.",
		Long: options.Wrap80(`Resolve a horizontal drag into new dates for an item. The item keeps its
duration, stays inside the window and starts on a whole day. Changes last for
this invocation only; seed files are never written.`),
		Example: `
timeline move --id 3 --dx 6
timeline move --id 3 --from 310 --to 340 --scroll -12 --width 960
timeline move --id 8 --by -1w
timeline move -i --by 2d
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if !i.Interactive {
				if err := io.Validate(); err != nil {
					return err
				}
			}
			return mo.Validate(cmd)
		},
		ValidArgsFunction: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, svc, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			if i.Interactive && io.ID == 0 {
				if io.ID, err = pick.Item(cmd, svc.Items.Snapshot()); err != nil {
					return output.HandleError(err)
				}
			}
			span, err := mo.Span()
			if err != nil {
				return output.HandleError(err)
			}
			width := mo.Width
			if width <= 0 {
				width = cfg.TrackWidth()
			}
			s := move.Move{
				Service: svc,
				ID:      io.ID,
				Drag:    mo.Drag(cmd),
				DeltaX:  mo.DX,
				Span:    span,
				Width:   width,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddMoveArgs(cmd, mo)
	options.InteractiveArgs(cmd, i)
	_ = cmd.RegisterFlagCompletionFunc("id", idCompletions)

	topLevel.AddCommand(cmd)
}

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	eo := &options.EditOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change an item's name, dates or category and print the new layout.",
		Example: `
timeline edit --id 16 --name "Launch party"
timeline edit --id 4 --start 2021-02-10 --end 2021-03-12 --category development
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if i.Interactive {
				return nil
			}
			return io.Validate()
		},
		ValidArgsFunction: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, svc, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			if i.Interactive && io.ID == 0 {
				if io.ID, err = pick.Item(cmd, svc.Items.Snapshot()); err != nil {
					return output.HandleError(err)
				}
			}
			opts, err := eo.ToApp(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			s := move.Edit{
				Service: svc,
				ID:      io.ID,
				Options: opts,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddEditArgs(cmd, eo)
	options.InteractiveArgs(cmd, i)
	_ = cmd.RegisterFlagCompletionFunc("id", idCompletions)
	_ = cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
