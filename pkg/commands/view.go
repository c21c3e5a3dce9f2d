package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/pick"
	"tableflip.dev/timeline/pkg/runner/view"
)

func addZoom(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "zoom [in|out|reset|factor]",
		Short: "Show or change the zoom factor.",
		Long: options.Wrap80(`Zoom narrows the window while keeping its left edge pinned. Factors are
clamped between 0.5 and 4; in and out step by 0.25. The value is saved in the
state directory.`),
		Example: `
timeline zoom
timeline zoom in
timeline zoom 2
timeline zoom reset
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"in", "out", "reset"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, svc, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			s := view.Zoom{
				Service: svc,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			if len(args) == 1 {
				s.Action = args[0]
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addCategories(topLevel *cobra.Command) {
	co := &options.CategoriesOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "categories [category...]",
		Aliases: []string{"category", "filter"},
		Short:   "Show or change which categories are displayed.",
		Example: `
timeline categories
timeline categories design development
timeline categories --clear
timeline categories -i
`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, svc, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			names := args
			if i.Interactive {
				picked, err := pick.Categories(cmd, svc.View.Categories())
				if err != nil {
					return output.HandleError(err)
				}
				names = make([]string, len(picked))
				for n, c := range picked {
					names[n] = string(c)
				}
				co.Clear = len(picked) == 0
			}
			s := view.Categories{
				Service: svc,
				Names:   names,
				Clear:   co.Clear,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddCategoriesArgs(cmd, co)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

func addLegend(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "legend",
		Aliases: []string{"key"},
		Short:   "Print the category colors.",
		Example: `
timeline legend
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, svc, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			s := view.Legend{
				Service: svc,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
