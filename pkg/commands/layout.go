package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/runner/show"
)

func addLayout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the visible items packed into lanes.",
		Example: `
timeline layout
timeline layout -f plan.yaml --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, svc, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			s := show.Layout{
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

func addLanes(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "lanes",
		Short: "Assign lanes over every item, ignoring zoom and category filter.",
		Example: `
timeline lanes
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, svc, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			s := show.Lanes{
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

func addWindow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the date window shown at the current zoom.",
		Example: `
timeline window
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, svc, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			s := show.Window{
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
