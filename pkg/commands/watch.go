package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reprint the layout each time the seed file changes.",
		Example: `
timeline watch -f plan.yaml
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, svc, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			s := watch.Watch{
				Service:  svc,
				SeedPath: items.Resolve(cfg.SeedPath()),
				JSON:     output.JSON,
				Out:      cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
