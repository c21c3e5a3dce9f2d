package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/logger"
	"tableflip.dev/timeline/pkg/store"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
	items  = &options.ItemsOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: base.Wrap80("Lay out date-ranged items into compact lanes on the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if output.Debug {
				logger.Setup(logger.Config{Debug: true, JSON: output.JSON, Writer: cmd.ErrOrStderr()})
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArgs(cmd, output)
	options.AddItemsArgs(cmd, items)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLayout(topLevel)
	addLanes(topLevel)
	addWindow(topLevel)
	addMove(topLevel)
	addEdit(topLevel)
	addZoom(topLevel)
	addCategories(topLevel)
	addLegend(topLevel)
	addWatch(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// load reads config, opens the persisted view state and loads the seed.
func load() (store.Config, *app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Debug() && !output.Debug {
		output.Debug = true
		logger.Setup(logger.Config{Debug: true, JSON: output.JSON})
	}
	view, err := store.LoadViewState(cfg)
	if err != nil {
		return nil, nil, err
	}
	svc, err := app.New(items.Resolve(cfg.SeedPath()), view)
	if err != nil {
		return nil, nil, err
	}
	return cfg, svc, nil
}
