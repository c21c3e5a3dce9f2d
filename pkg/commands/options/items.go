package options

import (
	"github.com/spf13/cobra"
)

// ItemsOptions
type ItemsOptions struct {
	Path string
}

func AddItemsArgs(cmd *cobra.Command, o *ItemsOptions) {
	cmd.PersistentFlags().StringVarP(&o.Path, "items", "f", "",
		Wrap80("Seed file with timeline items (.yaml, .json or .csv). Defaults to the items config key, then the built-in demo plan."))
}

// Resolve prefers the flag over the configured path.
func (o *ItemsOptions) Resolve(configured string) string {
	if o.Path != "" {
		return o.Path
	}
	return configured
}
