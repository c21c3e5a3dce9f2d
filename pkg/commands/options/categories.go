package options

import (
	"github.com/spf13/cobra"
)

// CategoriesOptions
type CategoriesOptions struct {
	Clear bool
}

func AddCategoriesArgs(cmd *cobra.Command, o *CategoriesOptions) {
	cmd.Flags().BoolVar(&o.Clear, "clear", false,
		"Show every category again.")
}
