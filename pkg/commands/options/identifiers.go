package options

import (
	"errors"

	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ID int
}

func AddIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().IntVar(&o.ID, "id", 0,
		"Specify the id of an item.")
}

func (o *IDOptions) Validate() error {
	if o.ID <= 0 {
		return errors.New("--id is required and must be positive")
	}
	return nil
}
