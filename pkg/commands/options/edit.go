package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/category"
	"tableflip.dev/timeline/pkg/item"
)

// EditOptions holds the field flags of the edit command. Only flags that
// were set on the command line change the item.
type EditOptions struct {
	Name     string
	Start    string
	End      string
	Category string
}

func AddEditArgs(cmd *cobra.Command, o *EditOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"New item name.")
	cmd.Flags().StringVar(&o.Start, "start", "",
		`New start date, example: --start="2021-02-06".`)
	cmd.Flags().StringVar(&o.End, "end", "",
		`New end date, example: --end="2021-02-14".`)
	cmd.Flags().StringVar(&o.Category, "category", "",
		"New category.")
}

// ToApp converts the flags that were set into an app.EditOptions.
func (o *EditOptions) ToApp(cmd *cobra.Command) (app.EditOptions, error) {
	out := app.EditOptions{}
	f := cmd.Flags()
	if f.Changed("name") {
		name := o.Name
		out.Name = &name
	}
	if f.Changed("start") {
		d, err := item.ParseDate(o.Start)
		if err != nil {
			return out, fmt.Errorf("--start: %w", err)
		}
		out.Start = &d
	}
	if f.Changed("end") {
		d, err := item.ParseDate(o.End)
		if err != nil {
			return out, fmt.Errorf("--end: %w", err)
		}
		out.End = &d
	}
	if f.Changed("category") {
		c, err := category.Parse(o.Category)
		if err != nil {
			return out, err
		}
		out.Category = &c
	}
	return out, nil
}
