package seed

import (
	"tableflip.dev/timeline/pkg/category"
	"tableflip.dev/timeline/pkg/item"
)

// Default returns the built-in demo project plan.
func Default() []item.Item {
	return []item.Item{
		item.New(1, "2021-01-14", "2021-01-22", "Recruit translators", category.HR),
		item.New(2, "2021-01-17", "2021-01-31", "Create lesson plan 1", category.Education),
		item.New(3, "2021-02-05", "2021-02-13", "Translate phrases for lesson 1", category.Translation),
		item.New(4, "2021-02-07", "2021-03-08", "Create dark mode design", category.Design),
		item.New(5, "2021-02-14", "2021-02-22", "Recruit copyeditors", category.HR),
		item.New(6, "2021-02-18", "2021-02-24", "Proofread translations", category.Translation),
		item.New(7, "2021-02-20", "2021-02-22", "Finalize logo", category.Design),
		item.New(8, "2021-02-21", "2021-03-22", "Implement dark mode", category.Development),
		item.New(9, "2021-02-21", "2021-02-28", "Finalize lesson plan 1", category.Education),
		item.New(10, "2021-02-23", "2021-02-23", "Approve logo", category.Design),
		item.New(11, "2021-03-03", "2021-03-29", "Create lesson plan 2", category.Education),
		item.New(12, "2021-03-30", "2021-04-08", "Translate phrases for lesson 2", category.Translation),
		item.New(13, "2021-04-01", "2021-04-04", "Debug mobile notification error", category.Development),
		item.New(14, "2021-04-05", "2021-04-06", "Test debugged mobile notifications", category.QA),
		item.New(15, "2021-04-16", "2021-04-30", "Beta test", category.QA),
		item.New(16, "2021-05-01", "2021-05-01", "Launch day", category.Management),
	}
}
