package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"benchtab/internal/dataset"
	"benchtab/internal/view"
	"benchtab/pkg/ux"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a data set file and show per-test statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ds, err := dataset.LoadFile(args[0])
	if err != nil {
		return err
	}

	log.Debug("data set checked", "path", args[0], "dataset", ds)

	fmt.Println(ux.Styles.Success.Render(fmt.Sprintf("✅ %s is a valid data set", args[0])))
	fmt.Println()
	fmt.Println(ux.Styles.Title.Render(ds.Title))
	fmt.Println(ux.Styles.Muted.Render(fmt.Sprintf("Type: %s · Machines: %d · Tests: %d",
		ds.Comparison, len(ds.Machines()), len(ds.Tests()))))
	fmt.Println()

	view.Preview(os.Stdout, ds, cfg.Report.Precision)

	summaries, err := view.Summarize(ds)
	if err != nil {
		return err
	}

	if len(summaries) > 0 {
		fmt.Println()
		fmt.Println(ux.Styles.Title.Render("📈 Per-test statistics"))
		fmt.Println()
		view.DrawSummary(os.Stdout, summaries, cfg.Report.Precision)
	}

	return nil
}
