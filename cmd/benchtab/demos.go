package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"benchtab/internal/dataset"
	"benchtab/internal/view"
	"benchtab/pkg/ux"
)

var demosCmd = &cobra.Command{
	Use:   "demos",
	Short: "List the bundled demo data sets",
	RunE:  runDemos,
}

func runDemos(cmd *cobra.Command, args []string) error {
	fmt.Println(ux.Styles.Title.Render("📊 Bundled demo data sets"))
	fmt.Println()

	if err := view.DrawRegistry(os.Stdout, dataset.BuiltinDemos()); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(ux.Styles.Muted.Render(`Run "benchtab --demo <key>" to render one of them.`))

	return nil
}
