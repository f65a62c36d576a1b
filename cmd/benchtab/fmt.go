package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"benchtab/internal/formatter"
)

var (
	flagWrite bool

	fmtCmd = &cobra.Command{
		Use:   "fmt <path>",
		Short: "Align markdown tables in a file or directory",
		Long: `fmt scans a markdown file, or every .md file under a directory, and pads
table columns to a common width. Without --write it only reports which
files would change.`,
		Args: cobra.ExactArgs(1),
		RunE: runFmt,
	}
)

func init() {
	fmtCmd.Flags().BoolVar(&flagWrite, "write", false, "write changes back to the files")
}

func runFmt(cmd *cobra.Command, args []string) error {
	scanned, changed := 0, 0

	err := filepath.Walk(args[0], func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != args[0] {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.ToLower(filepath.Ext(path)) != ".md" {
			return nil
		}

		scanned++

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		formatted := formatter.FormatMarkdown(string(content))
		if formatted == string(content) {
			return nil
		}

		changed++

		if !flagWrite {
			fmt.Printf("📝 Would format: %s\n", path)

			return nil
		}

		if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("✅ Formatted: %s\n", path)

		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("📈 Scanned %d markdown files, %d with table changes\n", scanned, changed)

	if changed > 0 && !flagWrite {
		fmt.Println("💡 Run again with --write to apply them.")
	}

	return nil
}
