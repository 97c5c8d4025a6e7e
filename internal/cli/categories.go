package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reportdiff/internal/config"
	"reportdiff/internal/redact"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Inspect redaction categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active redaction categories in match-priority order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
		if err != nil {
			return err
		}

		cats := redact.Builtin()
		source := "builtin"
		if cfg.CategoriesFile != "" {
			cats, err = redact.LoadCategories(cfg.CategoriesFile)
			if err != nil {
				return fmt.Errorf("loading categories: %w", err)
			}
			source = cfg.CategoriesFile
		}

		fmt.Fprintf(os.Stdout, "Categories (%s):\n", source)
		for i, c := range cats {
			fmt.Fprintf(os.Stdout, "  %2d. %s\n", i+1, c.Name)
		}
		return nil
	},
}

func init() {
	categoriesCmd.AddCommand(categoriesListCmd)
}
