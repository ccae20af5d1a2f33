package cli

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spf13/cobra"

	"github.com/scaledown-ai/scaledown/internal/config"
)

// NewModelsCmd creates the models command.
func NewModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List known model names and the guides they map to",
		Long: `Lists the model-alias table in registration order. Unlisted models can
still resolve: any name starting with a listed alias picks up that alias's
guide (first registered alias wins).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModels()
		},
	}
}

func runModels() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	title := cases.Title(language.English)

	fmt.Println()
	current := ""
	for _, alias := range catalog.Aliases() {
		if alias.GuideKey != current {
			if current != "" {
				fmt.Println()
			}
			current = alias.GuideKey
			fmt.Printf("  %s\n", info(title.String(alias.GuideKey)))
		}
		fmt.Printf("    %s\n", alias.Model)
	}
	return nil
}
