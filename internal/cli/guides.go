package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scaledown-ai/scaledown/internal/config"
	"github.com/scaledown-ai/scaledown/internal/guide"
)

// NewGuidesCmd creates the guides command group.
func NewGuidesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guides",
		Short: "List and inspect prompting guides",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuidesList()
		},
	}

	cmd.AddCommand(newGuidesInfoCmd())
	cmd.AddCommand(newGuidesTipsCmd())

	return cmd
}

func runGuidesList() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	seen := make(map[*guide.Guide]bool)
	for _, key := range catalog.Keys() {
		g := catalog.Get(key)
		if seen[g] {
			// Alias keys like "openai" share a guide instance.
			fmt.Printf("  %s %s\n", info(key), dim(fmt.Sprintf("(alias of %s)", g.Name)))
			continue
		}
		seen[g] = true
		fmt.Printf("  %s %s %s\n", info(key), g.Name, dim(fmt.Sprintf("(%s, %d tips, %d rules)", g.Source, len(g.Tips), len(g.Rules))))
	}
	fmt.Println()
	fmt.Println(dim("Use `scaledown guides info <model>` for details."))
	return nil
}

func newGuidesInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <model>",
		Short: "Show the guide a model resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuidesInfo(args[0])
		},
	}
}

func runGuidesInfo(model string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	g := catalog.Resolve(model)
	if g == nil {
		printWarning("No prompting guide for %s", model)
		return nil
	}

	gi := g.Info()
	fmt.Println()
	printInfo("Guide", gi.Name)
	printInfo("Source", gi.Source)
	printInfo("URL", gi.URL)
	printInfo("Tips", fmt.Sprintf("%d", gi.TipCount))
	printInfo("Rules", fmt.Sprintf("%d", len(g.Rules)))
	return nil
}

func newGuidesTipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tips <model>",
		Short: "Show all prompting tips for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuidesTips(args[0])
		},
	}
}

func runGuidesTips(model string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	g := catalog.Resolve(model)
	if g == nil {
		printWarning("No prompting guide for %s", model)
		return nil
	}

	fmt.Println()
	fmt.Printf("%s %s\n", info(g.Name), dim(fmt.Sprintf("(%s)", g.Source)))
	for i, tip := range g.Tips {
		fmt.Println()
		fmt.Printf("  %d. %s\n", i+1, success(tip.Title))
		fmt.Printf("     %s\n", tip.Description)
		if tip.Example.Before != "" {
			fmt.Printf("     %s %s\n", dim("Before:"), firstLine(tip.Example.Before))
			fmt.Printf("     %s  %s\n", dim("After:"), firstLine(tip.Example.After))
		}
	}
	return nil
}
