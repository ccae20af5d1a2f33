package cli

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scaledown-ai/scaledown/internal/config"
	"github.com/scaledown-ai/scaledown/internal/errors"
	"github.com/scaledown-ai/scaledown/internal/guide"
	"github.com/scaledown-ai/scaledown/internal/optimize"
)

type optimizeOptions struct {
	model   string
	file    string
	jsonOut bool
	verbose bool
}

// NewOptimizeCmd creates the optimize command.
func NewOptimizeCmd() *cobra.Command {
	opts := &optimizeOptions{}

	cmd := &cobra.Command{
		Use:   "optimize [prompt]",
		Short: "Rewrite a prompt using the target model's prompting guide",
		Long: `Rewrites a prompt using the prompting guide that matches the target model.

The model name resolves to a guide in three tiers: provider key (llama,
claude, gpt, openai), exact model alias (e.g. claude-3-opus), then the first
registered alias that prefixes the name. Models with no guide pass through
unchanged - that is not an error.

The prompt comes from the argument, --file, or stdin. Token counts are a
whitespace word-count proxy, not a real tokenizer.`,
		Example: `  scaledown optimize --model gpt-4o "Could you please summarize this article?"
  scaledown optimize --model llama-3-70b --file prompt.txt
  cat prompt.txt | scaledown optimize --model claude-3-opus --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "Target model (default from config)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the prompt from a file")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Emit the result as JSON")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show each applied transformation")

	return cmd
}

func runOptimize(opts *optimizeOptions, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	model := opts.model
	if model == "" {
		model = cfg.DefaultModel
	}
	if model == "" {
		return errors.NoModelSelected()
	}

	prompt, err := readPrompt(opts.file, args)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	optimizer := optimize.New(catalog)
	result := optimizer.Optimize(model, prompt)

	if opts.jsonOut {
		return writeResultJSON(os.Stdout, result)
	}

	displayResult(result, model, opts.verbose)
	return nil
}

// readPrompt takes the prompt from the positional arg, a file, or stdin, in
// that order of preference.
func readPrompt(file string, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if file != "" {
		content, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read prompt file: %w", err)
		}
		return string(content), nil
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt from stdin: %w", err)
	}
	return string(content), nil
}

// loadCatalog builds the guide catalog, surfacing partial guide-file
// failures as warnings rather than aborting.
func loadCatalog(cfg *config.Config) (*guide.Catalog, error) {
	catalog, err := guide.Build(cfg.GuidesDir)
	if err != nil {
		var parseErrs *guide.ParseErrors
		if stderrors.As(err, &parseErrs) {
			for _, pe := range parseErrs.Errors {
				printWarning("skipping guide: %v", pe)
			}
			return catalog, nil
		}
		return nil, err
	}
	return catalog, nil
}

// resultJSON flattens token accounting the way API consumers expect.
type resultJSON struct {
	*optimize.Result
	SavedTokens     int     `json:"saved_tokens"`
	SavedPercentage float64 `json:"saved_percentage"`
}

func writeResultJSON(w io.Writer, result *optimize.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resultJSON{
		Result:          result,
		SavedTokens:     result.Stats.Saved(),
		SavedPercentage: result.Stats.SavedPercentage(),
	})
}

func displayResult(result *optimize.Result, model string, verbose bool) {
	fmt.Println()

	if result.GuideName == "" {
		printWarning("No prompting guide for %s; prompt returned unchanged", model)
		fmt.Println()
		fmt.Println(result.Optimized)
		return
	}

	printInfo("Guide", fmt.Sprintf("%s (%s)", result.GuideName, dim(result.GuideSource)))
	printInfo("Before", fmt.Sprintf("%d tokens", result.Stats.Before))
	printInfo("After", fmt.Sprintf("%d tokens", result.Stats.After))
	printInfo("Saved", fmt.Sprintf("%d tokens (%.0f%%)", result.Stats.Saved(), result.Stats.SavedPercentage()))

	if verbose && len(result.Transformations) > 0 {
		fmt.Println()
		fmt.Printf("  %s:\n", dim("Transformations"))
		for i, tr := range result.Transformations {
			fmt.Printf("    %d. %s\n", i+1, info(tr.Pattern))
		}
	}

	fmt.Println()
	fmt.Println(result.Optimized)

	if result.Tip != nil {
		fmt.Println()
		fmt.Printf("%s %s\n", info("Tip:"), result.Tip.Title)
		fmt.Printf("  %s\n", result.Tip.Description)
		if result.Tip.Example.Before != "" {
			fmt.Printf("  %s %s\n", dim("Before:"), firstLine(result.Tip.Example.Before))
			fmt.Printf("  %s  %s\n", dim("After:"), firstLine(result.Tip.Example.After))
		}
	}
}

// firstLine truncates multi-line example text for compact display.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
