package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/scaledown-ai/scaledown/internal/api"
	"github.com/scaledown-ai/scaledown/internal/config"
	"github.com/scaledown-ai/scaledown/internal/errors"
	"github.com/scaledown-ai/scaledown/internal/optimize"
)

type compressOptions struct {
	model   string
	file    string
	rate    float64
	rateSet bool // --rate was given explicitly, so 0 means zero
	timeout time.Duration
}

// NewCompressCmd creates the compress command.
func NewCompressCmd() *cobra.Command {
	opts := &compressOptions{}

	cmd := &cobra.Command{
		Use:   "compress [prompt]",
		Short: "Compress a prompt via the ScaleDown service",
		Long: `Sends a prompt to the hosted ScaleDown compression service, which also
reports cost and carbon savings.

When the service is unreachable or rejects the request, the prompt is
optimized locally with the model's prompting guide instead, and the output
says so. Requires SCALEDOWN_API_KEY (or api.key in the config) for the
remote path.`,
		Example: `  scaledown compress --model gpt-4o "Could you please summarize this article?"
  scaledown compress --model claude-3-opus --rate 0.8 --file prompt.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.rateSet = cmd.Flags().Changed("rate")
			return runCompress(cmd.Context(), opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "Target model (default from config)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the prompt from a file")
	cmd.Flags().Float64Var(&opts.rate, "rate", 0, "Compression rate 0-1 (default from config)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 60*time.Second, "Remote request timeout")

	return cmd
}

func runCompress(ctx context.Context, opts *compressOptions, args []string) error {
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

	rate := effectiveRate(opts.rateSet, opts.rate, cfg.API.Rate)

	resp, err := compressRemote(ctx, cfg, prompt, model, rate, opts.timeout)
	if err == nil {
		displayCompressResponse(resp)
		return nil
	}

	// Fallback of last resort: the local guide-based optimizer.
	printWarning("Remote compression failed: %v", err)
	fmt.Println(dim("Falling back to local optimization."))

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	result := optimize.New(catalog).Optimize(model, prompt)
	displayResult(result, model, false)
	return nil
}

// effectiveRate picks the compression rate: an explicit --rate wins, even an
// explicit zero; otherwise the config rate applies.
func effectiveRate(flagSet bool, flagRate, configRate float64) float64 {
	if flagSet {
		return flagRate
	}
	return configRate
}

func compressRemote(ctx context.Context, cfg *config.Config, prompt, model string, rate float64, timeout time.Duration) (*api.CompressResponse, error) {
	var clientOpts []api.ClientOption
	if cfg.API.Key != "" {
		clientOpts = append(clientOpts, api.WithAPIKey(cfg.API.Key))
	}
	if cfg.API.BaseURL != "" {
		clientOpts = append(clientOpts, api.WithBaseURL(cfg.API.BaseURL))
	}

	client, err := api.NewClient(clientOpts...)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return client.Compress(ctx, prompt, model, rate)
}

func displayCompressResponse(resp *api.CompressResponse) {
	fmt.Println()
	printSuccess("Compressed via the ScaleDown service")
	printInfo("Model", resp.Model)
	printInfo("Before", fmt.Sprintf("%d tokens", resp.Usage.OriginalTokens))
	printInfo("After", fmt.Sprintf("%d tokens", resp.Usage.CompressedTokens))
	printInfo("Saved", fmt.Sprintf("%d tokens", resp.Usage.SavedTokens))
	if resp.CostSavedUSD > 0 {
		printInfo("Cost saved", fmt.Sprintf("$%.4f", resp.CostSavedUSD))
	}
	if resp.CarbonSavedGrams > 0 {
		printInfo("Carbon saved", fmt.Sprintf("%.2fg CO2", resp.CarbonSavedGrams))
	}
	fmt.Println()
	fmt.Println(resp.CompressedPrompt)
}
