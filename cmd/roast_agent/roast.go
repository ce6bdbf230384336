package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/presidential-roast/internal/config"
	"github.com/jonathan/presidential-roast/internal/extraction"
	"github.com/jonathan/presidential-roast/internal/fetch"
	"github.com/jonathan/presidential-roast/internal/ledger"
	"github.com/jonathan/presidential-roast/internal/llm"
	"github.com/jonathan/presidential-roast/internal/observability"
	"github.com/jonathan/presidential-roast/internal/pipeline"
	"github.com/jonathan/presidential-roast/internal/types"
)

var roastCmd = &cobra.Command{
	Use:   "roast",
	Short: "Roast a submission from the command line",
	Long: `Run one submission through the full pipeline: extraction -> generation -> scoring -> formatting.

Without an API key the roast uses the local template generator. With --wallet, a simulated token reward is granted for the resulting score.`,
	RunE: runRoastCmd,
}

var (
	roastConfigPath  string
	roastType        string
	roastContent     string
	roastContentFile string
	roastContentURL  string
	roastWallet      string
	roastAPIKey      string
	roastVerbose     bool
)

func init() {
	roastCmd.Flags().StringVar(&roastConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	roastCmd.Flags().StringVarP(&roastType, "type", "t", "idea", "Submission type: idea, resume, or twitter")
	roastCmd.Flags().StringVarP(&roastContent, "content", "c", "", "Submission text (mutually exclusive with --content-file and --content-url)")
	roastCmd.Flags().StringVar(&roastContentFile, "content-file", "", "Path to a file holding the submission text")
	roastCmd.Flags().StringVar(&roastContentURL, "content-url", "", "URL to fetch the submission text from")
	roastCmd.Flags().StringVarP(&roastWallet, "wallet", "w", "", "Wallet address to grant the reward to (optional)")
	roastCmd.Flags().BoolVarP(&roastVerbose, "verbose", "v", false, "Print extracted signals and reward details")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	roastCmd.Flags().StringVar(&roastAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(roastCmd)
}

func runRoastCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if roastConfigPath != "" {
		loadedCfg, err := config.LoadConfig(roastConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = roastAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = roastVerbose
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	content, err := resolveContent(ctx)
	if err != nil {
		return err
	}

	sub := types.Submission{
		Category: types.Category(roastType),
		RawText:  content,
	}

	var client llm.Client
	if cfg.APIKey != "" {
		llmCfg := llm.DefaultConfig()
		if cfg.Model != "" {
			llmCfg.Model = cfg.Model
		}
		client, err = llm.NewClient(ctx, llmCfg, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	}

	p, err := pipeline.New(pipeline.Options{Client: client})
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintSignalBundle(extraction.Extract(sub.Category, sub.RawText))
	}

	result, err := p.Run(ctx, sub)
	if err != nil {
		return err
	}
	printer.PrintRoastResult(&result)

	if roastWallet != "" {
		rewards := ledger.NewService(ledger.LoadConfig())
		receipt := rewards.GrantReward(ctx, roastWallet, result.Text, result.RewardTokens)
		printer.PrintRewardReceipt(&receipt)
	}

	return nil
}

// resolveContent picks the submission text from exactly one of the three
// content flags.
func resolveContent(ctx context.Context) (string, error) {
	set := 0
	for _, v := range []string{roastContent, roastContentFile, roastContentURL} {
		if v != "" {
			set++
		}
	}
	if set == 0 {
		return "", fmt.Errorf("one of --content, --content-file, or --content-url is required")
	}
	if set > 1 {
		return "", fmt.Errorf("--content, --content-file, and --content-url are mutually exclusive; provide only one")
	}

	switch {
	case roastContent != "":
		return roastContent, nil
	case roastContentFile != "":
		data, err := os.ReadFile(roastContentFile)
		if err != nil {
			return "", fmt.Errorf("failed to read content file: %w", err)
		}
		return string(data), nil
	default:
		text, err := fetch.SubmissionText(ctx, roastContentURL, nil)
		if err != nil {
			return "", fmt.Errorf("failed to fetch content: %w", err)
		}
		return text, nil
	}
}
