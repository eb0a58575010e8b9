package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/jorfcheck/internal/pipeline"
)

var (
	surname     string
	givenName   string
	year        int
	jsonOutput  bool
	timeout     time.Duration
	userAgent   string
	insecureTLS bool
	httpProxy   string
	httpsProxy  string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Look for a person in the naturalisation decrees of a year",
	Long: `Verify lists the naturalisation decrees published in the Journal Officiel for
the given year and searches each one for a line naming the person:
- Read the PDF text layer, or OCR the rendered pages when it is empty
- Fuzzy-match the surname and the given name on every line
- Stop at the first matching line and print it with the document link

Exit status is 0 whether or not the person is found, 2 on invalid input.

Example:
  jorfcheck verify --surname Dupont --given-name Jean --year 2023
  jorfcheck verify --surname Dupont --given-name Jean --year 2023 --json
  jorfcheck verify --surname Dupont --given-name Jean --year 2021 --ocr-engine openai`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	// Input flags
	verifyCmd.Flags().StringVar(&surname, "surname", "", "family name (e.g. Dupont)")
	verifyCmd.Flags().StringVar(&givenName, "given-name", "", "given name (e.g. Jean)")
	verifyCmd.Flags().IntVar(&year, "year", 2025, "publication year")

	// Output flags
	verifyCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the full verification as JSON")

	// HTTP flags
	verifyCmd.Flags().DurationVar(&timeout, "timeout", 0, "overall verification timeout (0 waits indefinitely)")
	verifyCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent")
	verifyCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")
	verifyCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	verifyCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	_ = viper.BindPFlag("http.user_agent", verifyCmd.Flags().Lookup("ua"))
	_ = viper.BindPFlag("http.insecure_tls", verifyCmd.Flags().Lookup("insecure"))
	_ = viper.BindPFlag("http.http_proxy", verifyCmd.Flags().Lookup("http-proxy"))
	_ = viper.BindPFlag("http.https_proxy", verifyCmd.Flags().Lookup("https-proxy"))
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	req, err := pipeline.Request{Surname: surname, GivenName: givenName, Year: year}.Clean(cfg.Gazette)
	if errors.Is(err, pipeline.ErrMissingNames) {
		return &ExitError{Code: 2, Err: errors.New(pipeline.MsgMissingNames)}
	}
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	verifier, err := pipeline.NewVerifierFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if !jsonOutput {
		fmt.Fprintln(cmd.ErrOrStderr(), pipeline.MsgSearching)
	}

	v := verifier.Verify(ctx, req.Surname, req.GivenName, req.Year)
	logger.Debug("verification finished", "outcome", v.Outcome, "candidates", len(v.Candidates), "duration", v.Duration)

	renderer := pipeline.NewRenderer(cmd.OutOrStdout(), verbose)
	if jsonOutput {
		return renderer.RenderJSON(v)
	}
	return renderer.RenderSummary(v)
}
