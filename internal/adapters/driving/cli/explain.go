package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
	"github.com/custodia-labs/eli5-cli/internal/presentation"
	"github.com/custodia-labs/eli5-cli/internal/render"
)

var (
	explainJSON        bool
	explainHistory     bool
	explainAnalogy     bool
	explainPlain       bool
	explainTargetGrade float64
	explainMaxAttempts int
)

var explainCmd = &cobra.Command{
	Use:   "explain [topic]",
	Short: "Explain a topic in simple words",
	Long: `Fetches reference text for the topic, simplifies it until it reads at
a young child's level, and prints the explanation with key-word
definitions and a factual example.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().BoolVar(&explainJSON, "json", false, "output the full result as JSON")
	explainCmd.Flags().BoolVar(&explainHistory, "history", false, "show the attempt-by-attempt history")
	explainCmd.Flags().BoolVar(&explainAnalogy, "analogy", false, "also generate an analogy")
	explainCmd.Flags().BoolVar(&explainPlain, "plain", false, "plain markdown output, no terminal styling")
	explainCmd.Flags().Float64Var(&explainTargetGrade, "target-grade", 0, "override the target reading grade")
	explainCmd.Flags().IntVar(&explainMaxAttempts, "max-attempts", 0, "override the rewrite cap")
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	if explainService == nil {
		return errors.New("explain service not configured")
	}

	topic := strings.TrimSpace(strings.Join(args, " "))

	result, err := explainService.Explain(cmd.Context(), topic, domain.ExplainOptions{
		WithAnalogy: explainAnalogy,
		TargetGrade: explainTargetGrade,
		MaxAttempts: explainMaxAttempts,
	})
	if err != nil {
		return explainError(topic, err)
	}

	if explainJSON {
		return outputExplainJSON(cmd, result)
	}

	r := render.New(explainPlain)
	cmd.Print(r.Markdown(presentation.Explanation(result)))
	if explainHistory {
		cmd.Print(r.Markdown(presentation.History(result.Attempts)))
	}
	if result.Degraded() {
		cmd.Print(r.Warnings(presentation.Warnings(result.Warnings)))
	}

	return nil
}

func outputExplainJSON(cmd *cobra.Command, result *domain.ExplanationResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// explainError turns pipeline failures into actionable messages.
func explainError(topic string, err error) error {
	var notFound *domain.TopicNotFoundError
	if errors.As(err, &notFound) {
		return fmt.Errorf("%s\nTry a different spelling or a broader topic", notFound.Error())
	}
	if errors.Is(err, domain.ErrFetchTimeout) {
		return fmt.Errorf("fetching %q timed out; check your connection and try again", topic)
	}
	if errors.Is(err, context.Canceled) {
		return errors.New("cancelled")
	}
	return err
}
