package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/eli5-cli/internal/core/domain"
	"github.com/custodia-labs/eli5-cli/internal/presentation"
	"github.com/custodia-labs/eli5-cli/internal/render"
)

var (
	replAnalogy bool
	replHistory bool
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive explain loop",
	Long: `Reads topics from stdin one line at a time and explains each. A failed
topic reports its error and the loop continues.

Type 'exit' or 'quit' (or press Ctrl-D) to leave.`,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().BoolVar(&replAnalogy, "analogy", false, "also generate an analogy per topic")
	replCmd.Flags().BoolVar(&replHistory, "history", false, "show the attempt history per topic")
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	if explainService == nil {
		return errors.New("explain service not configured")
	}

	r := render.New(false)
	reader := bufio.NewReader(os.Stdin)

	cmd.Println("eli5 interactive mode. Type a topic, or 'exit' to leave.")

	for {
		cmd.Print("topic> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF or a closed stdin both end the session cleanly.
			cmd.Println()
			return nil
		}

		topic := strings.TrimSpace(line)
		switch {
		case topic == "":
			continue
		case topic == "exit" || topic == "quit":
			return nil
		}

		if err := cmd.Context().Err(); err != nil {
			return err
		}

		result, err := explainService.Explain(cmd.Context(), topic, domain.ExplainOptions{
			WithAnalogy: replAnalogy,
		})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", explainError(topic, err))
			continue
		}

		if replHistory {
			cmd.Print(r.Markdown(presentation.History(result.Attempts)))
		}
		cmd.Print(r.Markdown(presentation.Explanation(result)))
		if result.Degraded() {
			cmd.Print(r.Warnings(presentation.Warnings(result.Warnings)))
		}
	}
}
