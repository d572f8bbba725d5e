package grade

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/parkdui/LG-Thingo/internal/models"
	"github.com/parkdui/LG-Thingo/internal/verdict"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "grade",
	Title: "Verdict operations",
}

// Transcript grades a transcript JSON file the same way the result page does.
// Pass "-" to read from stdin.
var Transcript = &cobra.Command{
	Use:     "transcript [file]",
	GroupID: "grade",
	Short:   "Grade a transcript",
	Long: `Grades a chat transcript into an adoption verdict.

The file holds a JSON array of turns: [{"role":"user","content":"..."}, ...].`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			encoded []byte
			err     error
		)
		if args[0] == "-" {
			encoded, err = io.ReadAll(os.Stdin)
		} else {
			encoded, err = os.ReadFile(args[0])
		}
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "read transcript: %v\n", err)
			os.Exit(1)
		}

		var transcript models.Transcript
		if err = json.Unmarshal(encoded, &transcript); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "parse transcript: %v\n", err)
			os.Exit(1)
		}

		outcome := verdict.Classify(transcript)
		fmt.Println(outcome.Message)
	},
}
