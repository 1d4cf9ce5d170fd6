package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"resume-builder/internal/usecase"
)

//nolint:gochecknoglobals // Cobra boilerplate
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print the completion score of the saved resume",
	RunE:  runScore,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	ctx := cmd.Context()
	adapter, closeStore, err := openSaved(ctx, cfg, log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeStore()

	s := usecase.Summarize(loadSaved(ctx, adapter, log))
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Completion: %d%%\n", s.Completion)
	fmt.Fprintf(out, "Experience: %d\n", s.Work)
	fmt.Fprintf(out, "Education:  %d\n", s.Education)
	fmt.Fprintf(out, "Skills:     %d\n", s.Skills)
	return nil
}
