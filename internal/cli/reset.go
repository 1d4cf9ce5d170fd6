package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved resume",
	RunE:  runReset,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	adapter, closeStore, err := openSaved(cmd.Context(), cfg, log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeStore()

	if !adapter.Clear(cmd.Context()) {
		return errors.New("failed to clear saved data")
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Saved resume cleared")
	return nil
}
