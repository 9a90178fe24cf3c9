package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/menoncello/nimata-sub006/pkg/config"
	"github.com/menoncello/nimata-sub006/pkg/errors"
	"github.com/menoncello/nimata-sub006/pkg/paths"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: MsgInitShort,
		Long:  MsgInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Root().PersistentFlags().GetBool("force")

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("cannot determine working directory: %w", err)
			}
			target := filepath.Join(cwd, paths.ProjectConfigFile)

			if _, err := os.Stat(target); err == nil && !force {
				return errors.Newf(errors.ErrAlreadyExists, "%s already exists", target).
					WithSuggestion("pass --force to overwrite it")
			}

			if err := os.WriteFile(target, []byte(config.GenerateConfigContent()), 0o644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", target)
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigCreated, target)
			return nil
		},
	}
}
