package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/menoncello/nimata-sub006/pkg/errors"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render <template>",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(p)
			if err != nil {
				return err
			}

			path, err := resolveTemplate(args[0], p.TemplatesRoot())
			if err != nil {
				return err
			}

			contextFile, _ := cmd.Flags().GetString("context-file")
			sets, _ := cmd.Flags().GetStringArray("set")
			ctx, err := loadContext(contextFile, sets)
			if err != nil {
				return err
			}

			log.Debug().Str("template", path).Int("values", len(ctx)).Msg("Rendering template")

			rendered, err := newEngine(cfg).RenderFile(path, ctx)
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")
			if output != "" {
				if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
					return errors.Wrapf(err, errors.ErrFileWrite, "cannot write output %s", output)
				}
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", MsgFlagOutput)
	cmd.Flags().String("context-file", "", MsgFlagContextFile)
	cmd.Flags().StringArray("set", nil, MsgFlagSet)

	return cmd
}

// resolveTemplate locates a template file: the path as given first, then
// relative to the templates root.
func resolveTemplate(name, templatesRoot string) (string, error) {
	candidates := []string{name, filepath.Join(templatesRoot, name)}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", errors.Newf(errors.ErrTemplateNotFound, "template %s not found", name).
		WithDetail("searched", candidates).
		WithSuggestion("run 'nimata templates list' to see indexed templates")
}
