package cli

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/menoncello/nimata-sub006/pkg/config"
	"github.com/menoncello/nimata-sub006/pkg/errors"
	"github.com/menoncello/nimata-sub006/pkg/paths"
	"github.com/menoncello/nimata-sub006/pkg/template/discovery"
	"github.com/menoncello/nimata-sub006/pkg/ui"
	"github.com/menoncello/nimata-sub006/pkg/validate"
)

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: MsgTemplatesShort,
		Long:  MsgTemplatesLong,
	}

	cmd.AddCommand(newTemplatesListCmd())
	cmd.AddCommand(newTemplatesScanCmd())
	cmd.AddCommand(newTemplatesWatchCmd())
	cmd.AddCommand(newTemplatesValidateCmd())

	return cmd
}

func newTemplatesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(p)
			if err != nil {
				return err
			}

			metas, err := loadOrScan(cmd, p, cfg)
			if err != nil {
				return err
			}

			rawFormat, _ := cmd.Flags().GetString("format")
			format, err := ui.ParseFormat(rawFormat)
			if err != nil {
				return err
			}
			if format == ui.FormatAuto {
				format = ui.DetectFormat(os.Stdout)
			}

			if format == ui.FormatJSON {
				data, err := json.MarshalIndent(metas, "", "  ")
				if err != nil {
					return errors.Wrap(err, errors.ErrInternal, "cannot encode template index")
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			long, _ := cmd.Flags().GetBool("long")
			fmt.Fprintln(cmd.OutOrStdout(), rendererFor(format).RenderTemplateList(metas, long))
			return nil
		},
	}

	cmd.Flags().BoolP("long", "l", false, MsgFlagLong)
	cmd.Flags().String("format", "auto", MsgFlagFormat)

	return cmd
}

func newTemplatesScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: MsgScanShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(p)
			if err != nil {
				return err
			}

			start := time.Now()
			svc := newDiscovery(cfg)
			root := p.TemplatesRoot()

			full, _ := cmd.Flags().GetBool("full")
			if !full {
				cached, lastScan, err := discovery.LoadIndex(p.IndexCachePath(), p.IndexLockPath())
				if err == nil && cached.Len() > 0 {
					for _, meta := range cached.Entries() {
						svc.Index().Put(meta)
					}
					result, err := svc.Rescan(cmd.Context(), root, lastScan)
					if err != nil {
						return err
					}
					// The scan start is recorded, not the end, so files
					// modified while scanning get picked up next time.
					if err := discovery.SaveIndex(svc.Index(), start, p.IndexCachePath(), p.IndexLockPath()); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), newRenderer().RenderRescan(result))
					return nil
				}
				if err != nil {
					log.Debug().Err(err).Msg("Index cache unusable, scanning from scratch")
				}
			}

			metas, err := svc.Discover(cmd.Context(), root)
			if err != nil {
				return err
			}
			if err := discovery.SaveIndex(svc.Index(), start, p.IndexCachePath(), p.IndexLockPath()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgScanSummary,
				len(metas), root, time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().Bool("full", false, MsgFlagFullScan)

	return cmd
}

func newTemplatesWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: MsgWatchShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(p)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc := newDiscovery(cfg)
			root := p.TemplatesRoot()

			// Watch applies changes against the in-memory index, so the
			// initial state comes from a full scan.
			start := time.Now()
			if _, err := svc.Discover(ctx, root); err != nil {
				return err
			}
			persistIndex(svc, start, p)

			fmt.Fprintf(cmd.OutOrStdout(), MsgWatchStarted, root)

			err = svc.Watch(ctx, root, func(change discovery.Change) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", change.Kind, change.Path)
				persistIndex(svc, time.Now(), p)
			})
			if err != nil && !stderrors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

func newTemplatesValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <template>",
		Short: MsgValidateShort,
		Args:  cobra.ExactArgs(1),
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
			source, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrTemplateUnreadable, "cannot read template %s", path)
			}

			contextFile, _ := cmd.Flags().GetString("context-file")
			sets, _ := cmd.Flags().GetStringArray("set")
			ctx, err := loadContext(contextFile, sets)
			if err != nil {
				return err
			}

			result := validate.New(newEngine(cfg)).Validate(path, string(source), ctx)
			fmt.Fprintln(cmd.OutOrStdout(), newRenderer().RenderValidation(result))

			if !result.OK() {
				return errors.Newf(errors.ErrTemplateInvalid, "template %s failed validation", args[0])
			}
			return nil
		},
	}

	cmd.Flags().String("context-file", "", MsgFlagContextFile)
	cmd.Flags().StringArray("set", nil, MsgFlagSet)

	return cmd
}

// loadOrScan returns the cached index entries, falling back to a full scan
// when no usable cache exists yet.
func loadOrScan(cmd *cobra.Command, p paths.Paths, cfg *config.Config) ([]discovery.Metadata, error) {
	ix, _, err := discovery.LoadIndex(p.IndexCachePath(), p.IndexLockPath())
	if err == nil && ix.Len() > 0 {
		return ix.Entries(), nil
	}
	if err != nil {
		log.Debug().Err(err).Msg("Index cache unusable, scanning")
	}

	fmt.Fprintf(cmd.ErrOrStderr(), MsgIndexEmpty, p.TemplatesRoot())

	start := time.Now()
	svc := newDiscovery(cfg)
	metas, err := svc.Discover(cmd.Context(), p.TemplatesRoot())
	if err != nil {
		return nil, err
	}
	persistIndex(svc, start, p)
	return metas, nil
}

// persistIndex writes the service index to the cache. Failures are logged
// rather than returned; a stale cache only costs the next command a scan.
func persistIndex(svc *discovery.Service, lastScan time.Time, p paths.Paths) {
	if err := discovery.SaveIndex(svc.Index(), lastScan, p.IndexCachePath(), p.IndexLockPath()); err != nil {
		log.Warn().Err(err).Msg("Could not persist template index")
	}
}
