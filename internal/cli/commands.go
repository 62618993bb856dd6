package cli

import (
	"fmt"

	"github.com/arthur-debert/mineflake/internal/version"
	"github.com/arthur-debert/mineflake/pkg/core"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newApplyCmd() *cobra.Command {
	var (
		configPath string
		run        bool
		watch      bool
	)

	cmd := &cobra.Command{
		Use:     "apply [directory]",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			dir := directoryArg(args)

			log.Info().
				Str("directory", dir).
				Str("config", configPath).
				Bool("dry_run", dryRun).
				Msg("Applying configuration")

			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			result, err := core.Apply(core.ApplyOptions{
				ConfigPath: configPath,
				Directory:  dir,
				DryRun:     dryRun,
			})
			if err != nil {
				return err
			}
			if err := renderer.RenderApplyResult(result); err != nil {
				return err
			}

			if watch {
				if err := renderer.RenderMessage(MsgWatching); err != nil {
					return err
				}
				return core.Watch(cmd.Context(), core.WatchOptions{
					Apply: core.ApplyOptions{
						ConfigPath: configPath,
						Directory:  result.Directory,
						DryRun:     dryRun,
					},
					OnApply: func(r *core.ApplyResult, err error) {
						if err != nil {
							_ = renderer.RenderError(err)
							return
						}
						_ = renderer.RenderApplyResult(r)
					},
				})
			}

			if !run {
				return nil
			}
			if dryRun {
				return renderer.RenderMessage(MsgRunSkipped)
			}
			if err := renderer.RenderMessage(fmt.Sprintf(MsgServerStarting, result.Directory)); err != nil {
				return err
			}
			return core.Run(cmd.Context(), core.RunOptions{
				ConfigPath: configPath,
				Directory:  result.Directory,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", MsgFlagConfig)
	cmd.Flags().BoolVar(&run, "run", false, MsgFlagRun)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, MsgFlagWatch)
	cmd.MarkFlagsMutuallyExclusive("run", "watch")
	return cmd
}

func newRunCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run [directory]",
		Short: MsgRunShort,
		Long:  MsgRunLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := directoryArg(args)

			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			if err := renderer.RenderMessage(fmt.Sprintf(MsgServerStarting, dir)); err != nil {
				return err
			}

			return core.Run(cmd.Context(), core.RunOptions{
				ConfigPath: configPath,
				Directory:  dir,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", MsgFlagConfig)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mineflake version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

func directoryArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
