package cmd

import (
	"context"
	"fmt"

	"github.com/devantler-tech/docdiff/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/docdiff/pkg/config"
	"github.com/devantler-tech/docdiff/pkg/di"
	"github.com/devantler-tech/docdiff/pkg/docpath"
	"github.com/devantler-tech/docdiff/pkg/editor"
	"github.com/devantler-tech/docdiff/pkg/launcher"
	"github.com/devantler-tech/docdiff/pkg/ui/notify"
	"github.com/spf13/cobra"
)

// ConfigFlagName is the flag selecting an explicit config file.
const ConfigFlagName = "config"

const rootCmdLong = `Open a visual diff editor on a project's web documentation and its original.

The web copy is <project>.markdown in the current directory. The original is
../<project>/doc/<project>.markdown. Neither file is checked before launch;
a missing file is reported by the editor.

On unix the editor replaces docdiff, so its exit status becomes docdiff's.
With --wait, or on other platforms, docdiff waits and forwards the status.

Every flag can also be set in .docdiff.yaml (working directory or home) or
through DOCDIFF_<FLAG> environment variables, e.g. DOCDIFF_EDITOR.`

const rootCmdExample = `  # Compare foo.markdown with ../foo/doc/foo.markdown in mvim
  docdiff foo

  # Use VS Code and wait for it to close
  docdiff foo --editor "code --wait" --diff-flag --diff --wait

  # Print the editor command instead of running it
  docdiff foo --dry-run`

// NewRootCmd creates and returns the root command with version info.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return NewRootCmdWithRuntime(di.NewRuntime(), version, commit, date)
}

// NewRootCmdWithRuntime creates the root command resolving its executor from runtimeContainer.
func NewRootCmdWithRuntime(runtimeContainer *di.Runtime, version, commit, date string) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:          "docdiff <project>",
		Short:        "Diff a project's web documentation against its original",
		Long:         rootCmdLong,
		Example:      rootCmdExample,
		Args:         projectArgs,
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	flags := cmd.Flags()
	flags.StringVar(&configFile, ConfigFlagName, "", "config file (default .docdiff.yaml in . or $HOME)")
	flags.String(config.KeyEditor, config.DefaultEditor, "diff editor command line")
	flags.String(config.KeyDiffFlag, config.DefaultDiffFlag, "flag putting the editor in diff mode (empty for none)")
	flags.String(config.KeyOrigRoot, docpath.DefaultRoot, "directory holding the original project checkouts")
	flags.String(config.KeyDocDir, docpath.DefaultDocDir, "documentation directory inside a project checkout")
	flags.String(config.KeyExtension, docpath.DefaultExtension, "documentation file extension")
	flags.Bool(config.KeyWait, false, "spawn the editor and wait for it instead of replacing docdiff")
	flags.Bool(config.KeyDryRun, false, "print the editor command instead of running it")
	flags.BoolP(config.KeyVerbose, "v", false, "print the editor command before running it")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		manager := config.NewManager(configFile)

		err := manager.BindFlags(cmd.Flags())
		if err != nil {
			return fmt.Errorf("failed to bind flags: %w", err)
		}

		cfg, err := manager.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cfg.Verbose && manager.ConfigFileUsed() != "" {
			notify.Infof(cmd.OutOrStderr(), "using config file %s", manager.ConfigFileUsed())
		}

		return runtimeContainer.Invoke(func(injector di.Injector) error {
			factory, err := di.ResolveExecutorFactory(injector)
			if err != nil {
				return err
			}

			return HandleRootRunE(cmd, cfg, args[0], factory)
		})
	}

	return cmd
}

// Execute runs the provided root command and normalizes its error output.
func Execute(ctx context.Context, cmd *cobra.Command) error {
	return errorhandler.NewExecutor().Execute(ctx, cmd) //nolint:wrapcheck // CommandError carries the cause
}

// HandleRootRunE resolves the documentation pair for project and hands it to
// the editor produced by factory.
func HandleRootRunE(
	cmd *cobra.Command,
	cfg *config.Config,
	project string,
	factory launcher.Factory,
) error {
	pair, err := cfg.Layout().Resolve(project)
	if err != nil {
		return err //nolint:wrapcheck // user-facing sentinel
	}

	flagEditor := ""
	if cmd.Flags().Changed(config.KeyEditor) {
		flagEditor, _ = cmd.Flags().GetString(config.KeyEditor)
	}

	editorCmd, err := editor.Parse(editor.NewResolver(flagEditor, cfg).Resolve())
	if err != nil {
		return fmt.Errorf("invalid editor: %w", err)
	}

	inv := launcher.Build(editorCmd, cfg.DiffFlag, pair)

	if cfg.DryRun {
		notify.Plainf(cmd.OutOrStdout(), "%s", inv)

		return nil
	}

	if cfg.Verbose {
		notify.Activityf(cmd.OutOrStderr(), "launching %s", inv)
	}

	mode := launcher.ModeExec
	if cfg.Wait {
		mode = launcher.ModeWait
	}

	return factory(mode).Launch(cmd.Context(), inv) //nolint:wrapcheck // exit status must stay intact
}

// --- internals ---

// projectArgs accepts exactly one non-empty project name.
func projectArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return docpath.ErrNoProject
	}

	return cobra.ExactArgs(1)(cmd, args) //nolint:wrapcheck // cobra usage error
}
