// Package commands implements the CLI for the casebuild tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/casebuild/internal/app"
	"go.trai.ch/casebuild/internal/build"
	"go.trai.ch/casebuild/internal/core/domain"
	"go.trai.ch/casebuild/internal/core/ports"
)

// Orchestrator represents the build orchestration interface.
type Orchestrator interface {
	Run(ctx context.Context, req app.Request) (bool, error)
}

// CLI represents the command line interface for casebuild.
type CLI struct {
	orch    Orchestrator
	logger  ports.Logger
	rootCmd *cobra.Command

	buildList    *targetListValue
	clean        *selectionValue
	cleanDepends *selectionValue
}

// New creates a new CLI instance with the given orchestrator.
func New(orch Orchestrator, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "casebuild [caseroot]",
		Short:         "Build the components of a configured model case",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		orch:         orch,
		logger:       logger,
		rootCmd:      rootCmd,
		buildList:    newTargetList(domain.AllObjects()),
		clean:        newSelection(domain.Components()),
		cleanDepends: newSelection(domain.DependsObjects()),
	}

	flags := rootCmd.Flags()
	flags.Bool("sharedlib-only", false, "Build only the shared libraries")
	flags.BoolP("model-only", "m", false, "Build only the model components, assuming shared libraries are built")
	flags.VarP(c.buildList, "build", "b", "Build only the named components or shared libraries (comma separated)")
	flags.Bool("skip-provenance-check", false, "Do not write a build provenance record")
	flags.Bool("clean-all", false, "Clean every build artifact, including the shared libraries")

	cleanFlag := flags.VarPF(c.clean, "clean", "", "Clean build artifacts for the named components, or for all of them when given bare")
	cleanFlag.NoOptDefVal = "all"

	cleanDependsFlag := flags.VarPF(c.cleanDepends, "clean-depends", "", "Remove dependency files for the named components, or for all of them when given bare")
	cleanDependsFlag.NoOptDefVal = "all"

	flags.Bool("dry-run", false, "Log the build plan without executing it")
	flags.Bool("ninja", false, "Use the ninja backend instead of make (e3sm cases only)")
	flags.Bool("separate-builds", false, "Build components concurrently with independent logs (e3sm cases only)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	// One mode per invocation. skip-provenance-check is historically a
	// member of this group even though it reads like a modifier; kept
	// for compatibility with existing case scripts.
	rootCmd.MarkFlagsMutuallyExclusive(
		"sharedlib-only",
		"model-only",
		"build",
		"skip-provenance-check",
		"clean-all",
		"clean",
		"clean-depends",
	)

	rootCmd.PreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)
	}
	rootCmd.RunE = c.runE

	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runE(cmd *cobra.Command, args []string) error {
	caseRoot := "."
	if len(args) == 1 {
		caseRoot = args[0]
	}

	flags := cmd.Flags()
	sharedlibOnly, _ := flags.GetBool("sharedlib-only")
	modelOnly, _ := flags.GetBool("model-only")
	skipProvenance, _ := flags.GetBool("skip-provenance-check")
	cleanAll, _ := flags.GetBool("clean-all")
	dryRun, _ := flags.GetBool("dry-run")
	ninja, _ := flags.GetBool("ninja")
	separateBuilds, _ := flags.GetBool("separate-builds")

	req := app.Request{
		CaseRoot:       caseRoot,
		SharedlibOnly:  sharedlibOnly,
		ModelOnly:      modelOnly,
		BuildList:      c.buildList.Targets(),
		Clean:          c.clean.Selection(),
		CleanAll:       cleanAll,
		CleanDepends:   c.cleanDepends.Selection(),
		SaveProvenance: !skipProvenance,
		SeparateBuilds: separateBuilds,
		Ninja:          ninja,
		DryRun:         dryRun,
	}

	ok, err := c.orch.Run(cmd.Context(), req)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrBuildFailed
	}
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
