package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tenheadedlion/contemplate/cli/cmdcontext"
	"github.com/tenheadedlion/contemplate/cli/config"
	"github.com/tenheadedlion/contemplate/cli/configure"
	"github.com/tenheadedlion/contemplate/cli/create"
	create_ctx "github.com/tenheadedlion/contemplate/cli/create/context"
	"github.com/tenheadedlion/contemplate/cli/create/registry"
	"github.com/tenheadedlion/contemplate/cli/util"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	cliOpts *config.CliOpts
	rootCmd *cobra.Command

	forceMode          bool
	nonInteractiveMode bool
	varsFromCli        *[]string
	varsFile           string
	dstPath            string
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "contemplate <CLASS> [PROJECT_NAME]",
		Short: "Contemplate CLI",
		Long: `Materialize a starter project of the given class into a new directory.

Built-in classes:
	phat-contract: a Phala Phat Contract starter project.
	phat-contract-with-sideprog: a Phat Contract starter project with a SideVM program.`,
		Example: `
# Create phat-contract-start/ in the current directory.

    $ contemplate phat-contract

# Create the same starter under an explicit project name.

    $ contemplate phat-contract my-contract

# Replace an existing my-contract directory, without any prompts.

    $ contemplate phat-contract-with-sideprog my-contract -f --non-interactive`,
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := internalCreateModule(&cmdCtx, args)
			util.HandleCmdErr(cmd, err)
		},
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: classValidArgsFunction,
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose output")

	rootCmd.Flags().BoolVarP(&forceMode, "force", "f", false,
		`Force rewrite project directory if already exists`)
	rootCmd.Flags().BoolVarP(&nonInteractiveMode, "non-interactive", "s", false,
		`Non-interactive mode`)
	varsFromCli = rootCmd.Flags().StringArray("var", []string{},
		"Variable definition. Usage: --var var_name=value")
	rootCmd.Flags().StringVar(&varsFile, "vars-file", "", "Variables definition file path")
	rootCmd.Flags().StringVarP(&dstPath, "dst", "d", "",
		"Path to the directory where a project will be created")

	rootCmd.AddCommand(
		NewVersionCmd(),
		NewListCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// classValidArgsFunction returns valid classes for shell completion.
func classValidArgsFunction(
	_ *cobra.Command,
	args []string,
	toComplete string,
) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}

	searchPaths := []string{}
	remotes := map[string]string{}
	if cliOpts != nil {
		for _, p := range cliOpts.Templates {
			searchPaths = append(searchPaths, p.Path)
		}
		remotes = cliOpts.Remotes
	}

	return registry.Known(searchPaths, remotes), cobra.ShellCompDirectiveNoFileComp
}

// internalCreateModule materializes a starter project of the requested class.
func internalCreateModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	createCtx := create_ctx.CreateCtx{
		ForceMode:      forceMode,
		SilentMode:     nonInteractiveMode,
		VarsFromCli:    *varsFromCli,
		VarsFile:       varsFile,
		DestinationDir: dstPath,
		Verbose:        cmdCtx.Cli.Verbose,
		CliOpts:        cliOpts,
	}

	if err := create.FillCtx(cliOpts, &createCtx, args); err != nil {
		return err
	}

	projectPath, err := create.Run(&createCtx)
	if err != nil {
		return err
	}

	log.Infof("Project created in %s", color.GreenString(projectPath))
	return nil
}

// Execute root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf(err.Error())
	}
}

// InitRoot initializes global flags and configures Contemplate CLI.
func InitRoot() {
	rootCmd = NewCmdRoot()
	rootCmd.ParseFlags(os.Args)

	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	// Configure Contemplate CLI.
	if err := configure.Cli(&cmdCtx); err != nil {
		log.Fatalf("Failed to configure Contemplate CLI: %s", err)
	}

	var err error
	cliOpts, err = configure.GetCliOpts(cmdCtx.Cli.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to get Contemplate CLI configuration: %s", err)
	}
}
