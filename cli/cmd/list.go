package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tenheadedlion/contemplate/cli/cmdcontext"
	"github.com/tenheadedlion/contemplate/cli/create/builtin_templates"
	"github.com/tenheadedlion/contemplate/cli/create/registry"
	"github.com/tenheadedlion/contemplate/cli/util"
)

// NewListCmd creates list command.
func NewListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show list of available classes",
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := internalListModule(&cmdCtx, args)
			util.HandleCmdErr(cmd, err)
		},
		Args: cobra.ExactArgs(0),
	}

	return listCmd
}

// internalListModule is a default list module.
func internalListModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	searchPaths := []string{}
	remotes := map[string]string{}
	if cliOpts != nil {
		for _, p := range cliOpts.Templates {
			searchPaths = append(searchPaths, p.Path)
		}
		remotes = cliOpts.Remotes
	}

	fmt.Println("List of available classes:")

	for _, class := range registry.Known(searchPaths, remotes) {
		if description, found := builtin_templates.Descriptions[class]; found {
			fmt.Printf("	%s: %s\n", color.GreenString(class), description)
		} else if url, found := remotes[class]; found {
			fmt.Printf("	%s: %s\n", color.YellowString(class), url)
		} else {
			fmt.Printf("	%s\n", color.YellowString(class))
		}
	}

	return nil
}
