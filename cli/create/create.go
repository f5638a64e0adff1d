// Package create implements starter project materialization from class
// templates.
package create

import (
	"fmt"
	"os"

	"github.com/tenheadedlion/contemplate/cli/config"
	create_ctx "github.com/tenheadedlion/contemplate/cli/create/context"
	"github.com/tenheadedlion/contemplate/cli/create/internal/scaffold"
	"github.com/tenheadedlion/contemplate/cli/create/internal/steps"
	"github.com/tenheadedlion/contemplate/cli/util"
	"github.com/tenheadedlion/contemplate/cli/version"
)

// FillCtx fills create context.
func FillCtx(cliOpts *config.CliOpts, createCtx *create_ctx.CreateCtx, args []string) error {
	for _, p := range cliOpts.Templates {
		createCtx.TemplateSearchPaths = append(createCtx.TemplateSearchPaths, p.Path)
	}

	if len(args) >= 1 {
		createCtx.ClassName = args[0]
	} else {
		return util.NewArgError("missing class name argument. " +
			"Try `contemplate --help` for more information")
	}
	if len(args) >= 2 {
		createCtx.ProjectName = args[1]
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	createCtx.WorkDir = workingDir

	return nil
}

// rollbackOnErr removes the staging directory. The destination
// directory is left as is: a partially written destination is reported,
// not hidden.
func rollbackOnErr(templateCtx *scaffold.TemplateCtx) {
	if templateCtx.ProjectPath != "" &&
		templateCtx.ProjectPath != templateCtx.TargetProjectPath {
		os.RemoveAll(templateCtx.ProjectPath)
	}
	templateCtx.ProjectPath = ""
}

// Run creates a starter project from a class template.
// Returns the path to the created project directory.
func Run(createCtx *create_ctx.CreateCtx) (string, error) {
	if err := checkCtx(createCtx); err != nil {
		return "", util.InternalError("Create context check failed: %s", version.GetVersion, err)
	}

	stepsChain := []steps.Step{
		steps.ResolveClass{},
		steps.SetPredefinedVariables{},
		steps.LoadVarsFile{},
		steps.FillTemplateVarsFromCli{},
		steps.CreateStagingDirectory{},
		steps.StageTemplate{},
		steps.LoadManifest{},
		steps.CollectTemplateVarsFromUser{Reader: steps.NewConsoleReader()},
		steps.RunHook{HookType: "pre"},
		steps.RenderTemplate{},
		steps.RunHook{HookType: "post"},
		steps.Cleanup{},
		steps.MoveProjectDirectory{},
		steps.PrintFollowUpMessage{Writer: os.Stdout},
	}

	templateCtx := scaffold.NewTemplateContext()
	for _, step := range stepsChain {
		if err := step.Run(createCtx, &templateCtx); err != nil {
			rollbackOnErr(&templateCtx)
			return "", err
		}
	}

	return templateCtx.TargetProjectPath, nil
}

// checkCtx checks create context for validity.
func checkCtx(createCtx *create_ctx.CreateCtx) error {
	if createCtx.ClassName == "" {
		return fmt.Errorf("class name is missing")
	}

	return nil
}
