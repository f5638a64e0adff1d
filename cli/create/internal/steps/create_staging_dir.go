package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	create_ctx "github.com/tenheadedlion/contemplate/cli/create/context"
	"github.com/tenheadedlion/contemplate/cli/create/internal/scaffold"
)

// CreateStagingDirectory represents create staging directory step.
type CreateStagingDirectory struct {
}

// Run computes the destination path, checks it is vacant and creates a
// temporary staging directory for template instantiation. The
// existence check precedes all writes to the destination.
func (CreateStagingDirectory) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *scaffold.TemplateCtx,
) error {
	projectName := templateCtx.Vars["name"]
	if projectName == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	var projectDirectory string
	if createCtx.DestinationDir != "" {
		projectDirectory = filepath.Join(createCtx.DestinationDir, projectName)
	} else {
		projectDirectory = filepath.Join(createCtx.WorkDir, projectName)
	}

	if _, err := os.Stat(projectDirectory); err == nil {
		if !createCtx.ForceMode {
			return &scaffold.DestinationExistsError{Path: projectDirectory}
		}
	}

	projectDirectory, err := filepath.Abs(projectDirectory)
	if err != nil {
		return err
	}

	log.Infof("Creating project in %q", projectDirectory)
	templateCtx.TargetProjectPath = projectDirectory

	templateCtx.ProjectPath, err = os.MkdirTemp("", projectName+"*")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %s", err)
	}

	return nil
}
