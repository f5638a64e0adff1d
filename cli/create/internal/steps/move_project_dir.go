package steps

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/otiai10/copy"
	create_ctx "github.com/tenheadedlion/contemplate/cli/create/context"
	"github.com/tenheadedlion/contemplate/cli/create/internal/scaffold"
)

// MoveProjectDirectory represents staging directory move step.
type MoveProjectDirectory struct {
}

// Run moves the staged project tree to destination. The destination is
// re-checked right before the move to keep the unforced overwrite
// window as small as possible.
func (MoveProjectDirectory) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *scaffold.TemplateCtx,
) error {
	if templateCtx.TargetProjectPath == "" {
		return nil
	}

	if _, err := os.Stat(templateCtx.TargetProjectPath); err == nil {
		if !createCtx.ForceMode {
			return &scaffold.DestinationExistsError{Path: templateCtx.TargetProjectPath}
		}
		if err = os.RemoveAll(templateCtx.TargetProjectPath); err != nil {
			return fmt.Errorf("failed to remove %s: %s", templateCtx.TargetProjectPath, err)
		}
	}

	if err := copy.Copy(templateCtx.ProjectPath, templateCtx.TargetProjectPath); err != nil {
		return err
	}

	if err := os.RemoveAll(templateCtx.ProjectPath); err != nil {
		log.Warnf("Failed to remove staging directory: %s", err)
	}
	templateCtx.ProjectPath = templateCtx.TargetProjectPath

	return nil
}
