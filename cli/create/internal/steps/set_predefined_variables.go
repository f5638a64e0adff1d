package steps

import (
	"fmt"

	create_ctx "github.com/tenheadedlion/contemplate/cli/create/context"
	"github.com/tenheadedlion/contemplate/cli/create/internal/scaffold"
)

// SetPredefinedVariables represents a step for setting pre-defined variables.
type SetPredefinedVariables struct {
}

// Run sets predefined variables values. The effective project name is
// the explicit one if provided, the default name rendered from the
// descriptor name pattern otherwise.
func (SetPredefinedVariables) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *scaffold.TemplateCtx,
) error {
	templateCtx.Vars["class"] = templateCtx.Descriptor.Name

	projectName := createCtx.ProjectName
	if projectName == "" {
		var err error
		projectName, err = templateCtx.Engine.RenderText(
			templateCtx.Descriptor.NamePattern, templateCtx.Vars)
		if err != nil {
			return fmt.Errorf("failed to render default project name: %s", err)
		}
	}

	templateCtx.Vars["name"] = projectName

	return nil
}
