package steps

import (
	"io"

	create_ctx "github.com/tenheadedlion/contemplate/cli/create/context"
	"github.com/tenheadedlion/contemplate/cli/create/internal/scaffold"
)

// PrintFollowUpMessage represents follow-up message print step.
type PrintFollowUpMessage struct {
	// Writer is used to write follow-up message.
	Writer io.Writer
}

// Run prints class template follow-up message.
func (printStep PrintFollowUpMessage) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *scaffold.TemplateCtx,
) error {
	if templateCtx.IsManifestPresent && templateCtx.Manifest.FollowUpMessage != "" &&
		!createCtx.SilentMode {

		followUpText, err := templateCtx.Engine.RenderText(
			templateCtx.Manifest.FollowUpMessage, templateCtx.Vars)
		if err != nil {
			return err
		}

		printStep.Writer.Write([]byte(followUpText + "\n"))
	}

	return nil
}
