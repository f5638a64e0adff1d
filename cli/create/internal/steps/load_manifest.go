package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	create_ctx "github.com/tenheadedlion/contemplate/cli/create/context"
	"github.com/tenheadedlion/contemplate/cli/create/internal/scaffold"
)

// LoadManifest represents manifest load step.
type LoadManifest struct {
}

// Run loads template manifest. Missing manifest is not an error.
func (LoadManifest) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *scaffold.TemplateCtx,
) error {
	manifestPath := filepath.Join(templateCtx.ProjectPath, scaffold.DefaultManifestName)

	if _, err := os.Stat(manifestPath); err != nil {
		if os.IsNotExist(err) {
			log.Debug("There is no manifest in template.")
			templateCtx.IsManifestPresent = false
			return nil
		}
	}

	manifest, err := scaffold.LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest file: %s", err)
	}

	templateCtx.Manifest = manifest
	templateCtx.IsManifestPresent = true

	if err = os.Remove(manifestPath); err != nil {
		return fmt.Errorf("failed to remove manifest %s: %s", manifestPath, err)
	}

	return nil
}
