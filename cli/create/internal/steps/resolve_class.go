package steps

import (
	"github.com/apex/log"
	create_ctx "github.com/tenheadedlion/contemplate/cli/create/context"
	"github.com/tenheadedlion/contemplate/cli/create/internal/scaffold"
	"github.com/tenheadedlion/contemplate/cli/create/registry"
	"github.com/tenheadedlion/contemplate/cli/util"
)

// ResolveClass represents a class resolution step.
type ResolveClass struct{}

// Run resolves the requested class name to a template descriptor.
func (ResolveClass) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *scaffold.TemplateCtx,
) error {
	var remotes map[string]string
	if createCtx.CliOpts != nil {
		remotes = createCtx.CliOpts.Remotes
	}

	descriptor, err := registry.Resolve(createCtx.ClassName,
		createCtx.TemplateSearchPaths, remotes)
	if err != nil {
		return err
	}

	if descriptor.Kind == registry.SourceGit {
		util.CheckRecommendedBinaries("git")
	}

	log.Debugf("Class %q resolved", descriptor.Name)
	templateCtx.Descriptor = descriptor

	return nil
}
