package scaffold

import (
	"github.com/tenheadedlion/contemplate/cli/create/registry"
	"github.com/tenheadedlion/contemplate/cli/templates"
)

// TemplateCtx contains an information required for class template rendering.
type TemplateCtx struct {
	// Descriptor is a resolved class template descriptor.
	Descriptor registry.TemplateDescriptor
	// ProjectPath is a path to staging directory. Class template is
	// instantiated in this directory.
	ProjectPath string
	// TargetProjectPath is a path to directory where a project is to be
	// moved to after instantiation.
	TargetProjectPath string
	// Manifest is a loaded template manifest.
	Manifest TemplateManifest
	// IsManifestPresent is true if a template manifest is loaded. False - otherwise.
	IsManifestPresent bool
	// Vars is a map of variables to be used for template rendering.
	Vars map[string]string
	// Engine is a template engine to use for template rendering.
	Engine templates.TemplateEngine
}

// NewTemplateContext creates new class template context.
func NewTemplateContext() TemplateCtx {
	var ctx TemplateCtx
	ctx.Vars = make(map[string]string)
	ctx.Engine = templates.NewDefaultEngine()
	return ctx
}
