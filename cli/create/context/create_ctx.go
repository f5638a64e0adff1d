package create_ctx

import "github.com/tenheadedlion/contemplate/cli/config"

// CreateCtx contains information for creating projects from class templates.
type CreateCtx struct {
	// ClassName is a class of starter project to materialize.
	ClassName string
	// ProjectName is a name of the destination directory to create.
	// If empty, a default name is derived from the class name.
	ProjectName string
	// WorkDir is contemplate launch working directory.
	WorkDir string
	// DestinationDir is the path where a project will be created.
	DestinationDir string
	// TemplateSearchPaths is a set of paths to search for a template.
	TemplateSearchPaths []string
	// VarsFromCli template variables definitions provided in command line.
	VarsFromCli []string
	// VarsFile is a file with variables definitions.
	VarsFile string
	// ForceMode - if flag is set, remove existing destination directory.
	ForceMode bool
	// SilentMode if set, disables user interaction. All invalid format errors fail
	// project creation.
	SilentMode bool
	// Verbose enables verbose output of external commands.
	Verbose bool
	// CliOpts is loaded contemplate configuration.
	CliOpts *config.CliOpts
}
