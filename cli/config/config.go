package config

// Config used to store all information from the
// contemplate.yaml configuration file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"contemplate" yaml:"contemplate"`
}

// CliOpts stores information about Contemplate CLI configuration.
// Filled in when parsing the contemplate.yaml configuration file.
//
// contemplate.yaml file format:
// contemplate:
//   templates:
//     - path: path/to/templates/dir
//   remotes:
//     class-name: git-repository-url

// TemplateOpts contains configuration for applications templates.
type TemplateOpts struct {
	// Path is a directory to search template in.
	Path string `mapstructure:"path"`
}

// CliOpts is used to store all Contemplate CLI options.
type CliOpts struct {
	// Templates options.
	Templates []TemplateOpts `mapstructure:"templates"`
	// Remotes is a mapping of extra class names to git repository URLs.
	Remotes map[string]string `mapstructure:"remotes"`
}
