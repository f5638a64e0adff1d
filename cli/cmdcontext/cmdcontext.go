// Package cmdcontext provides a context for commands.
package cmdcontext

// CmdCtx is a context for commands. It is used to pass
// information between root command and its children.
type CmdCtx struct {
	// Cli - CLI launch context.
	Cli CliCtx
	// CommandName is a name of the command being executed.
	CommandName string
}

// CliCtx - CLI launch context.
type CliCtx struct {
	// Path to contemplate configuration file.
	ConfigPath string
	// ConfigDir is a directory containing the configuration file.
	ConfigDir string
	// Verbose enables debug level logging.
	Verbose bool
}
