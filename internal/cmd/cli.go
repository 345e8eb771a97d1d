// Package cmd declares the kong command surface of the routegen binary.
package cmd

// LogOptions configures the slog setup shared by all commands.
type LogOptions struct {
	Level string `help:"Log level (trace, debug, info, warn, error)" enum:"trace,debug,info,warn,error" default:"info" env:"ROUTEGEN_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"ROUTEGEN_LOG_FILE"`
}

// CLI is the root kong grammar.
type CLI struct {
	Generate Generate      `cmd:"" help:"Generate routing code from an annotated source file"`
	Watch    Watch         `cmd:"" help:"Watch a source file and regenerate on every change"`
	Config   ConfigCommand `cmd:"" help:"Configuration helpers"`
	Version  Version       `cmd:"" help:"Print the routegen version"`

	ConfigFile string     `name:"config" help:"Path to a configuration file" type:"path"`
	Log        LogOptions `embed:"" prefix:"log."`
}
