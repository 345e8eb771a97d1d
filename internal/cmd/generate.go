package cmd

import (
	"log/slog"

	"github.com/afiqzx/routegen/internal/codegen/generator"
)

// Generate runs one generation pass over an annotated source file.
type Generate struct {
	Input  string `arg:"" help:"Go source file containing the annotated route declaration" type:"existingfile"`
	Output string `help:"Output file (defaults to <input>_routegen.go)" env:"ROUTEGEN_OUTPUT"`
	Target string `help:"Router flavor the generated table targets" enum:"httprouter,mux" default:"httprouter" env:"ROUTEGEN_TARGET"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	logger.Info("Starting route generation", "input", g.Input, "target", g.Target)

	gen := generator.New(g.Target, logger)
	return gen.Generate(g.Input, g.Output)
}
