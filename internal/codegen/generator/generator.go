// Package generator orchestrates one generation pass: scan the annotated
// source file into the route model, then emit the routing code for the
// selected router target.
package generator

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/afiqzx/routegen/internal/codegen/generator/golang"
	"github.com/afiqzx/routegen/internal/codegen/scanner"
)

type Generator struct {
	target string
	logger *slog.Logger
}

func New(target string, logger *slog.Logger) *Generator {
	return &Generator{
		target: target,
		logger: logger,
	}
}

// Generate runs the full pipeline for inputPath. An empty outputPath
// defaults to <input>_routegen.go next to the source file. Nothing is
// written when scanning or emission fails.
func (g *Generator) Generate(inputPath, outputPath string) error {
	target, ok := golang.Targets[g.target]
	if !ok {
		return fmt.Errorf("unsupported target '%s' (supported: %v)", g.target, golang.TargetNames())
	}

	g.logger.Debug("Scanning route declarations", "input", inputPath)
	schemas, pkg, err := scanner.ScanFile(inputPath)
	if err != nil {
		return fmt.Errorf("scan %s: %w", inputPath, err)
	}

	variants := 0
	for _, s := range schemas {
		variants += len(s.Variants)
	}
	g.logger.Info("Found route schemas", "input", inputPath, "schemas", len(schemas), "variants", variants)

	if outputPath == "" {
		outputPath = DefaultOutput(inputPath)
	}

	if err := golang.Generate(g.logger, outputPath, pkg, schemas, target); err != nil {
		return err
	}

	g.logger.Info("Generation complete", "output", outputPath)
	return nil
}

// DefaultOutput derives the output path for an input source file.
func DefaultOutput(inputPath string) string {
	return strings.TrimSuffix(inputPath, ".go") + "_routegen.go"
}
