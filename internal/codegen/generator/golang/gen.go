// Package golang emits the generated routing source for a scanned route
// model: the URL builder, the method lookup, the router-table builder per
// target flavor, and the optional embedded-asset handler.
package golang

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/afiqzx/routegen/internal/codegen/meta"
)

// Generate renders the routing code for schemas and writes it to outputPath.
// The file is only rewritten when its content changed, so repeated runs keep
// build caches warm.
func Generate(logger *slog.Logger, outputPath, pkg string, schemas []meta.RouteSchema, target Target) error {
	src, err := render(pkg, schemas, target)
	if err != nil {
		return err
	}

	written, err := writeFileIfChanged(outputPath, src)
	if err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	if written {
		logger.Info("Wrote generated routes", "output", outputPath, "target", target.Name)
	} else {
		logger.Debug("Generated routes unchanged", "output", outputPath)
	}
	return nil
}

func writeFileIfChanged(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
