package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/afiqzx/routegen/internal/codegen/generator"
)

// Watch regenerates the routing code whenever the input file changes.
type Watch struct {
	Input    string        `arg:"" help:"Go source file containing the annotated route declaration" type:"existingfile"`
	Output   string        `help:"Output file (defaults to <input>_routegen.go)" env:"ROUTEGEN_OUTPUT"`
	Target   string        `help:"Router flavor the generated table targets" enum:"httprouter,mux" default:"httprouter" env:"ROUTEGEN_TARGET"`
	Debounce time.Duration `help:"Quiet period before regenerating after a change" default:"100ms"`
}

// Run is called by Kong when the watch command is executed.
func (w *Watch) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := generator.New(w.Target, logger)
	if err := gen.Generate(w.Input, w.Output); err != nil {
		// A broken schema at startup is reported but keeps the watcher
		// alive so the next save can fix it.
		logger.Error("Generation failed", "error", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: editors replace files on save, which drops a
	// watch placed on the file itself.
	dir := filepath.Dir(w.Input)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	base := filepath.Base(w.Input)
	logger.Info("Watching for changes", "input", w.Input)

	var debounce *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(w.Debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", "error", err)
		case <-fire:
			if err := gen.Generate(w.Input, w.Output); err != nil {
				logger.Error("Generation failed", "error", err)
			}
		}
	}
}
