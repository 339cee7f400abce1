// Package runner executes recipes concurrently and prints their output in
// selection order.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/charmingruby/recipes/internal/recipe"
	"github.com/charmingruby/recipes/task"
)

// Runner runs recipes with bounded parallelism.
type Runner struct {
	log      *zap.Logger
	parallel int
	timeout  time.Duration
}

// New creates a Runner. A nil logger disables logging; parallel below 1 runs
// recipes one at a time; a non-positive timeout leaves recipes unbounded.
func New(log *zap.Logger, parallel int, timeout time.Duration) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		log:      log.Named("runner"),
		parallel: max(parallel, 1),
		timeout:  timeout,
	}
}

// Run executes recipes and writes each output under a header to w. Nothing is
// written when any recipe fails; the first failure is returned wrapped with
// the recipe name.
func (r *Runner) Run(ctx context.Context, recipes []recipe.Recipe, w io.Writer) error {
	outputs, err := task.TraverseParN(recipes, r.parallel, r.render)(ctx)
	if err != nil {
		return err
	}
	for i, rc := range recipes {
		if _, err := fmt.Fprintf(w, "== %s: %s\n%s", rc.Name, rc.Title, outputs[i]); err != nil {
			return fmt.Errorf("failed to write output of %s: %w", rc.Name, err)
		}
	}
	r.log.Debug("recipes finished", zap.Int("count", len(recipes)))
	return nil
}

func (r *Runner) render(rc recipe.Recipe) task.Task[[]byte] {
	log := r.log.With(zap.String("recipe", rc.Name))
	run := task.From(func(ctx context.Context) ([]byte, error) {
		log.Debug("recipe started")
		var buf bytes.Buffer
		if err := rc.Run(ctx, &buf); err != nil {
			return nil, fmt.Errorf("recipe %s: %w", rc.Name, err)
		}
		return buf.Bytes(), nil
	})
	run = task.Tap(task.Timeout(run, r.timeout), func(out []byte) {
		log.Debug("recipe done", zap.Int("bytes", len(out)))
	})
	return task.TapErr(run, func(err error) {
		log.Error("recipe failed", zap.Error(err))
	})
}
