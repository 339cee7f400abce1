package runner_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/charmingruby/recipes/internal/recipe"
	"github.com/charmingruby/recipes/internal/runner"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func static(name, text string, delay time.Duration) recipe.Recipe {
	return recipe.Recipe{
		Name:  name,
		Title: "title " + name,
		Run: func(ctx context.Context, w io.Writer) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			_, err := fmt.Fprintln(w, text)
			return err
		},
	}
}

func TestRunKeepsSelectionOrder(t *testing.T) {
	recipes := []recipe.Recipe{
		static("slow", "first", 20*time.Millisecond),
		static("fast", "second", 0),
	}
	var out bytes.Buffer
	err := runner.New(zap.NewNop(), 2, time.Second).Run(context.Background(), recipes, &out)
	require.NoError(t, err)
	assert.Equal(t, "== slow: title slow\nfirst\n== fast: title fast\nsecond\n", out.String())
}

func TestRunAllRegisteredRecipes(t *testing.T) {
	recipes, err := recipe.Select(nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runner.New(nil, 3, time.Second).Run(context.Background(), recipes, &out))
	for _, name := range recipe.Names() {
		assert.Contains(t, out.String(), "== "+name+":")
	}
	assert.Contains(t, out.String(), "Some(sure, why not?)")
}

func TestRunWrapsAndLogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	boom := errors.New("boom")
	failing := recipe.Recipe{
		Name:  "broken",
		Title: "broken",
		Run:   func(context.Context, io.Writer) error { return boom },
	}

	var out bytes.Buffer
	err := runner.New(zap.New(core), 1, time.Second).Run(context.Background(), []recipe.Recipe{failing}, &out)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "recipe broken")
	assert.Empty(t, out.String())

	failures := logs.FilterMessage("recipe failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, "broken", failures[0].ContextMap()["recipe"])
}

func TestRunTimesOutSlowRecipes(t *testing.T) {
	recipes := []recipe.Recipe{static("sleepy", "never", time.Second)}
	err := runner.New(nil, 1, 10*time.Millisecond).Run(context.Background(), recipes, io.Discard)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunEmptySelection(t *testing.T) {
	var out strings.Builder
	require.NoError(t, runner.New(nil, 0, 0).Run(context.Background(), nil, &out))
	assert.Empty(t, out.String())
}
