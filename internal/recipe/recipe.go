// Package recipe replays the practice recipes of the combinators in fp. Each
// recipe writes the lines its exercise printed to the console.
package recipe

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmingruby/recipes/option"
	"github.com/charmingruby/recipes/seq"
	"github.com/charmingruby/recipes/validated"
)

// ErrUnknownRecipe is returned when a name does not match any recipe.
var ErrUnknownRecipe = errors.New("unknown recipe")

// Recipe is one demonstration.
type Recipe struct {
	Name  string
	Title string
	Run   func(ctx context.Context, w io.Writer) error
}

var registry = []Recipe{
	{Name: "partial", Title: "partial application", Run: runPartial},
	{Name: "unary", Title: "unary adaptation", Run: runUnary},
	{Name: "tap", Title: "tap", Run: runTap},
	{Name: "maybe", Title: "maybe", Run: runMaybe},
	{Name: "once", Title: "once", Run: runOnce},
	{Name: "left-variadic", Title: "left-variadic gathering", Run: runLeftVariadic},
	{Name: "compose", Title: "compose and pipeline", Run: runCompose},
}

// All returns every recipe in exercise order.
func All() []Recipe {
	return append([]Recipe(nil), registry...)
}

// Names returns the recipe names in exercise order.
func Names() []string {
	return seq.Map(registry, func(r Recipe) string { return r.Name })
}

// Lookup finds a recipe by name.
func Lookup(name string) option.Option[Recipe] {
	for _, r := range registry {
		if r.Name == name {
			return option.Some(r)
		}
	}
	return option.None[Recipe]()
}

// Select resolves names in the given order. An empty list selects every
// recipe. Every unknown name is reported, each wrapping ErrUnknownRecipe.
func Select(names []string) ([]Recipe, error) {
	if len(names) == 0 {
		return All(), nil
	}
	selected := validated.Traverse(names, func(name string) validated.Validated[error, Recipe] {
		return option.Fold(Lookup(name),
			func() validated.Validated[error, Recipe] {
				return validated.Invalid[error, Recipe](fmt.Errorf("%w: %q", ErrUnknownRecipe, name))
			},
			validated.Valid[error, Recipe],
		)
	})
	if err := validated.Err(selected); err != nil {
		return nil, err
	}
	recipes, _ := selected.Value()
	return recipes, nil
}

// printer collects the first write error so recipe bodies read like the
// console demos they replay.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
