package recipe

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmingruby/recipes/fp"
	"github.com/charmingruby/recipes/seq"
)

func runPartial(_ context.Context, w io.Writer) error {
	p := &printer{w: w}
	greet := func(me, you string) string {
		return fmt.Sprintf("Hello, %s, my name is %s", you, me)
	}
	words := func(ws ...string) string { return strings.Join(ws, " ") }

	hello := fp.CallLeft(words, "me", "you")
	p.println(hello("me2", "you2"))
	goodbye := fp.CallRight(words, "me2", "you2")
	p.println(goodbye("me", "you"))

	heliosSaysHello := fp.CallLast(greet, "Helios")
	p.println(heliosSaysHello("Eartha"))
	sayHelloToCeline := fp.CallFirst(greet, "Celine")
	p.println(sayHelloToCeline("Eartha"))
	return p.err
}

// parseInt mirrors a parser whose base is optional. Unparsable input is NaN.
func parseInt(s string, base ...int) float64 {
	b := 10
	if len(base) > 0 {
		b = base[0]
	}
	n, err := strconv.ParseInt(s, b, 64)
	if err != nil {
		return math.NaN()
	}
	return float64(n)
}

func runUnary(_ context.Context, w io.Writer) error {
	p := &printer{w: w}
	digits := []string{"1", "2", "3"}
	p.println(seq.MapIndexed(digits, func(s string, i int) float64 { return parseInt(s, i) }))
	p.println(seq.MapIndexed(digits, fp.Unary2(parseInt)))
	return p.err
}

func runTap(_ context.Context, w io.Writer) error {
	p := &printer{w: w}
	announce := func(it string) { p.printf("Our drink is '%s'\n", it) }

	b := fp.TapWith("espresso", announce)
	p.println(b)
	a := fp.Tap("espresso")(announce)
	p.println(a)
	return p.err
}

func runMaybe(_ context.Context, w io.Writer) error {
	p := &printer{w: w}
	sum := fp.Maybe(func(xs ...int) int { return xs[0] + xs[1] + xs[2] })
	one, two, three := 1, 2, 3
	p.println(sum(&one, &two, &three))
	p.println(sum(&one, nil, &three))
	return p.err
}

func runOnce(_ context.Context, w io.Writer) error {
	p := &printer{w: w}
	askedOnBlindDate := fp.Once(func() string { return "sure, why not?" })
	for range 3 {
		p.println(askedOnBlindDate())
	}
	return p.err
}

func runLeftVariadic(_ context.Context, w io.Writer) error {
	p := &printer{w: w}
	words := []string{"why", "hello", "there", "little", "droid"}

	butLastAndLast := fp.LeftVariadic2(func(butLast []string, last string) []any {
		return []any{butLast, last}
	})
	p.println(butLastAndLast(words...))

	butLast, last := fp.LeftGather2(words)
	p.println(butLast)
	p.println(last)
	return p.err
}

func runCompose(_ context.Context, w io.Writer) error {
	p := &printer{w: w}
	addOne := func(n int) int { return n + 1 }
	doubleOf := func(n int) int { return n * 2 }
	addFortyTwo := func(n int) int { return n + 42 }

	p.println(fp.Compose2(doubleOf, addOne)(2))
	p.println(fp.Compose3(addFortyTwo, doubleOf, addOne)(2))
	p.println(fp.Compose(doubleOf, addOne)(2))
	p.println(fp.Pipeline(addOne, doubleOf)(2))
	return p.err
}
