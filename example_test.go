package finiteconsole_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/finiteconsole"
	"github.com/aretw0/finiteconsole/pkg/console"
)

// Example builds a two-level menu and drives it with scripted input.
func Example() {
	p, err := finiteconsole.New()
	if err != nil {
		log.Fatal(err)
	}
	defer p.Drop()

	main, _ := p.Menu("main", nil)
	tools, _ := p.Menu("tools", nil)
	square, _ := p.Menu("square", func(ctx context.Context, args ...any) (any, error) {
		n := args[0].(int)
		return n * n, nil
	})

	toTools, _ := p.Option("1", tools, "Tools")
	back, _ := p.Option("b", main, "Back")
	toSquare, _ := p.Option("1", square, "Square")
	if _, err := main.Append(toTools); err != nil {
		log.Fatal(err)
	}
	if _, err := tools.Append(back, toSquare); err != nil {
		log.Fatal(err)
	}
	if err := p.SetInitMenu(main); err != nil {
		log.Fatal(err)
	}
	p.PushArgs(5)

	h := console.NewScriptedHandler("1", "x", "1").Echo(os.Stdout, console.PlainRenderer)
	result, err := p.Start(context.Background(), h)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("result:", result)

	// Output:
	// main
	//   1) Tools
	// tools
	//   1) Square
	//   b) Back
	// unknown option "x"
	// tools
	//   1) Square
	//   b) Back
	// result: 25
}

// ExampleProgram_ResolveDependencies shows the problems reported for an incomplete graph.
func ExampleProgram_ResolveDependencies() {
	p, err := finiteconsole.New()
	if err != nil {
		log.Fatal(err)
	}
	defer p.Drop()

	_, _ = p.Menu("main", nil)
	fmt.Println(p.ResolveDependencies())

	// Output:
	// menu "main" has no options and no action
	// The initial menu is not set
}
