/*
Package finiteconsole builds interactive command-line programs out of menus.

A program is a graph: menus are nodes, options are edges keyed by the input token that
selects them. A menu with an action is finite: reaching it runs the action with the
program's argument queue and ends the loop with the action's result.

# Usage

	p, err := finiteconsole.New()
	if err != nil {
		log.Fatal(err)
	}
	defer p.Drop()

	main, _ := p.Menu("main", nil)
	square, _ := p.Menu("square", func(ctx context.Context, args ...any) (any, error) {
		n := args[0].(int)
		return n * n, nil
	})

	opt, _ := p.Option("1", square, "Square")
	main.Append(opt)
	p.SetInitMenu(main)
	p.PushArgs(5)

	result, err := p.Start(ctx, console.NewTextHandler(os.Stdin, os.Stdout))

Start refuses to run a graph that does not resolve: a navigation menu without options, a
missing initial menu or an option pointing at a removed menu. ResolveDependencies reports the
same problems without starting, together with menus unreachable from the initial menu.

Only one program may be live per process. New fails with ErrProgramExists until the current
program is dropped.
*/
package finiteconsole
