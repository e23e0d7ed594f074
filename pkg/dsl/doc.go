/*
Package dsl provides a fluent Go builder for menu graphs.

It is the in-code counterpart of the YAML graph files read by package loader: the
builder produces the same definition and binds Go actions directly instead of by name.

Example usage:

	b := dsl.New().Init("main").Args(5)

	b.Menu("main").
		Title("Main menu").
		Option("1", "square", "Square").
		Option("q", "quit", "Quit")

	b.Menu("square").Do(square)
	b.Menu("quit").Do(registry.Noop)

	if err := b.Build(program); err != nil {
		log.Fatal(err)
	}
*/
package dsl
