package console

import "github.com/aretw0/finiteconsole/pkg/ports"

// Handler is the loop's IO collaborator.
type Handler = ports.IOHandler

var (
	_ Handler = (*TextHandler)(nil)
	_ Handler = (*JSONHandler)(nil)
	_ Handler = (*ScriptedHandler)(nil)
)
