/*
Package ports defines the interfaces the menu loop talks through.

They decouple the runtime from the console, so the same program can be driven by a
terminal, a scripted token list in tests, or any other source of input tokens.

# Key Interfaces

  - IOHandler: renders the current menu and supplies the next input token.
  - Inspector: read-only access to a program, used by introspection adapters.
*/
package ports
