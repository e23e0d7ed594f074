/*
Package console provides the input and render collaborators of the menu loop.

Handlers implement ports.IOHandler: they present the current menu and hand back the
next input token. Reads are cancellable, so stopping a program never leaves the loop
parked on a blocked read.

  - TextHandler: line based terminal IO with a pluggable Renderer.
  - JSONHandler: NDJSON views on the writer, one token per input line.
  - ScriptedHandler: a fixed list of tokens, for headless runs and tests.
*/
package console
