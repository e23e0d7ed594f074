/*
Package domain contains the core models of the menu graph.

It defines the entities the program walks at runtime: menus, the options that connect
them and the diagnostics produced when the graph is checked before a loop starts. The
package performs no I/O and does not know about the program registry; registration and
resolution of targets by id happen in the runtime.

# Key Entities

  - Menu: a node of the graph. Navigation menus carry options, finite menus carry an Action.
  - Option: an input-keyed edge from one menu to another.
  - Target: the destination of an option, either a menu id or a menu reference.
  - Diagnostics: the problems found by dependency resolution.
  - View: what a renderer needs to present the current menu.
*/
package domain
