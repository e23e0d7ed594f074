// Package loader reads menu graph definitions from YAML and builds them into a program.
//
// A definition looks like:
//
//	init: main
//	args: [5]
//	menus:
//	  - id: main
//	    title: Main menu
//	    options:
//	      - {inp: 1, to: square, label: Square}
//	      - {inp: q, to: quit}
//	  - id: square
//	    action: sum
//	  - id: quit
//	    action: noop
package loader
