package loader

import (
	"context"
	"testing"

	"github.com/aretw0/finiteconsole/internal/runtime"
	"github.com/aretw0/finiteconsole/pkg/console"
	"github.com/aretw0/finiteconsole/pkg/domain"
	"github.com/aretw0/finiteconsole/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_CoercesScalars(t *testing.T) {
	def, err := Parse([]byte(`
init: main
args: [5]
menus:
  - id: main
    options:
      - {inp: 1, to: done}
  - id: done
    action: noop
`))
	require.NoError(t, err)
	assert.Equal(t, "main", def.Init)
	assert.Equal(t, []any{5}, def.Args)
	require.Len(t, def.Menus, 2)
	assert.Equal(t, "1", def.Menus[0].Options[0].Inp)
	assert.Equal(t, "noop", def.Menus[1].Action)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Empty", ``},
		{"Unknown Key", "menus:\n  - id: a\n    colour: red\n"},
		{"Missing Id", "menus:\n  - title: nameless\n"},
		{"Duplicate Id", "menus:\n  - id: a\n  - id: a\n"},
		{"Missing Inp", "menus:\n  - id: a\n    options:\n      - {to: a}\n"},
		{"Missing To", "menus:\n  - id: a\n    options:\n      - {inp: 1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidDefinition)
		})
	}
}

func TestParse_Syntax(t *testing.T) {
	_, err := Parse([]byte("menus: [unclosed"))
	assert.Error(t, err)
}

func TestLoadAndBuild(t *testing.T) {
	def, err := Load("testdata/calc.yaml")
	require.NoError(t, err)

	p := runtime.NewProgram()
	require.NoError(t, Build(p, registry.NewWithBuiltins(), def))

	assert.Equal(t, 5, p.Len())
	assert.Equal(t, "main", p.InitMenu().ID)
	assert.Equal(t, []any{2, "3"}, p.Args())
	assert.Empty(t, p.ResolveDependencies())

	main, _ := p.Lookup("main")
	assert.Equal(t, "Calculator", main.Title)
	opt, ok := main.Option("1")
	require.True(t, ok)
	assert.Equal(t, "add", opt.Out().ID)

	h := console.NewScriptedHandler("2", "b", "1")
	res, err := p.Start(context.Background(), h)
	require.NoError(t, err)
	assert.Equal(t, 5.0, res)
	assert.Len(t, h.Views(), 3)
}

func TestBuild_UnknownAction(t *testing.T) {
	def, err := Parse([]byte("menus:\n  - id: a\n    action: launch\n"))
	require.NoError(t, err)

	err = Build(runtime.NewProgram(), registry.NewWithBuiltins(), def)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestBuild_UnknownDestination(t *testing.T) {
	def, err := Parse([]byte("menus:\n  - id: a\n    options:\n      - {inp: 1, to: nowhere}\n"))
	require.NoError(t, err)

	err = Build(runtime.NewProgram(), nil, def)
	assert.ErrorIs(t, err, domain.ErrUnresolvedTarget)
}

func TestBuild_UnknownInit(t *testing.T) {
	def, err := Parse([]byte("init: ghost\nmenus:\n  - id: a\n    action: noop\n"))
	require.NoError(t, err)

	err = Build(runtime.NewProgram(), registry.NewWithBuiltins(), def)
	assert.ErrorIs(t, err, domain.ErrUnresolvedTarget)
}

func TestBuild_FailureRollsBack(t *testing.T) {
	p := runtime.NewProgram()

	bad, err := Parse([]byte("menus:\n  - id: a\n    options:\n      - {inp: 1, to: nowhere}\n"))
	require.NoError(t, err)
	require.Error(t, Build(p, nil, bad))
	assert.Zero(t, p.Len())

	good, err := Parse([]byte(`
init: a
menus:
  - id: a
    options:
      - {inp: 1, to: b}
  - id: b
    options:
      - {inp: 1, to: a}
`))
	require.NoError(t, err)
	require.NoError(t, Build(p, nil, good))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "a", p.InitMenu().ID)
}

func TestBuild_FailedInitRollsBack(t *testing.T) {
	p := runtime.NewProgram()

	def, err := Parse([]byte("init: ghost\nmenus:\n  - id: a\n    action: noop\n"))
	require.NoError(t, err)
	require.Error(t, Build(p, registry.NewWithBuiltins(), def))

	_, ok := p.Lookup("a")
	assert.False(t, ok)
}
