package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/finiteconsole/internal/runtime"
	"github.com/aretw0/finiteconsole/pkg/domain"
)

func TestProgram_Registration(t *testing.T) {
	p := runtime.NewProgram()
	assert.Zero(t, p.Len())

	main, err := p.Menu("main", nil)
	require.NoError(t, err)
	exit, err := p.Menu("exit", nil)
	require.NoError(t, err)
	menus := []*domain.Menu{main, exit}
	assert.Equal(t, len(menus), p.Len())

	_, err = p.Menu("main", nil)
	assert.ErrorIs(t, err, domain.ErrMenuExists)
	assert.Equal(t, len(menus), p.Len())

	for _, m := range menus {
		got, ok := p.Lookup(m.ID)
		require.True(t, ok)
		assert.Same(t, m, got)
		assert.Contains(t, p.Menus(), m)
	}

	for i, m := range menus {
		assert.True(t, p.Remove(m.ID))
		assert.Equal(t, len(menus)-i-1, p.Len())
		assert.NotContains(t, p.Menus(), m)
	}
	assert.False(t, p.Remove("main"))
}

func TestProgram_RemoveMixedIDs(t *testing.T) {
	p := runtime.NewProgram()
	menus := []*domain.Menu{
		domain.NewMenu("1", nil),
		domain.NewMenu("2", nil),
		domain.NewMenu("3", nil),
		domain.NewMenu(4, nil),
	}
	require.NoError(t, p.Register(menus...))

	for _, m := range menus {
		assert.Contains(t, p.Menus(), m)
		p.Remove(m)
		assert.NotContains(t, p.Menus(), m)
	}
}

func TestProgram_RegisterIsAtomic(t *testing.T) {
	p := runtime.NewProgram()
	_, err := p.Menu("main", nil)
	require.NoError(t, err)

	err = p.Register(domain.NewMenu("a", nil), domain.NewMenu("main", nil))
	assert.ErrorIs(t, err, domain.ErrMenuExists)
	_, ok := p.Lookup("a")
	assert.False(t, ok)

	err = p.Register(domain.NewMenu("b", nil), domain.NewMenu("b", nil))
	assert.ErrorIs(t, err, domain.ErrMenuExists)
	assert.Equal(t, 1, p.Len())

	err = p.Register(domain.NewMenu(nil, nil))
	assert.ErrorIs(t, err, domain.ErrInvalidMenu)
}

func TestProgram_OptionBinding(t *testing.T) {
	p := runtime.NewProgram()
	main, _ := p.Menu("main", nil)
	exit, _ := p.Menu("exit", nil)

	_, err := p.Option(nil, nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidOption)

	opt, err := p.Option(1, "main", "")
	require.NoError(t, err)
	assert.Same(t, main, opt.Out())

	opt, err = p.Option(1, "exit", "")
	require.NoError(t, err)
	assert.Same(t, exit, opt.Out())

	opt, err = p.Option(1, main, "")
	require.NoError(t, err)
	assert.Same(t, main, opt.Out())

	opt, err = p.Option(1, domain.ByID(exit.ID), "")
	require.NoError(t, err)
	assert.Same(t, exit, opt.Out())

	_, err = p.Option(1, "missing", "")
	assert.ErrorIs(t, err, domain.ErrUnresolvedTarget)
}

func TestProgram_InitMenu(t *testing.T) {
	p := runtime.NewProgram()
	assert.Error(t, p.SetInitMenu("main"))
	assert.Nil(t, p.InitMenu())

	main, _ := p.Menu("main", nil)
	require.NoError(t, p.SetInitMenu(main))
	assert.Same(t, main, p.InitMenu())
	assert.Same(t, main, p.Current())

	assert.ErrorIs(t, p.SetInitMenu(domain.NewMenu("main", nil)), domain.ErrUnresolvedTarget)
}

func TestProgram_ArgsQueue(t *testing.T) {
	p := runtime.NewProgram()
	p.PushArgs(1, "two")
	p.PushArgs(3.0)
	assert.Equal(t, []any{1, "two", 3.0}, p.Args())

	args := p.Args()
	args[0] = "mutated"
	assert.Equal(t, 1, p.Args()[0])

	p.ClearArgs()
	assert.Empty(t, p.Args())
}

func TestProgram_Clear(t *testing.T) {
	p := runtime.NewProgram()
	main, _ := p.Menu("main", nil)
	require.NoError(t, p.SetInitMenu(main))
	p.PushArgs(1)

	p.Clear()
	assert.Zero(t, p.Len())
	assert.Nil(t, p.InitMenu())
	assert.Nil(t, p.Current())
	assert.Empty(t, p.Args())
}
