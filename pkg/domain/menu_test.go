package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/finiteconsole/pkg/domain"
)

func square(_ context.Context, args ...any) (any, error) {
	n := args[0].(int)
	return n * n, nil
}

func mustOption(t *testing.T, inp any, to *domain.Menu, label string) *domain.Option {
	t.Helper()
	opt, err := domain.NewOption(inp, domain.ByRef(to), label)
	require.NoError(t, err)
	return opt
}

func TestMenu_FiniteState(t *testing.T) {
	main := domain.NewMenu("main", nil)
	assert.False(t, main.IsFinite())
	assert.Nil(t, main.Action)

	counter := domain.NewMenu("counter", square)
	assert.True(t, counter.IsFinite())
	assert.NotNil(t, counter.Action)
}

func TestMenu_IDCoercion(t *testing.T) {
	assert.Equal(t, "4", domain.NewMenu(4, nil).ID)
	assert.Equal(t, "main", domain.NewMenu("  main ", nil).ID)
	assert.Equal(t, "", domain.NewMenu(nil, nil).ID)
}

func TestMenu_OptionsManagement(t *testing.T) {
	menu := domain.NewMenu("main", nil)
	one := domain.NewMenu("one", nil)
	two := domain.NewMenu("two", nil)
	three := domain.NewMenu("three", nil)
	assert.Zero(t, menu.Len())

	opt := mustOption(t, 1, one, "")
	_, err := menu.Append(opt)
	require.NoError(t, err)
	assert.Equal(t, 1, menu.Len())
	got, ok := menu.Option("1")
	require.True(t, ok)
	assert.Same(t, opt, got)

	menu.Clear()
	options := []*domain.Option{
		mustOption(t, 1, one, ""),
		mustOption(t, 2, two, ""),
		mustOption(t, 3, three, ""),
	}
	_, err = menu.Append(options...)
	require.NoError(t, err)
	for _, o := range options {
		got, ok := menu.Option(o.Inp)
		require.True(t, ok)
		assert.Same(t, o, got)
	}
	assert.Equal(t, len(options), menu.Len())

	t.Run("Remove By Instance", func(t *testing.T) {
		for _, o := range options {
			menu.RemoveOptions(o)
			_, ok := menu.Option(o.Inp)
			assert.False(t, ok)
		}
		assert.Zero(t, menu.Len())
	})

	t.Run("Remove By Key", func(t *testing.T) {
		_, err := menu.Append(options...)
		require.NoError(t, err)
		for _, o := range options {
			menu.RemoveOptions(o.Inp)
		}
		assert.Zero(t, menu.Len())
	})

	t.Run("Remove Absent Is NoOp", func(t *testing.T) {
		assert.NotPanics(t, func() {
			menu.RemoveOptions("42", 7, options[0])
		})
		assert.Zero(t, menu.Len())
	})
}

func TestMenu_RemoveForeignInstance(t *testing.T) {
	dest := domain.NewMenu("dest", nil)
	menu := domain.NewMenu("main", nil)
	registered := mustOption(t, 1, dest, "registered")
	_, err := menu.Append(registered)
	require.NoError(t, err)

	// Same input, different instance: the mapping must survive.
	menu.RemoveOptions(mustOption(t, 1, dest, "other"))
	assert.Equal(t, 1, menu.Len())
}

func TestMenu_UndeterminedOptions(t *testing.T) {
	dest := domain.NewMenu("dest", nil)
	menu, err := domain.NewMenu(1, nil).Append(mustOption(t, 1, dest, "repeated"))
	require.NoError(t, err)

	for _, label := range []string{"a", "b", "c"} {
		_, err := menu.Append(mustOption(t, 1, dest, label))
		assert.ErrorIs(t, err, domain.ErrUndeterminedOption)
		assert.Equal(t, 1, menu.Len())
	}

	got, _ := menu.Option(1)
	assert.Equal(t, "repeated", got.Label)
}

func TestMenu_AppendIsAtomic(t *testing.T) {
	dest := domain.NewMenu("dest", nil)
	menu := domain.NewMenu("main", nil)

	_, err := menu.Append(mustOption(t, 1, dest, ""), mustOption(t, 2, dest, ""), mustOption(t, 1, dest, ""))
	assert.ErrorIs(t, err, domain.ErrUndeterminedOption)
	assert.Zero(t, menu.Len())

	unresolved, err := domain.NewOption(3, domain.ByID("dest"), "")
	require.NoError(t, err)
	_, err = menu.Append(mustOption(t, 1, dest, ""), unresolved)
	assert.ErrorIs(t, err, domain.ErrUnresolvedTarget)
	assert.Zero(t, menu.Len())
}

func TestMenu_OptionsOrder(t *testing.T) {
	dest := domain.NewMenu("dest", nil)
	menu := domain.NewMenu("main", nil)
	for _, inp := range []any{10, "q", 2, 1} {
		_, err := menu.Append(mustOption(t, inp, dest, ""))
		require.NoError(t, err)
	}

	var order []string
	for _, o := range menu.Options() {
		order = append(order, o.Inp)
	}
	assert.Equal(t, []string{"1", "2", "10", "q"}, order)
}
