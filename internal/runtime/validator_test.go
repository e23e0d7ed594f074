package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/finiteconsole/internal/runtime"
	"github.com/aretw0/finiteconsole/pkg/domain"
)

func appendOption(t *testing.T, p *runtime.Program, m *domain.Menu, inp, out any, label string) {
	t.Helper()
	opt, err := p.Option(inp, out, label)
	require.NoError(t, err)
	_, err = m.Append(opt)
	require.NoError(t, err)
}

func TestResolveDependencies_Messages(t *testing.T) {
	p := runtime.NewProgram()

	empty, err := p.Menu("empty", nil)
	require.NoError(t, err)
	assert.Contains(t, p.ResolveDependencies().String(), "no options")

	empty.Action = noop
	assert.NotContains(t, p.ResolveDependencies().String(), "no options")

	assert.Contains(t, p.ResolveDependencies().String(), "The initial")
	require.NoError(t, p.SetInitMenu(empty))
	assert.NotContains(t, p.ResolveDependencies().String(), "The initial")

	main, err := p.Menu("main", nil)
	require.NoError(t, err)
	_, err = p.Menu("a", noop)
	require.NoError(t, err)
	appendOption(t, p, main, 1, "a", "")

	diags := p.ResolveDependencies()
	assert.Empty(t, diags.Errors())
	// main and a exist but "empty" is the entry point.
	assert.True(t, diags.Has(domain.ProblemUnreachable))
	assert.False(t, diags.Empty())
	assert.NoError(t, diags.Err())
}

func TestResolveDependencies_SoundGraph(t *testing.T) {
	p := runtime.NewProgram()
	main, _ := p.Menu("main", nil)
	_, _ = p.Menu("a", noop)
	appendOption(t, p, main, 1, "a", "")
	require.NoError(t, p.SetInitMenu(main))

	assert.True(t, p.ResolveDependencies().Empty())
}

func TestResolveDependencies_ReportsAllProblems(t *testing.T) {
	p := runtime.NewProgram()
	_, _ = p.Menu("dead", nil)
	_, _ = p.Menu("other", nil)

	diags := p.ResolveDependencies()
	require.Len(t, diags, 3)
	assert.Equal(t, domain.ProblemNoOptions, diags[0].Kind)
	assert.Equal(t, "dead", diags[0].MenuID)
	assert.Equal(t, domain.ProblemNoOptions, diags[1].Kind)
	assert.Equal(t, domain.ProblemInitialMenu, diags[2].Kind)
}

func TestResolveDependencies_DanglingAfterRemove(t *testing.T) {
	p := runtime.NewProgram()
	main, _ := p.Menu("main", nil)
	_, _ = p.Menu("a", noop)
	_, _ = p.Menu("b", noop)
	appendOption(t, p, main, 1, "a", "Go to A")
	appendOption(t, p, main, 2, "b", "Go to B")
	require.NoError(t, p.SetInitMenu(main))
	require.True(t, p.ResolveDependencies().Empty())

	p.Remove("b")

	diags := p.ResolveDependencies()
	require.True(t, diags.Has(domain.ProblemDanglingOption))
	assert.Contains(t, diags.String(), `points to unregistered menu "b"`)
	assert.Error(t, diags.Err())

	// The option itself is left in place.
	_, ok := main.Option(2)
	assert.True(t, ok)

	// A menu registered again under the same id is a different instance.
	_, _ = p.Menu("b", noop)
	assert.True(t, p.ResolveDependencies().Has(domain.ProblemDanglingOption))

	main.RemoveOptions(2)
	appendOption(t, p, main, 2, "b", "Go to B")
	assert.True(t, p.ResolveDependencies().Empty())
}

func TestResolveDependencies_InitialRemoved(t *testing.T) {
	p := runtime.NewProgram()
	main, _ := p.Menu("main", noop)
	require.NoError(t, p.SetInitMenu(main))
	p.Remove("main")

	diags := p.ResolveDependencies()
	require.True(t, diags.Has(domain.ProblemInitialMenu))
	assert.Contains(t, diags.String(), `The initial menu "main" is not registered`)
}

func TestResolveDependencies_Unreachable(t *testing.T) {
	p := runtime.NewProgram()
	main, _ := p.Menu("main", nil)
	inner, _ := p.Menu("inner", nil)
	_, _ = p.Menu("leaf", noop)
	island, _ := p.Menu("island", nil)
	appendOption(t, p, main, 1, "inner", "")
	appendOption(t, p, inner, 1, "main", "")
	appendOption(t, p, island, 1, "leaf", "")
	require.NoError(t, p.SetInitMenu(main))

	diags := p.ResolveDependencies()
	assert.Empty(t, diags.Errors())
	warnings := diags.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "island", warnings[0].MenuID)
	assert.Equal(t, "leaf", warnings[1].MenuID)
	assert.NoError(t, diags.Err())
}
