package console

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/finiteconsole/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleView() domain.View {
	return domain.View{
		MenuID: "main",
		Title:  "Main",
		Options: []domain.OptionView{
			{Inp: "1", Label: "Square", To: "square"},
			{Inp: "2", To: "exit"},
		},
	}
}

func TestTextHandler_Output(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewTextHandler(strings.NewReader(""), out)

	require.NoError(t, h.Output(context.Background(), sampleView()))
	assert.Equal(t, "Main\n  1) Square\n  2) exit\n", out.String())
}

func TestTextHandler_OutputFallsBackToPlain(t *testing.T) {
	out := &bytes.Buffer{}
	failing := func(domain.View) (string, error) { return "", errors.New("boom") }
	h := NewTextHandler(strings.NewReader(""), out, WithRenderer(failing))

	require.NoError(t, h.Output(context.Background(), sampleView()))
	assert.Contains(t, out.String(), "1) Square")
}

func TestTextHandler_Input(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewTextHandler(strings.NewReader("1\n  2  \nlast"), out, WithPrompt("? "))
	ctx := context.Background()

	for _, want := range []string{"1", "2", "last"} {
		got, err := h.Input(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := h.Input(ctx)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 4, strings.Count(out.String(), "? "))
}

func TestTextHandler_InputRetriesOnRejectedLine(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "8")
	out := &bytes.Buffer{}
	h := NewTextHandler(strings.NewReader("way too long for the limit\nok\n"), out)

	got, err := h.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Contains(t, out.String(), "Please try again")
}

func TestTextHandler_InputCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	h := NewTextHandler(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := h.Input(ctx)
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Input did not return after cancel")
	}
}

func TestTextHandler_Notice(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewTextHandler(strings.NewReader(""), out)

	require.NoError(t, h.Notice(context.Background(), "unknown option \"x\""))
	assert.Equal(t, "unknown option \"x\"\n", out.String())
}

func TestJSONHandler(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewJSONHandler(strings.NewReader("\"1\"\nplain\n"), out)
	ctx := context.Background()

	require.NoError(t, h.Output(ctx, sampleView()))
	require.NoError(t, h.Notice(ctx, "hi"))

	dec := json.NewDecoder(out)
	var f Frame
	require.NoError(t, dec.Decode(&f))
	assert.Equal(t, FrameView, f.Type)
	require.NotNil(t, f.View)
	assert.Equal(t, "main", f.View.MenuID)
	assert.Len(t, f.View.Options, 2)

	f = Frame{}
	require.NoError(t, dec.Decode(&f))
	assert.Equal(t, FrameNotice, f.Type)
	assert.Equal(t, "hi", f.Notice)

	got, err := h.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	got, err = h.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "plain", got)

	_, err = h.Input(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestScriptedHandler(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewScriptedHandler("1", "2").Echo(out, PlainRenderer)
	ctx := context.Background()

	require.NoError(t, h.Output(ctx, sampleView()))
	require.NoError(t, h.Notice(ctx, "note"))

	got, err := h.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	assert.Equal(t, 1, h.Remaining())

	got, err = h.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", got)

	_, err = h.Input(ctx)
	assert.ErrorIs(t, err, io.EOF)

	assert.Len(t, h.Views(), 1)
	assert.Equal(t, []string{"note"}, h.Notices())
	assert.Contains(t, out.String(), "1) Square")
	assert.Contains(t, out.String(), "note")
}

func TestScriptedHandler_Canceled(t *testing.T) {
	h := NewScriptedHandler("1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Input(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, h.Remaining())
}
