package minify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_Name(t *testing.T) {
	assert.Equal(t, Name, New().Name())
}

func TestProcessor_Process(t *testing.T) {
	p := New(WithKeepWhitespace(false))

	out, err := p.Process(context.Background(), "<p>\n  <b>bold</b>\n</p>\n<br />")
	require.NoError(t, err)
	assert.Contains(t, out, "<b>bold</b>")
	assert.Contains(t, out, "</p>")
	assert.Less(t, len(out), len("<p>\n  <b>bold</b>\n</p>\n<br />"))
}

func TestProcessor_KeepsSelfClosingTags(t *testing.T) {
	p := New()

	out, err := p.Process(context.Background(), `<p>a<br />b</p><img src="P/x.png" alt="x.png" />`)
	require.NoError(t, err)
	assert.Contains(t, out, "/>")
	assert.Contains(t, out, `src="P/x.png"`)
}
