package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestPreviewCmd_Use(t *testing.T) {
	assert.Equal(t, "preview <file.md>", previewCmd.Use)
}

func TestPreviewCmd_PrintsHTML(t *testing.T) {
	env := setupCLITest(t)
	path := writeFile(t, t.TempDir(), "Home.md", "# Home\n\n[[Docs|Docs]] [[img/logo.png]]\n")

	out, errOut, code := execute(t, "", "preview", path)
	require.Equal(t, ExitOK, code, errOut)
	assert.Contains(t, out, "<h1>Home</h1>")
	assert.Contains(t, out, `<a href="Docs">Docs</a>`)
	assert.Contains(t, out, `<img src="Home/logo.png" alt="logo.png" />`)
	assert.Empty(t, env.factory.opened)
}

func TestPreviewCmd_Links(t *testing.T) {
	setupCLITest(t)
	path := writeFile(t, t.TempDir(), "Home.md", "[[Docs|Docs]]\n[[img/logo.png]]\n")

	out, errOut, code := execute(t, "", "preview", "--links", path)
	require.Equal(t, ExitOK, code, errOut)
	assert.Contains(t, out, "reference  Docs -> Docs")
	assert.Contains(t, out, "resource   img/logo.png -> Home/logo.png")
}

func TestPreviewCmd_GreedyLinks(t *testing.T) {
	setupCLITest(t)
	path := writeFile(t, t.TempDir(), "P.md", "[[a|b]] and [[c|d]]\n")

	out, _, code := execute(t, "", "preview", path)
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, `<a href="b">a</a> and <a href="d">c</a>`)

	out, _, code = execute(t, "", "preview", "--greedy-links", path)
	require.Equal(t, ExitOK, code)
	assert.NotContains(t, out, `<a href="b">a</a>`)
}

func TestPreviewCmd_Errors(t *testing.T) {
	setupCLITest(t)

	_, _, code := execute(t, "", "preview")
	assert.Equal(t, ExitArgs, code)

	_, errOut, code := execute(t, "", "preview", filepath.Join(t.TempDir(), "missing.md"))
	assert.Equal(t, ExitPagesFailed, code)
	assert.Contains(t, errOut, "read failed")

	bad := writeFile(t, t.TempDir(), "Latin1.md", "caf\xe9")
	_, errOut, code = execute(t, "", "preview", bad)
	assert.Equal(t, ExitPagesFailed, code)
	assert.Contains(t, errOut, "Latin1")
}
