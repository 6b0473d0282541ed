package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/offwiki/clean"
	main "github.com/fwojciec/offwiki/cmd/offwiki"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	return m
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("help shows kong output", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := newTestMain(t).Run(context.Background(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
		helpOutput := stdout.String()
		assert.Contains(t, helpOutput, "Usage:")
		assert.Contains(t, helpOutput, "harvest")
	})

	t.Run("no command is an error", func(t *testing.T) {
		t.Parallel()

		err := newTestMain(t).Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("clean rewrites a local file with a whitelist", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html",
			`<p>See <a href="./Physics">Physics</a> and <a href="./Chemistry">x</a></p>`)
		titles := writeFile(t, "titles.txt", "Physics\n\n")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"clean", page, "--whitelist", titles}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, clean.Doctype+`<p>See <a href="Physics.html">Physics</a> and x</p>`+"\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("clean renders markdown", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", `<p>See <a href="./Physics">Physics</a></p>`)
		titles := writeFile(t, "titles.txt", "Physics\n")

		stdout := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"clean", page, "--whitelist", titles, "--markdown"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "[Physics](Physics.html)")
		assert.NotContains(t, stdout.String(), "<p>")
	})

	t.Run("clean applies rules file", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", `<p>keep</p><aside>drop</aside>`)
		rules := writeFile(t, "rules.yaml", "ignoredTags: [aside]\n")

		stdout := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"--rules", rules, "clean", page}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, clean.Doctype+"<p>keep</p>\n", stdout.String())
	})

	t.Run("invalid rules file is an error", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", `<p>keep</p>`)
		rules := writeFile(t, "rules.yaml", "ignoredTag: [aside]\n")

		err := newTestMain(t).Run(context.Background(), []string{"--rules", rules, "clean", page}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load rules")
	})

	t.Run("list on a fresh database", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"list"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No articles found")
		_, statErr := os.Stat(m.DBPath)
		assert.NoError(t, statErr)
	})
}
