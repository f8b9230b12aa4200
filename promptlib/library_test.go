package promptlib

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeEntry(t *testing.T, dir string, kind Kind, name, content string) {
	t.Helper()
	kindDir := filepath.Join(dir, string(kind))
	require.NoError(t, os.MkdirAll(kindDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(kindDir, name+".txt"), []byte(content), 0o600))
}

func TestResolve_LibraryEntryTrimmed(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeEntry(t, dir, KindUser, "code-review", "  Review this code.\n")
	lib := New(dir)

	text, err := lib.Resolve("code-review", KindUser)
	require.NoError(t, err)
	assert.Equal(t, "Review this code.", text)
}

func TestResolve_KindsAreSeparate(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeEntry(t, dir, KindSystem, "developer", "You are a developer.")
	lib := New(dir)

	text, err := lib.Resolve("developer", KindSystem)
	require.NoError(t, err)
	assert.Equal(t, "You are a developer.", text)

	// The same name under the user kind has no entry and falls back to literal.
	text, err = lib.Resolve("developer", KindUser)
	require.NoError(t, err)
	assert.Equal(t, "developer", text)
}

func TestResolve_CachesEntry(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeEntry(t, dir, KindUser, "greet", "Hello")
	lib := New(dir)

	first, err := lib.Resolve("greet", KindUser)
	require.NoError(t, err)
	// Changing the file is not observed: entries are cached after first read.
	writeEntry(t, dir, KindUser, "greet", "Changed")
	second, err := lib.Resolve("greet", KindUser)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolve_FilePathVerbatim(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("  keep whitespace \n"), 0o600))
	lib := New(filepath.Join(dir, "prompts"))

	text, err := lib.Resolve(path, KindUser)
	require.NoError(t, err)
	assert.Equal(t, "  keep whitespace \n", text)
}

func TestResolve_TxtSuffixSkipsLibrary(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// A library entry named "notes" exists, but the argument "notes.txt"
	// carries the extension and so is never a library name.
	writeEntry(t, dir, KindUser, "notes", "library content")
	lib := New(dir)

	text, err := lib.Resolve("notes.txt", KindUser)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", text)
}

func TestResolve_LiteralFallback(t *testing.T) {
	t.Parallel()
	lib := New(filepath.Join(t.TempDir(), "prompts"))
	text, err := lib.Resolve("Explain quantum computing", KindUser)
	require.NoError(t, err)
	assert.Equal(t, "Explain quantum computing", text)
}

func TestList_SortedWithDescriptions(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeEntry(t, dir, KindUser, "zeta", "Last prompt\nbody")
	writeEntry(t, dir, KindUser, "alpha", "First prompt")
	writeEntry(t, dir, KindSystem, "developer", strings.Repeat("x", 100))
	lib := New(dir)

	listing, err := lib.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listing.User, 2)
	assert.Equal(t, "alpha", listing.User[0].Name)
	assert.Equal(t, "First prompt", listing.User[0].Description)
	assert.Equal(t, "zeta", listing.User[1].Name)
	assert.Equal(t, "Last prompt", listing.User[1].Description)
	require.Len(t, listing.System, 1)
	assert.Len(t, listing.System[0].Description, 60)
}

func TestList_MissingDirectories(t *testing.T) {
	t.Parallel()
	lib := New(filepath.Join(t.TempDir(), "absent"))
	listing, err := lib.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listing.User)
	assert.Empty(t, listing.System)
}

func TestList_IgnoresNonTxtAndSubdirs(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeEntry(t, dir, KindUser, "keep", "Kept")
	userDir := filepath.Join(dir, "user")
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "readme.md"), []byte("no"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(userDir, "nested.txt"), 0o755))
	lib := New(dir)

	listing, err := lib.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listing.User, 1)
	assert.Equal(t, "keep", listing.User[0].Name)
}
