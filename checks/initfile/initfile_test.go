package initfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCheckTree(t *testing.T) {
	root := t.TempDir()

	write(t, filepath.Join(root, "good", "doc.go"), "// Package good is documented.\npackage good\n")
	write(t, filepath.Join(root, "good", "extra.go"), "package good\n\nfunc helper() {}\n")
	write(t, filepath.Join(root, "bad", "code.go"), "package bad\n\nfunc helper() {}\n")
	write(t, filepath.Join(root, "testdata", "fixture.go"), "package fixture\n")

	violations, err := CheckTree(root)
	require.NoError(t, err)

	require.Len(t, violations, 1)
	assert.Equal(t, filepath.Join(root, "bad"), violations[0].Dir)
	assert.Equal(t, "bad", violations[0].Package)
}

func TestCheckTreeDocCommentMustTouchClause(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "gap", "code.go"),
		"// Comment separated by a blank line.\n\npackage gap\n")

	violations, err := CheckTree(root)
	require.NoError(t, err)
	assert.Len(t, violations, 1)
}

func TestCheckTreeTestFilesDoNotCount(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "pkg", "code.go"), "package pkg\n")
	write(t, filepath.Join(root, "pkg", "code_test.go"), "// Package pkg tested.\npackage pkg\n")

	violations, err := CheckTree(root)
	require.NoError(t, err)
	assert.Len(t, violations, 1)
}

func TestViolationString(t *testing.T) {
	v := Violation{Dir: "scraper", Package: "scraper"}
	assert.Equal(t, "scraper: package scraper has no package doc comment", v.String())
}
