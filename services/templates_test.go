package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTemplateStore(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "home.html"), []byte("<html>home</html>"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "expertise.html"), []byte("<html>shell</html>"), 0644))

	store, err := NewTemplateStore(dir)
	assert.NoError(t, err)
	assert.Equal(t, "<html>home</html>", store.Home())
	assert.Equal(t, "<html>shell</html>", store.Expertise())
}

func TestNewTemplateStoreMissingDocument(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "home.html"), []byte("<html></html>"), 0644))

	_, err := NewTemplateStore(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expertise")
}
