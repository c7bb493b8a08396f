//go:build integration

package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ReadFile(t *testing.T) {
	fs := NewFS()
	target := filepath.Join(t.TempDir(), "button.tsx")
	content := []byte("export { Button };\n")
	require.NoError(t, os.WriteFile(target, content, 0o644))

	data, err := fs.ReadFile(target)
	assert.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestFS_IsNotExist(t *testing.T) {
	fs := NewFS()

	_, err := fs.ReadFile(filepath.Join(t.TempDir(), "missing.tsx"))
	require.Error(t, err)
	assert.True(t, fs.IsNotExist(err))
	assert.True(t, fs.IsNotExist(fmt.Errorf("wrapped: %w", err)))

	assert.False(t, fs.IsNotExist(os.ErrPermission))
	assert.False(t, fs.IsNotExist(nil))
}
