package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsGitRoot(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsGitRoot(dir))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))
	assert.True(t, IsGitRoot(dir))

	// .git 是普通文件时不算仓库根目录
	other := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(other, ".git"), []byte("gitdir: elsewhere"), 0644))
	assert.False(t, IsGitRoot(other))
}
