package helper

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// CloneContent 克隆指定的Git仓库到临时目录并返回克隆的路径
func CloneContent(gitURL string) (string, error) {
	tempDir, err := os.MkdirTemp("", "yeshu-clone-")
	if err != nil {
		return "", fmt.Errorf("创建临时目录失败: %w", err)
	}

	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:      gitURL,
		Progress: os.Stderr,
	})
	if err != nil {
		os.RemoveAll(tempDir)
		return "", fmt.Errorf("克隆仓库失败: %w", err)
	}

	return tempDir, nil
}

// IsGitRoot 判断路径是否为 git 仓库根目录
func IsGitRoot(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}
