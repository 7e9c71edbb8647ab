package util

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

var (
	projectRootDir     string
	projectRootDirOnce sync.Once
)

// GetProjectRootDir returns the absolute path of the repository root,
// overridable through PROJECT_ROOT_DIR.
func GetProjectRootDir() string {
	projectRootDirOnce.Do(func() {
		if dir := os.Getenv("PROJECT_ROOT_DIR"); dir != "" {
			projectRootDir = dir
			return
		}

		_, file, _, ok := runtime.Caller(0)
		if !ok {
			projectRootDir = "/app"
			return
		}

		// this file lives in internal/util
		projectRootDir = filepath.Join(filepath.Dir(file), "..", "..")
	})

	return projectRootDir
}
