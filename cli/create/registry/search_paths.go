package registry

import (
	"os"
	"path/filepath"
	"strings"
)

// searchPathClasses collects class names available in template search
// paths: directories and tar.gz archives named after the class.
func searchPathClasses(searchPaths []string) []string {
	classes := []string{}

	for _, searchPath := range searchPaths {
		entries, err := os.ReadDir(searchPath)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			eName := entry.Name()
			ext := filepath.Ext(eName)
			if entry.IsDir() {
				classes = append(classes, eName)
			} else if ext == ".tgz" {
				classes = append(classes, strings.TrimSuffix(eName, ".tgz"))
			} else if ext == ".gz" && filepath.Ext(strings.TrimSuffix(eName, ".gz")) == ".tar" {
				classes = append(classes, strings.TrimSuffix(eName, ".tar.gz"))
			}
		}
	}

	return classes
}
