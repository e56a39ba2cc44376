package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadAndExpandYaml reads <baseDir>/<filename>.yml and expands ${VAR}
// references. Unset variables are an error, not an empty substitution.
func LoadAndExpandYaml(baseDir, filename string) (string, error) {
	file := filepath.Join(baseDir, filename+".yml")
	raw, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file, err)
	}

	expanded, err := ExpandEnvStrict(string(raw))
	if err != nil {
		return "", err
	}

	return expanded, nil
}
