package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes one generated file into the target directory,
// creating the directory if needed.
func WriteFile(file *File, dir string) error {
	err := os.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	outputPath := filepath.Join(dir, file.Filename)

	err = os.WriteFile(outputPath, file.Content, filePerm)
	if err != nil {
		return fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	return nil
}
