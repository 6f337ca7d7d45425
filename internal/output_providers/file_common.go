package outputproviders

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// GetFullPath constructs the full file path from filename and output path
func GetFullPath(filename string, outputPath string) string {
	return outputPath + string(os.PathSeparator) + filename
}

// DefaultFileName builds a collision-free file name for a tool's output
func DefaultFileName(prefix, extension string) string {
	return fmt.Sprintf("%s-%s.%s", prefix, GenerateShortUUID(), extension)
}

// GenerateShortUUID generates a random 10-character UUID
func GenerateShortUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}

// writeFileAtomic writes through a temp file in the destination
// directory and renames it into place, so a failed write never leaves
// a partial file behind.
func writeFileAtomic(fullpath string, write func(w io.Writer) error) error {
	dir := filepath.Dir(fullpath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(fullpath)+".tmp-*")
	if err != nil {
		return err
	}

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), fullpath)
}
