// Package content holds the site's editable copy as embedded YAML files.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var files embed.FS

// Decode strictly decodes the embedded file name into v. Unknown keys are an
// error so typos in the copy are caught by tests rather than silently dropped.
func Decode(name string, v any) error {
	return DecodeFS(files, path.Join("data", name), v)
}

// DecodeFS is Decode over an arbitrary filesystem.
func DecodeFS(fsys fs.FS, name string, v any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("decode %s: empty document", name)
		}
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// Files lists the embedded content files.
func Files() []string {
	entries, _ := fs.ReadDir(files, "data")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
