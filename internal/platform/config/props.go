package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/SscSPs/md_util/internal/apperrors"
	"github.com/magiconair/properties"
)

// LoadProps reads a Java-style .properties file from disk.
// A missing file is reported as apperrors.ErrNotFound.
func LoadProps(path string) (*properties.Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: unable to find properties %s", apperrors.ErrNotFound, path)
		}
		return nil, fmt.Errorf("unable to read properties %s: %w", path, err)
	}
	return parseProps(path, data)
}

// LoadPropsFS reads a .properties file from fsys, e.g. an embedded resource tree.
func LoadPropsFS(fsys fs.FS, name string) (*properties.Properties, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: unable to find properties %s", apperrors.ErrNotFound, name)
		}
		return nil, fmt.Errorf("unable to read properties %s: %w", name, err)
	}
	return parseProps(name, data)
}

func parseProps(name string, data []byte) (*properties.Properties, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("exception loading properties %s: %w", name, err)
	}
	return props, nil
}
