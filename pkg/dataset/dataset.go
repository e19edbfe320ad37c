// Package dataset loads the static project and notification data the
// service is seeded with.
package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the bundled dataset
func Default() (*model.Dataset, error) {
	ds, err := Parse(defaultYAML)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse bundled dataset")
	}
	return ds, nil
}

// Parse decodes and validates a YAML dataset. Unknown fields are rejected.
func Parse(data []byte) (*model.Dataset, error) {
	var ds model.Dataset

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
		return nil, goerr.Wrap(err, "failed to parse YAML dataset", goerr.T(model.ErrTagInvalidInput))
	}

	if err := ds.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid dataset")
	}
	return &ds, nil
}

// LoadFile reads a dataset from a YAML file
func LoadFile(path string) (*model.Dataset, error) {
	if path == "" {
		return nil, goerr.New("dataset file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "dataset file not found", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read dataset file", goerr.V("path", path))
	}

	ds, err := Parse(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load dataset file", goerr.V("path", path))
	}
	return ds, nil
}
