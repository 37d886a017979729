// Package manifest loads shape definitions from YAML files and
// materializes them into validated shapes.
//
// A manifest lists named shape entries:
//
//	shapes:
//	  - name: wheel
//	    kind: circle
//	    measurements: [2.5]
//	  - name: gable
//	    kind: triangle
//	    measurements: [3, 4, 5]
//
// Entries are validated through the shapes constructors, so a manifest
// with an impossible shape fails to build with the offending entry named
// in the error.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/planimeter/internal/errors"
	"github.com/conneroisu/planimeter/internal/shapes"
)

// Entry is a single shape definition in a manifest.
type Entry struct {
	Name         string    `yaml:"name"`
	Kind         string    `yaml:"kind"`
	Measurements []float64 `yaml:"measurements"`
}

// Manifest is a parsed collection of shape definitions.
type Manifest struct {
	Shapes []Entry `yaml:"shapes"`
}

// NamedShape pairs a validated shape with its manifest name.
type NamedShape struct {
	Name  string
	Shape shapes.Shape
}

// Parse decodes a YAML manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.NewValidationError(
			errors.ErrCodeManifestInvalid,
			"cannot parse manifest YAML",
		).WithContext("cause", err.Error())
	}

	if len(m.Shapes) == 0 {
		return nil, errors.NewValidationError(
			errors.ErrCodeManifestInvalid,
			"manifest defines no shapes",
		)
	}

	return &m, nil
}

// LoadFile reads and parses a manifest file.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError(
			errors.ErrCodeManifestNotFound,
			"cannot read manifest: "+path,
			err,
		)
	}

	return Parse(data)
}

// Build materializes every entry into a validated shape. The first entry
// that fails validation aborts the build with its name in the error.
func (m *Manifest) Build() ([]NamedShape, error) {
	built := make([]NamedShape, 0, len(m.Shapes))

	for i, entry := range m.Shapes {
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("shape[%d]", i)
		}

		kind, err := shapes.ParseKind(entry.Kind)
		if err != nil {
			return nil, wrapEntryError(name, err)
		}

		s, err := shapes.New(kind, entry.Measurements)
		if err != nil {
			return nil, wrapEntryError(name, err)
		}

		built = append(built, NamedShape{Name: name, Shape: s})
	}

	return built, nil
}

func wrapEntryError(name string, err error) error {
	if ge, ok := err.(*errors.GeometryError); ok {
		return ge.WithContext("entry", name)
	}
	return err
}
