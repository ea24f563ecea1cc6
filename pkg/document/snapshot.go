package document

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/johnmorse/rhinoinsertcommand/pkg/errors"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// snapshot is the on-disk form of a table
type snapshot struct {
	// Document is the path of the model file the table belongs to
	Document    string                   `toml:"document" yaml:"document"`
	Definitions []types.DefinitionRecord `toml:"definitions" yaml:"definitions"`
}

// Load reads a table snapshot. Files ending in .yaml or .yml are YAML,
// everything else is TOML.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTableLoad, "cannot read definition table %s", path)
	}
	return Parse(data, isYAML(path))
}

// Parse decodes a snapshot held in memory
func Parse(data []byte, asYAML bool) (*Table, error) {
	var snap snapshot
	var err error
	if asYAML {
		err = yaml.Unmarshal(data, &snap)
	} else {
		err = toml.Unmarshal(data, &snap)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTableLoad, "cannot parse definition table")
	}
	return NewTable(snap.Document, snap.Definitions...), nil
}

// Save writes the table using the format implied by the file extension
func (t *Table) Save(path string) error {
	snap := snapshot{Document: t.path, Definitions: t.records}

	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(&snap)
	} else {
		data, err = toml.Marshal(&snap)
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrTableSave, "cannot encode definition table")
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrTableSave, "cannot create directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrTableSave, "cannot write definition table %s", path)
	}
	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
