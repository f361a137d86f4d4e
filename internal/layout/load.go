package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrRecordSectionMissing indicates that [record] is missing in a manifest.
	ErrRecordSectionMissing = errors.New("missing [record]")
	// ErrNoFields indicates that a manifest declares no [[record.fields]].
	ErrNoFields = errors.New("no fields declared")
)

type manifestField struct {
	Name   string `toml:"name"`
	Type   string `toml:"type"`
	Endian string `toml:"endian"`
}

type manifest struct {
	Record struct {
		Name   string          `toml:"name"`
		Fields []manifestField `toml:"fields"`
	} `toml:"record"`
}

// LoadFile parses a record layout manifest from a TOML file.
func LoadFile(path string) (*Layout, error) {
	var cfg manifest
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	lay, err := fromManifest(&cfg, meta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lay, nil
}

// Load parses a record layout manifest from TOML text.
func Load(data string) (*Layout, error) {
	var cfg manifest
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return fromManifest(&cfg, meta)
}

func fromManifest(cfg *manifest, meta toml.MetaData) (*Layout, error) {
	if !meta.IsDefined("record") {
		return nil, ErrRecordSectionMissing
	}
	if len(cfg.Record.Fields) == 0 {
		return nil, ErrNoFields
	}

	lay := &Layout{
		Name:   strings.TrimSpace(cfg.Record.Name),
		Fields: make([]Field, 0, len(cfg.Record.Fields)),
	}
	seen := make(map[string]struct{}, len(cfg.Record.Fields))
	for i, mf := range cfg.Record.Fields {
		name := strings.TrimSpace(mf.Name)
		if name == "" {
			return nil, fmt.Errorf("field #%d: missing name", i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("field %q: duplicate name", name)
		}
		seen[name] = struct{}{}

		ft, ok := ParseFieldType(strings.TrimSpace(mf.Type))
		if !ok {
			return nil, fmt.Errorf("field %q: unknown type %q", name, mf.Type)
		}
		endian, ok := ParseEndian(strings.TrimSpace(mf.Endian))
		if !ok {
			return nil, fmt.Errorf("field %q: unknown endian %q (must be big, little or native)", name, mf.Endian)
		}
		lay.Fields = append(lay.Fields, Field{Name: name, Type: ft, Endian: endian})
	}
	return lay, nil
}
