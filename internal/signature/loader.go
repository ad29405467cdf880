package signature

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"argbind/internal/match"
	"argbind/utils"
)

var ErrUnknownSignature = errors.New("unknown signature")

// LoadFile loads and parses a YAML signature file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read signature file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signature YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Signatures {
		nameArgs(f.Signatures[i].Args, "arg", true)
	}
}

// nameArgs names anonymous arguments after stem and defaults integer
// options. Object properties are never named: they are looked up by
// their name, so a missing one is reported by Validate instead.
func nameArgs(list []Arg, stem string, anonymous bool) {
	taken := make(map[string]struct{}, len(list))
	for _, a := range list {
		if a.Name != "" {
			taken[a.Name] = struct{}{}
		}
	}

	names := utils.NewStem(stem, taken)

	for i := range list {
		a := &list[i]

		if a.Name == "" && anonymous {
			a.Name = names.Next()
		}

		if a.Kind == KindInteger {
			if a.Type == "" {
				a.Type = "int"
			}

			if a.Round == "" {
				a.Round = "round"
			}
		}

		switch a.Kind {
		case KindObject:
			nameArgs(a.Properties, "prop", false)
		case KindArray:
			nameArgs(a.Properties, "item", true)
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// Lookup finds the signature called name.
func (f *File) Lookup(name string) (*Signature, error) {
	names := make([]string, len(f.Signatures))
	for i := range f.Signatures {
		if f.Signatures[i].Name == name {
			return &f.Signatures[i], nil
		}

		names[i] = f.Signatures[i].Name
	}

	if s := match.Suggest(name, names); s != "" {
		return nil, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownSignature, name, s)
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownSignature, name)
}
