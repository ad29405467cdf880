package signature

import (
	"slices"
	"strings"

	"argbind/args"
	"argbind/options"
	"argbind/primitive"
)

// File is the root of a signature file.
type File struct {
	Version    string      `yaml:"version"`
	Signatures []Signature `yaml:"signatures"`
}

// Signature lists the arguments of one native function in call order.
type Signature struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Args        []Arg  `yaml:"args"`
}

// Arg describes one logical argument.
type Arg struct {
	Name     string `yaml:"name,omitempty"`
	Kind     string `yaml:"kind"`
	Coerce   bool   `yaml:"coerce,omitempty"`
	Optional bool   `yaml:"optional,omitempty"`
	Default  any    `yaml:"default,omitempty"`

	// Capacity in bytes, string kind only.
	Capacity int `yaml:"capacity,omitempty"`
	// Tag names the native handle type, handle kind only.
	Tag string `yaml:"tag,omitempty"`

	// Integer kind only.
	Type  string `yaml:"type,omitempty"`
	Round string `yaml:"round,omitempty"`
	Clamp bool   `yaml:"clamp,omitempty"`

	// Properties of an object, or elements of an array.
	Properties []Arg `yaml:"properties,omitempty"`
}

const (
	KindNumber   = "number"
	KindBoolean  = "boolean"
	KindString   = "string"
	KindText     = "text"
	KindFunction = "function"
	KindHandle   = "handle"
	KindIgnore   = "ignore"
	KindInteger  = "integer"
	KindObject   = "object"
	KindArray    = "array"
)

var kindNames = []string{
	KindNumber, KindBoolean, KindString, KindText, KindFunction,
	KindHandle, KindIgnore, KindInteger, KindObject, KindArray,
}

var roundings = map[string]options.RoundEnum{
	"round": options.Round,
	"floor": options.Floor,
	"ceil":  options.Ceil,
	"trunc": options.Trunc,
}

// integerTypes maps Go integer type names to their primitive kinds.
var integerTypes = func() map[string]primitive.KindEnum {
	m := make(map[string]primitive.KindEnum)
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		if k.IsInteger() {
			m[strings.ToLower(strings.TrimPrefix(k.String(), "Kind"))] = k
		}
	}

	return m
}()

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)
	return keys
}

func (a *Arg) coerce() options.CoerceEnum {
	if a.Coerce {
		return options.Coerce
	}

	return options.NoCoerce
}

func (a *Arg) optional() options.OptionalEnum {
	if a.Optional {
		return options.Optional
	}

	return options.Required
}

func (a *Arg) clamp() options.ClampEnum {
	if a.Clamp {
		return options.Clamp
	}

	return options.NoClamp
}

// argKind is the descriptor kind an argument compiles to.
func argKind(kind string) (args.KindEnum, bool) {
	switch kind {
	case KindNumber:
		return args.KindNumber, true
	case KindBoolean:
		return args.KindBoolean, true
	case KindString, KindText:
		return args.KindString, true
	case KindFunction:
		return args.KindFunction, true
	case KindHandle:
		return args.KindNativeHandle, true
	case KindIgnore:
		return args.KindIgnore, true
	case KindInteger:
		return args.KindInteger, true
	case KindObject:
		return args.KindObject, true
	case KindArray:
		return args.KindArray, true
	}

	return 0, false
}

func hasNested(kind string) bool {
	return kind == KindObject || kind == KindArray
}

func acceptsDefault(kind string) bool {
	switch kind {
	case KindFunction, KindHandle, KindIgnore:
		return false
	}

	return true
}

func acceptsCoerce(kind string) bool {
	switch kind {
	case KindNumber, KindBoolean, KindString, KindText, KindInteger:
		return true
	}

	return false
}
