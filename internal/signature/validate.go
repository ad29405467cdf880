package signature

import (
	"fmt"
	"strconv"

	"argbind/internal/diagnostic"
	"argbind/internal/match"
)

// Validate checks a parsed signature file for mistakes Compile would
// reject or silently ignore.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "signature file is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q", f.Version), "", "", "1")
	}

	seen := map[string]struct{}{}

	for i := range f.Signatures {
		s := &f.Signatures[i]

		if s.Name == "" {
			res.AddError("missing_signature_name", fmt.Sprintf("signature #%d has no name", i), "", "")
		} else if _, ok := seen[s.Name]; ok {
			res.AddError("duplicate_signature", fmt.Sprintf("duplicate signature %q", s.Name), s.Name, "")
		}

		seen[s.Name] = struct{}{}

		validateArgs(res, s.Name, "", s.Args)
	}

	return res
}

func validateArgs(res *diagnostic.Diagnostics, sig, parent string, list []Arg) {
	seen := map[string]struct{}{}

	for i := range list {
		a := &list[i]

		path := a.Name
		if path == "" {
			path = "#" + strconv.Itoa(i)
		}

		if parent != "" {
			path = parent + "." + path
		}

		if a.Name != "" {
			if _, ok := seen[a.Name]; ok {
				res.AddError("duplicate_argument", fmt.Sprintf("duplicate argument %q", a.Name), sig, path)
			}

			seen[a.Name] = struct{}{}
		}

		validateArg(res, sig, path, a)
	}
}

func validateArg(res *diagnostic.Diagnostics, sig, path string, a *Arg) {
	if _, ok := argKind(a.Kind); !ok {
		res.AddError("unknown_kind", fmt.Sprintf("unknown kind %q", a.Kind), sig, path, match.Suggest(a.Kind, kindNames))
		return
	}

	if a.Kind == KindString && a.Capacity <= 0 {
		res.AddError("missing_capacity", "string arguments need a positive capacity", sig, path)
	}

	if a.Kind != KindString && a.Capacity != 0 {
		res.AddWarning("unused_field", "capacity is ignored for "+a.Kind, sig, path, KindString)
	}

	if a.Kind == KindHandle && a.Tag == "" {
		res.AddError("missing_tag", "handle arguments need a tag", sig, path)
	}

	if a.Kind != KindHandle && a.Tag != "" {
		res.AddWarning("unused_field", "tag is ignored for "+a.Kind, sig, path, KindHandle)
	}

	if a.Kind == KindInteger {
		if _, ok := integerTypes[a.Type]; !ok {
			res.AddError("unknown_type", fmt.Sprintf("unknown integer type %q", a.Type), sig, path,
				match.Suggest(a.Type, sortedKeys(integerTypes)))
		}

		if _, ok := roundings[a.Round]; !ok {
			res.AddError("unknown_rounding", fmt.Sprintf("unknown rounding %q", a.Round), sig, path,
				match.Suggest(a.Round, sortedKeys(roundings)))
		}
	} else if a.Type != "" || a.Round != "" || a.Clamp {
		res.AddWarning("unused_field", "integer options are ignored for "+a.Kind, sig, path, KindInteger)
	}

	if a.Coerce && !acceptsCoerce(a.Kind) {
		res.AddWarning("unused_field", a.Kind+" arguments are never coerced", sig, path)
	}

	if a.Optional && a.Kind == KindIgnore {
		res.AddWarning("unused_field", "ignored arguments are always optional", sig, path)
	}

	if a.Default != nil && !acceptsDefault(a.Kind) {
		res.AddError("unsupported_default", a.Kind+" arguments cannot have a default", sig, path)
	}

	if !hasNested(a.Kind) {
		if len(a.Properties) > 0 {
			res.AddError("unexpected_properties", "only object and array arguments have properties", sig, path)
		}

		return
	}

	if a.Kind == KindObject {
		for j, p := range a.Properties {
			if p.Name == "" {
				res.AddError("missing_property_name", fmt.Sprintf("property #%d has no name", j), sig, path)
			}
		}
	}

	validateArgs(res, sig, path, a.Properties)
}
