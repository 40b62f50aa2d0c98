// Package fixture loads match-expression descriptions from YAML files and
// builds checker inputs out of them. A fixture is structured data, not
// surface syntax: the patterns arrive already normalized, the way a
// front end would hand them to the checker.
//
// Schema:
//
//	name: option with gap
//	type:
//	  kind: enum            # enum | tuple | struct | bool | int | slice
//	  name: Option
//	  variants:
//	    - name: None
//	    - name: Some
//	      fields: [{kind: bool}]
//	arms:
//	  - pattern: {ctor: Some, subs: [{bool: true}]}
//	  - pattern: {ctor: None}
//	    guard: true
//
// Pattern nodes set exactly one of: wildcard, ctor (+subs), or, bool, int,
// range, tuple, slice, bind. Tuple and struct patterns use `tuple` and
// `ctor: <StructName>` respectively.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"martianoff/matchcheck/internal/checker"
)

// File is one parsed fixture: a scrutinee type plus arms in source order.
type File struct {
	Name string    `yaml:"name"`
	Type TypeSpec  `yaml:"type"`
	Arms []ArmSpec `yaml:"arms"`
}

// TypeSpec describes a scrutinee type. Kind selects which of the other
// fields apply.
type TypeSpec struct {
	Kind     string        `yaml:"kind"`
	Name     string        `yaml:"name,omitempty"`
	Variants []VariantSpec `yaml:"variants,omitempty"` // enum
	Elems    []TypeSpec    `yaml:"elems,omitempty"`    // tuple
	Fields   []FieldSpec   `yaml:"fields,omitempty"`   // struct
	Min      *int64        `yaml:"min,omitempty"`      // int domain low
	Max      *int64        `yaml:"max,omitempty"`      // int domain high
	Elem     *TypeSpec     `yaml:"elem,omitempty"`     // slice
}

// VariantSpec is one enum variant.
type VariantSpec struct {
	Name   string     `yaml:"name"`
	Fields []TypeSpec `yaml:"fields,omitempty"`
}

// FieldSpec is one struct field.
type FieldSpec struct {
	Name string   `yaml:"name"`
	Type TypeSpec `yaml:"type"`
}

// ArmSpec is one match arm.
type ArmSpec struct {
	Pattern PatternSpec `yaml:"pattern"`
	Guard   bool        `yaml:"guard,omitempty"`
}

// PatternSpec is a normalized pattern node; exactly one field group is set.
type PatternSpec struct {
	Wildcard bool           `yaml:"wildcard,omitempty"`
	Ctor     string         `yaml:"ctor,omitempty"`
	Subs     []PatternSpec  `yaml:"subs,omitempty"`
	Or       []PatternSpec  `yaml:"or,omitempty"`
	Bool     *bool          `yaml:"bool,omitempty"`
	Int      *int64         `yaml:"int,omitempty"`
	Range    *RangeSpec     `yaml:"range,omitempty"`
	Tuple    []PatternSpec  `yaml:"tuple,omitempty"`
	Slice    *[]PatternSpec `yaml:"slice,omitempty"`
	Bind     *BindSpec      `yaml:"bind,omitempty"`
}

// RangeSpec is an inclusive integer range.
type RangeSpec struct {
	Lo int64 `yaml:"lo"`
	Hi int64 `yaml:"hi"`
}

// BindSpec is a named binding around an inner pattern.
type BindSpec struct {
	Name  string      `yaml:"name"`
	Inner PatternSpec `yaml:"inner"`
}

// Parse decodes a fixture from YAML content.
func Parse(content []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("decoding fixture: %w", err)
	}
	return &f, nil
}

// Load reads and decodes a fixture file.
func Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	return Parse(content)
}

// Build resolves the fixture into checker inputs: the scrutinee type, the
// pattern arena holding all arm patterns, and the arms in source order.
func (f *File) Build() (checker.Type, *checker.Arena, []checker.Arm, error) {
	scrutinee, err := buildType(&f.Type)
	if err != nil {
		return nil, nil, nil, err
	}
	arena := checker.NewArena()
	arms := make([]checker.Arm, len(f.Arms))
	for i, arm := range f.Arms {
		pat, err := buildPattern(arena, scrutinee, &arm.Pattern)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("arm %d: %w", i, err)
		}
		arms[i] = checker.Arm{Pattern: pat, HasGuard: arm.Guard}
	}
	return scrutinee, arena, arms, nil
}

func buildType(ts *TypeSpec) (checker.Type, error) {
	switch ts.Kind {
	case "bool":
		return &checker.BoolType{}, nil

	case "int":
		if ts.Min == nil || ts.Max == nil {
			return nil, fmt.Errorf("int type needs min and max")
		}
		return &checker.IntType{Name: ts.Name, Lo: *ts.Min, Hi: *ts.Max}, nil

	case "enum":
		variants := make([]checker.Variant, len(ts.Variants))
		for i, vs := range ts.Variants {
			fields, err := buildTypes(vs.Fields)
			if err != nil {
				return nil, err
			}
			variants[i] = checker.Variant{Name: vs.Name, Fields: fields}
		}
		return &checker.EnumType{Name: ts.Name, Variants: variants}, nil

	case "tuple":
		elems, err := buildTypes(ts.Elems)
		if err != nil {
			return nil, err
		}
		return &checker.TupleType{Elems: elems}, nil

	case "struct":
		fields := make([]checker.Type, len(ts.Fields))
		names := make([]string, len(ts.Fields))
		for i, fs := range ts.Fields {
			ft, err := buildType(&fs.Type)
			if err != nil {
				return nil, err
			}
			fields[i] = ft
			names[i] = fs.Name
		}
		return &checker.StructType{Name: ts.Name, Fields: fields, FieldNames: names}, nil

	case "slice":
		if ts.Elem == nil {
			return nil, fmt.Errorf("slice type needs elem")
		}
		elem, err := buildType(ts.Elem)
		if err != nil {
			return nil, err
		}
		return &checker.SliceType{Elem: elem}, nil
	}
	return nil, fmt.Errorf("unknown type kind %q", ts.Kind)
}

func buildTypes(specs []TypeSpec) ([]checker.Type, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	types := make([]checker.Type, len(specs))
	for i := range specs {
		t, err := buildType(&specs[i])
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}

func buildPattern(a *checker.Arena, t checker.Type, ps *PatternSpec) (checker.PatternID, error) {
	switch {
	case ps.Wildcard:
		return a.Wildcard(), nil

	case ps.Bind != nil:
		inner, err := buildPattern(a, t, &ps.Bind.Inner)
		if err != nil {
			return 0, err
		}
		return a.Binding(ps.Bind.Name, inner), nil

	case len(ps.Or) > 0:
		alts := make([]checker.PatternID, len(ps.Or))
		for i := range ps.Or {
			alt, err := buildPattern(a, t, &ps.Or[i])
			if err != nil {
				return 0, err
			}
			alts[i] = alt
		}
		return a.Or(alts...), nil

	case ps.Bool != nil:
		return a.Bool(*ps.Bool), nil

	case ps.Int != nil:
		return a.Int(*ps.Int), nil

	case ps.Range != nil:
		return a.Range(ps.Range.Lo, ps.Range.Hi), nil

	case len(ps.Tuple) > 0:
		tt, ok := t.(*checker.TupleType)
		if !ok {
			return 0, fmt.Errorf("tuple pattern against type %s", t)
		}
		subs, err := buildSubs(a, tt.Elems, ps.Tuple)
		if err != nil {
			return 0, err
		}
		return a.Single(subs...), nil

	case ps.Slice != nil:
		st, ok := t.(*checker.SliceType)
		if !ok {
			return 0, fmt.Errorf("slice pattern against type %s", t)
		}
		elems := make([]checker.Type, len(*ps.Slice))
		for i := range elems {
			elems[i] = st.Elem
		}
		subs, err := buildSubs(a, elems, *ps.Slice)
		if err != nil {
			return 0, err
		}
		return a.Slice(subs...), nil

	case ps.Ctor != "":
		return buildCtorPattern(a, t, ps)
	}
	return 0, fmt.Errorf("pattern node sets no shape")
}

func buildCtorPattern(a *checker.Arena, t checker.Type, ps *PatternSpec) (checker.PatternID, error) {
	switch ty := t.(type) {
	case *checker.EnumType:
		for i, v := range ty.Variants {
			if v.Name != ps.Ctor {
				continue
			}
			subs, err := buildSubs(a, v.Fields, ps.Subs)
			if err != nil {
				return 0, err
			}
			return a.Variant(i, subs...), nil
		}
		return 0, fmt.Errorf("enum %s has no variant %q", ty.Name, ps.Ctor)

	case *checker.StructType:
		if ps.Ctor != ty.Name {
			return 0, fmt.Errorf("struct pattern %q against type %s", ps.Ctor, ty.Name)
		}
		subs, err := buildSubs(a, ty.Fields, ps.Subs)
		if err != nil {
			return 0, err
		}
		return a.Single(subs...), nil
	}
	return 0, fmt.Errorf("constructor pattern %q against type %s", ps.Ctor, t)
}

func buildSubs(a *checker.Arena, types []checker.Type, specs []PatternSpec) ([]checker.PatternID, error) {
	if len(specs) != len(types) {
		return nil, fmt.Errorf("got %d subpatterns, type has %d fields", len(specs), len(types))
	}
	subs := make([]checker.PatternID, len(specs))
	for i := range specs {
		sub, err := buildPattern(a, types[i], &specs[i])
		if err != nil {
			return nil, err
		}
		subs[i] = sub
	}
	return subs, nil
}
