package nav

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ArgKind is the type of a single argument field.
type ArgKind int

const (
	KindString ArgKind = iota
	KindInt
	KindBool
)

func (k ArgKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ArgField declares one argument accepted by a destination.
type ArgField struct {
	Name     string
	Kind     ArgKind
	Required bool
	Default  any // used when the field is optional and absent
}

// ArgSchema is the ordered argument declaration of a destination.
type ArgSchema []ArgField

// Args are the values bound to a back stack entry.
type Args map[string]any

// Clone returns a shallow copy. Values are scalars so this is a full copy.
func (a Args) Clone() Args {
	if len(a) == 0 {
		return nil
	}
	out := make(Args, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// String renders args as a stable query string.
func (a Args) String() string {
	if len(a) == 0 {
		return ""
	}
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(fmt.Sprint(a[k])))
	}
	return strings.Join(parts, "&")
}

// Equal reports whether both arg sets hold the same values. Nil and empty
// are equal.
func (a Args) Equal(b Args) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || v != w {
			return false
		}
	}
	return true
}

// Field returns the field declaration for name.
func (s ArgSchema) Field(name string) (ArgField, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return ArgField{}, false
}

func (s ArgSchema) hasRequired() bool {
	for _, f := range s {
		if f.Required {
			return true
		}
	}
	return false
}

func (s ArgSchema) validateDefinition() error {
	seen := make(map[string]struct{}, len(s))
	for _, f := range s {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("argument with empty name")
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("duplicate argument %q", f.Name)
		}
		seen[f.Name] = struct{}{}
		if f.Kind < KindString || f.Kind > KindBool {
			return fmt.Errorf("argument %q has unsupported kind %s", f.Name, f.Kind)
		}
		if f.Default != nil {
			if _, err := normalize(f, f.Default); err != nil {
				return fmt.Errorf("argument %q default: %v", f.Name, err)
			}
		}
	}
	return nil
}

// Validate checks args against the schema and returns a normalized copy
// with defaults filled in. Ints of any width are normalized to int.
func (s ArgSchema) Validate(args Args) (Args, error) {
	for name := range args {
		if _, ok := s.Field(name); !ok {
			return nil, mismatch(name, "not declared")
		}
	}

	out := make(Args, len(s))
	for _, f := range s {
		raw, present := args[f.Name]
		if !present || raw == nil {
			if f.Required {
				return nil, mismatch(f.Name, "required %s missing", f.Kind)
			}
			if f.Default != nil {
				v, _ := normalize(f, f.Default)
				out[f.Name] = v
			}
			continue
		}
		v, err := normalize(f, raw)
		if err != nil {
			return nil, err
		}
		out[f.Name] = v
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// Coerce converts string values (from a route or command line) to the
// declared kinds, then validates.
func (s ArgSchema) Coerce(values map[string]string) (Args, error) {
	args := make(Args, len(values))
	for name, raw := range values {
		f, ok := s.Field(name)
		if !ok {
			return nil, mismatch(name, "not declared")
		}
		switch f.Kind {
		case KindInt:
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, mismatch(name, "want int, got %q", raw)
			}
			args[name] = n
		case KindBool:
			b, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				return nil, mismatch(name, "want bool, got %q", raw)
			}
			args[name] = b
		default:
			args[name] = raw
		}
	}
	return s.Validate(args)
}

func normalize(f ArgField, v any) (any, error) {
	switch f.Kind {
	case KindString:
		s, ok := v.(string)
		if !ok {
			return nil, mismatch(f.Name, "want string, got %T", v)
		}
		if f.Required && strings.TrimSpace(s) == "" {
			return nil, mismatch(f.Name, "required string is empty")
		}
		return s, nil
	case KindInt:
		switch n := v.(type) {
		case int:
			return n, nil
		case int8:
			return int(n), nil
		case int16:
			return int(n), nil
		case int32:
			return int(n), nil
		case int64:
			return int(n), nil
		case uint8:
			return int(n), nil
		case uint16:
			return int(n), nil
		case uint32:
			return int(n), nil
		case float64:
			if n != math.Trunc(n) {
				return nil, mismatch(f.Name, "want int, got %v", n)
			}
			return int(n), nil
		}
		return nil, mismatch(f.Name, "want int, got %T", v)
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, mismatch(f.Name, "want bool, got %T", v)
		}
		return b, nil
	}
	return nil, mismatch(f.Name, "unsupported kind %s", f.Kind)
}

// Decode binds args onto a typed record. Fields are matched by the `arg`
// struct tag, falling back to a case-insensitive field name match.
func Decode[T any](args Args) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &out,
		TagName: "arg",
	})
	if err != nil {
		return out, fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(map[string]any(args)); err != nil {
		return out, fmt.Errorf("%w: %v", ErrArgumentMismatch, err)
	}
	return out, nil
}

// ParseRoute splits a route of the form "id?key=value&key=value" into the
// destination id and its raw argument values.
func ParseRoute(route string) (string, map[string]string, error) {
	route = strings.TrimSpace(route)
	id, query, _ := strings.Cut(route, "?")
	id = strings.Trim(id, "/ ")
	if id == "" {
		return "", nil, fmt.Errorf("route %q: empty destination", route)
	}
	if query == "" {
		return id, nil, nil
	}
	parsed, err := url.ParseQuery(query)
	if err != nil {
		return "", nil, fmt.Errorf("route %q: %w", route, err)
	}
	values := make(map[string]string, len(parsed))
	for k, v := range parsed {
		if len(v) > 1 {
			return "", nil, fmt.Errorf("route %q: argument %q repeated", route, k)
		}
		values[k] = v[0]
	}
	return id, values, nil
}
