package debugui

import (
	"fmt"
	"reflect"
)

// Field is a flattened, addressable view of one scalar field of a record.
// Embedded structs are flattened; named nested structs get a dotted path.
type Field struct {
	Path  string
	Value reflect.Value
}

// Fields flattens the scalar fields of the struct that record points to.
func Fields(record any) []Field {
	v := reflect.ValueOf(record)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil
	}
	var out []Field
	collectFields(v.Elem(), "", &out)
	return out
}

func collectFields(v reflect.Value, prefix string, out *[]Field) {
	for _, info := range globalReflectionCache.Fields(v.Type()) {
		fv := v.Field(info.Index)
		path := info.Name
		if prefix != "" {
			path = prefix + "." + info.Name
		}
		if info.IsPointer {
			// Pointers are shown but not followed.
			*out = append(*out, Field{Path: path, Value: fv})
			continue
		}
		if fv.Kind() == reflect.Struct {
			if info.Embedded {
				collectFields(fv, prefix, out)
			} else {
				collectFields(fv, path, out)
			}
			continue
		}
		*out = append(*out, Field{Path: path, Value: fv})
	}
}

// Set assigns x to the field, converting between numeric kinds.
func (f Field) Set(x any) error {
	if !f.Value.CanSet() {
		return fmt.Errorf("%s is read-only", f.Path)
	}
	switch f.Value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := asFloat(x)
		if !ok {
			return fmt.Errorf("%s: cannot assign %T", f.Path, x)
		}
		f.Value.SetInt(int64(n))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := asFloat(x)
		if !ok || n < 0 {
			return fmt.Errorf("%s: cannot assign %v", f.Path, x)
		}
		f.Value.SetUint(uint64(n))
	case reflect.Float32, reflect.Float64:
		n, ok := asFloat(x)
		if !ok {
			return fmt.Errorf("%s: cannot assign %T", f.Path, x)
		}
		f.Value.SetFloat(n)
	case reflect.Bool:
		b, ok := x.(bool)
		if !ok {
			return fmt.Errorf("%s: cannot assign %T", f.Path, x)
		}
		f.Value.SetBool(b)
	case reflect.String:
		s, ok := x.(string)
		if !ok {
			return fmt.Errorf("%s: cannot assign %T", f.Path, x)
		}
		f.Value.SetString(s)
	default:
		return fmt.Errorf("%s: unsupported kind %s", f.Path, f.Value.Kind())
	}
	return nil
}

func asFloat(x any) (float64, bool) {
	switch n := x.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
