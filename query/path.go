package query

import (
	"reflect"
	"strconv"
	"strings"

	nt "searchbar/entity"
)

// Resolve walks a dotted path into a record and returns the leaf value.
//
// Maps with string keys are indexed by key, structs by exported field name or
// json/yaml tag name, slices and arrays by numeric index. A segment that is absent, or whose value is nil, yields a
// *MissingFieldError naming it.
func Resolve(record nt.Record, path string) (leaf any, err error) {

	current := any(record)
	for _, segment := range strings.Split(path, ".") {
		next, ok := field(current, segment)
		if !ok {
			err = &MissingFieldError{Path: path, Segment: segment}
			return
		}
		current = next
	}

	leaf = current
	return
}

// unexported

func field(current any, name string) (any, bool) {

	// fast path for decoded json and yaml
	if data, ok := current.(map[string]any); ok {
		val, ok := data[name]
		return val, ok && val != nil
	}

	val := reflect.ValueOf(current)
	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return nil, false
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Map:
		keyType := val.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil, false
		}
		return present(val.MapIndex(reflect.ValueOf(name).Convert(keyType)))

	case reflect.Struct:
		sf, ok := structField(val.Type(), name)
		if !ok {
			return nil, false
		}
		fv, err := val.FieldByIndexErr(sf.Index)
		if err != nil {
			return nil, false // nil embedded pointer
		}
		return present(fv)

	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(name)
		if err != nil || idx < 0 || idx >= val.Len() {
			return nil, false
		}
		return present(val.Index(idx))
	}

	return nil, false
}

func present(val reflect.Value) (any, bool) {

	if !val.IsValid() {
		return nil, false
	}

	switch val.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if val.IsNil() {
			return nil, false
		}
	}

	return val.Interface(), true
}

func structField(typ reflect.Type, name string) (reflect.StructField, bool) {

	if name == "" {
		return reflect.StructField{}, false
	}

	for _, sf := range reflect.VisibleFields(typ) {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		if sf.Name == name || tagName(sf, "json") == name || tagName(sf, "yaml") == name {
			return sf, true
		}
	}
	return reflect.StructField{}, false
}

func tagName(sf reflect.StructField, key string) string {

	tag, ok := sf.Tag.Lookup(key)
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}
