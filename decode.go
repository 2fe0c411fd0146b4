package tomledit

import (
	"fmt"
	"reflect"
	"strings"
)

// Decode populates v, a pointer to a struct, a string-keyed map, or an
// interface{}, with the document's values, in the idiom of go-toml's
// struct mapping: fields are matched by a `toml:"name"` tag, falling back
// to the field name as written or in lower case (see
// structFieldsByTOMLName).
func (doc *Document) Decode(v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("tomledit: Decode requires a non-nil pointer, got %T", v)
	}
	return decodeTable(doc.root, rv.Elem())
}

// Unmarshal parses data and decodes it directly into v.
func Unmarshal(data []byte, v interface{}) error {
	doc, err := Parse(data)
	if err != nil {
		return err
	}
	return doc.Decode(v)
}

func decodeTable(t *Table, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Struct:
		return decodeTableIntoStruct(t, rv)
	case reflect.Map:
		return decodeTableIntoMap(t, rv)
	case reflect.Interface:
		m := reflect.ValueOf(map[string]interface{}{})
		if err := decodeTableIntoMap(t, m); err != nil {
			return err
		}
		rv.Set(m)
		return nil
	default:
		return fmt.Errorf("tomledit: cannot decode a table into %s", rv.Kind())
	}
}

func decodeTableIntoStruct(t *Table, rv reflect.Value) error {
	fields := structFieldsByTOMLName(rv.Type())
	for _, e := range t.Entries() {
		name := e.Key.Parsed()
		fi, ok := fields[name]
		if !ok {
			continue
		}
		field := rv.Field(fi)
		if err := decodeItem(*e.Item, field); err != nil {
			return fmt.Errorf("tomledit: field %q: %w", name, err)
		}
	}
	return nil
}

func decodeTableIntoMap(t *Table, rv reflect.Value) error {
	if rv.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("tomledit: map key type must be string, got %s", rv.Type().Key())
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMap(rv.Type()))
	}
	elemType := rv.Type().Elem()
	for _, e := range t.Entries() {
		elem := reflect.New(elemType).Elem()
		if err := decodeItem(*e.Item, elem); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(e.Key.Parsed()).Convert(rv.Type().Key()), elem)
	}
	return nil
}

func decodeItem(it Item, rv reflect.Value) error {
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}

	switch it.Kind() {
	case ItemTable:
		tbl, _ := it.AsTable()
		return decodeTable(tbl, rv)
	case ItemArrayOfTables:
		arr, _ := it.AsArrayOfTables()
		return decodeArrayOfTablesInto(arr, rv)
	case ItemValue:
		v, _ := it.AsValue()
		return decodeValue(v, rv)
	default:
		return nil
	}
}

func decodeArrayOfTablesInto(a *ArrayOfTables, rv reflect.Value) error {
	if rv.Kind() != reflect.Slice {
		return fmt.Errorf("tomledit: cannot decode an array of tables into %s", rv.Kind())
	}
	out := reflect.MakeSlice(rv.Type(), a.Len(), a.Len())
	for i := 0; i < a.Len(); i++ {
		if err := decodeTable(a.Get(i), out.Index(i)); err != nil {
			return err
		}
	}
	rv.Set(out)
	return nil
}

func decodeValue(v Value, rv reflect.Value) error {
	if v == nil {
		return nil
	}
	if rv.Kind() == reflect.Interface {
		rv.Set(reflect.ValueOf(nativeValue(v)))
		return nil
	}

	switch val := v.(type) {
	case *StringValue:
		if rv.Kind() != reflect.String {
			return fmt.Errorf("cannot assign string into %s", rv.Kind())
		}
		rv.SetString(val.Parsed)
	case *IntegerValue:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			rv.SetInt(val.Parsed)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			rv.SetUint(uint64(val.Parsed))
		case reflect.Float32, reflect.Float64:
			rv.SetFloat(float64(val.Parsed))
		default:
			return fmt.Errorf("cannot assign integer into %s", rv.Kind())
		}
	case *FloatValue:
		if rv.Kind() != reflect.Float32 && rv.Kind() != reflect.Float64 {
			return fmt.Errorf("cannot assign float into %s", rv.Kind())
		}
		rv.SetFloat(val.Parsed)
	case *BooleanValue:
		if rv.Kind() != reflect.Bool {
			return fmt.Errorf("cannot assign boolean into %s", rv.Kind())
		}
		rv.SetBool(val.Parsed)
	case *DatetimeValue:
		rv.Set(reflect.ValueOf(val.Parsed))
	case *Array:
		if rv.Kind() != reflect.Slice {
			return fmt.Errorf("cannot assign array into %s", rv.Kind())
		}
		out := reflect.MakeSlice(rv.Type(), val.Len(), val.Len())
		for i := 0; i < val.Len(); i++ {
			if err := decodeValue(val.Get(i), out.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(out)
	case *InlineTable:
		switch rv.Kind() {
		case reflect.Struct:
			fields := structFieldsByTOMLName(rv.Type())
			for _, e := range val.iter() {
				fi, ok := fields[e.key.Parsed()]
				if !ok {
					continue
				}
				vv, _ := e.item.AsValue()
				if err := decodeValue(vv, rv.Field(fi)); err != nil {
					return err
				}
			}
		case reflect.Map:
			if rv.IsNil() {
				rv.Set(reflect.MakeMap(rv.Type()))
			}
			for _, e := range val.iter() {
				vv, _ := e.item.AsValue()
				elem := reflect.New(rv.Type().Elem()).Elem()
				if err := decodeValue(vv, elem); err != nil {
					return err
				}
				rv.SetMapIndex(reflect.ValueOf(e.key.Parsed()), elem)
			}
		default:
			return fmt.Errorf("cannot assign inline table into %s", rv.Kind())
		}
	}
	return nil
}

// nativeValue unwraps v into the plain Go type Decode uses for
// `interface{}` destinations.
func nativeValue(v Value) interface{} {
	switch val := v.(type) {
	case *StringValue:
		return val.Parsed
	case *IntegerValue:
		return val.Parsed
	case *FloatValue:
		return val.Parsed
	case *BooleanValue:
		return val.Parsed
	case *DatetimeValue:
		return val.Parsed
	case *Array:
		out := make([]interface{}, val.Len())
		for i := 0; i < val.Len(); i++ {
			out[i] = nativeValue(val.Get(i))
		}
		return out
	case *InlineTable:
		out := make(map[string]interface{}, val.Len())
		for _, e := range val.iter() {
			vv, _ := e.item.AsValue()
			out[e.key.Parsed()] = nativeValue(vv)
		}
		return out
	default:
		return nil
	}
}

// structFieldsByTOMLName maps a TOML key name to its struct field index,
// honoring `toml:"name"` tags and otherwise using the Go field name. Each
// name is registered as written and in lower case, so a key matches only
// in one of those two spellings; other case variants do not match. A
// `toml:"-"` tag excludes the field.
func structFieldsByTOMLName(t reflect.Type) map[string]int {
	out := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}
		tag := f.Tag.Get("toml")
		if tag == "-" {
			continue
		}
		name := f.Name
		if tag != "" {
			if idx := strings.IndexByte(tag, ','); idx >= 0 {
				tag = tag[:idx]
			}
			if tag != "" {
				name = tag
			}
		}
		out[name] = i
		out[strings.ToLower(name)] = i
	}
	return out
}
