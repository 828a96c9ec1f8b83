package simpleexcel

import (
	"fmt"
	"reflect"
)

// normalizeRows turns the section data (a slice of structs, struct pointers
// or maps) into a uniform row representation keyed by field name.
func normalizeRows(data interface{}) ([]map[string]interface{}, error) {
	if data == nil {
		return nil, nil
	}

	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Slice {
		return nil, fmt.Errorf("expected a slice, got %v", val.Kind())
	}

	rows := make([]map[string]interface{}, val.Len())
	for i := 0; i < val.Len(); i++ {
		elem := val.Index(i)
		if elem.Kind() == reflect.Interface || elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}

		switch elem.Kind() {
		case reflect.Struct:
			rows[i] = structToRow(elem)
		case reflect.Map:
			row, err := mapToRow(elem)
			if err != nil {
				return nil, err
			}
			rows[i] = row
		default:
			return nil, fmt.Errorf("expected slice of structs or maps, got slice of %v", elem.Kind())
		}
	}
	return rows, nil
}

func structToRow(val reflect.Value) map[string]interface{} {
	row := make(map[string]interface{})
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		row[field.Name] = val.Field(i).Interface()
	}
	return row
}

func mapToRow(val reflect.Value) (map[string]interface{}, error) {
	if val.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("map rows must have string keys, got %v", val.Type().Key().Kind())
	}
	row := make(map[string]interface{}, val.Len())
	for _, key := range val.MapKeys() {
		row[key.String()] = val.MapIndex(key).Interface()
	}
	return row, nil
}
