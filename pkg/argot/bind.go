// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argot

import (
	"fmt"
	"reflect"
)

// Bind populates dst, a pointer to a struct, from the parsed result.
// Fields are matched by their `arg` struct tag:
//
//	type flags struct {
//	    Verbose bool     `arg:"verbose"`
//	    Nums    []int64  `arg:"nums"`
//	    Src     string   `arg:"src"`
//	}
//
// Fields without a tag, and tags with no matching entry, are left at
// their zero value. Supported field types are bool, the signed integer
// kinds, float32/float64, string, and slices of those.
func Bind(r *Result, dst any) error {
	if !r.completed {
		return ErrNotParsed
	}
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind target must be a pointer to a struct, got %T", dst)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("arg")
		if name == "" {
			continue
		}
		vals, ok := r.entries[name]
		if !ok {
			continue
		}
		if err := setField(rv.Field(i), name, vals); err != nil {
			return err
		}
	}
	return nil
}

func setField(field reflect.Value, name string, vals []Value) error {
	if field.Kind() == reflect.Slice {
		slice := reflect.MakeSlice(field.Type(), len(vals), len(vals))
		for i, v := range vals {
			if err := setScalar(slice.Index(i), name, v); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}
	if len(vals) == 0 {
		return fmt.Errorf("argument %q holds no values", name)
	}
	return setScalar(field, name, vals[0])
}

func setScalar(field reflect.Value, name string, v Value) error {
	switch field.Kind() {
	case reflect.Bool:
		b, err := toBool(v.raw)
		if err != nil {
			return fmt.Errorf("argument %q: %w", name, err)
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := toInteger(v.raw)
		if err != nil {
			return fmt.Errorf("argument %q: %w", name, err)
		}
		if field.OverflowInt(n) {
			return fmt.Errorf("argument %q: value %d overflows %s", name, n, field.Type())
		}
		field.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := toFloat(v.raw)
		if err != nil {
			return fmt.Errorf("argument %q: %w", name, err)
		}
		field.SetFloat(f)
	case reflect.String:
		field.SetString(v.raw)
	default:
		return fmt.Errorf("argument %q: unsupported field type %s", name, field.Type())
	}
	return nil
}
