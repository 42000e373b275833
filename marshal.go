package telegraf

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

type memberRole uint8

const (
	roleField memberRole = iota
	roleTag
	roleTimestamp
)

// MarshalOption adjusts struct marshalling.
type MarshalOption func(*marshalConfig)

type marshalConfig struct {
	measurement string
}

// WithMeasurement overrides the measurement name, which otherwise defaults
// to the struct type's name.
func WithMeasurement(name string) MarshalOption {
	return func(c *marshalConfig) { c.measurement = name }
}

// MarshalPoint maps a struct value onto a Point. Member roles come from the
// `telegraf` struct tag, following the encoding/json `name[,role]` layout:
// roles are "tag", "field" and "timestamp", the default role is "field", an
// empty name keeps the Go member name and "-" skips the member entirely.
// Nil pointer members are omitted. A member in the timestamp role must be a
// time.Time, uint64 or non-negative int64.
//
//	type DiskUsage struct {
//		Host     string    `telegraf:"host,tag"`
//		Free     uint64    `telegraf:"free"`
//		UsedPct  float64   `telegraf:"used_pct"`
//		Sampled  time.Time `telegraf:",timestamp"`
//	}
//
// Unexported members are ignored. Tag members are rendered with fmt.Sprint,
// so any printable type can be a tag.
func MarshalPoint(v any, opts ...MarshalOption) (Point, error) {
	var cfg marshalConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Point{}, fmt.Errorf("cannot marshal nil %s", rv.Type())
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return Point{}, fmt.Errorf("cannot marshal %s into a point", rv.Type())
	}
	rt := rv.Type()

	measurement := cfg.measurement
	if measurement == "" {
		measurement = rt.Name()
	}
	p := NewPoint(measurement)

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		name := sf.Name
		role := roleField
		if tag, ok := sf.Tag.Lookup("telegraf"); ok {
			if tag == "-" {
				continue
			}
			tagName, tagRole, _ := strings.Cut(tag, ",")
			if tagName != "" {
				name = tagName
			}
			switch tagRole {
			case "", "field":
			case "tag":
				role = roleTag
			case "timestamp":
				role = roleTimestamp
			default:
				return Point{}, fmt.Errorf("unknown role %q on %s.%s", tagRole, rt.Name(), sf.Name)
			}
		}

		mv := rv.Field(i)
		if mv.Kind() == reflect.Pointer {
			if mv.IsNil() {
				continue
			}
			mv = mv.Elem()
		}

		switch role {
		case roleTag:
			p.AddTag(name, fmt.Sprint(mv.Interface()))
		case roleTimestamp:
			ts, err := timestampOf(mv)
			if err != nil {
				return Point{}, fmt.Errorf("%s.%s: %w", rt.Name(), sf.Name, err)
			}
			p.SetTimestamp(ts)
		default:
			fv, err := fieldValueOf(mv)
			if err != nil {
				return Point{}, fmt.Errorf("%s.%s: %w", rt.Name(), sf.Name, err)
			}
			p.AddFieldValue(name, fv)
		}
	}
	return *p, nil
}

// fieldValueOf converts a reflected member, falling back to its kind so that
// defined types like `type Celsius float64` map like their underlying type.
func fieldValueOf(v reflect.Value) (FieldValue, error) {
	if fv, err := NewFieldValue(v.Interface()); err == nil {
		return fv, nil
	}
	switch v.Kind() {
	case reflect.Bool:
		return Bool(v.Bool()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Uint(v.Uint()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(v.Int()), nil
	case reflect.Float32, reflect.Float64:
		return Float(v.Float()), nil
	case reflect.String:
		return String(v.String()), nil
	default:
		return FieldValue{}, &UnsupportedTypeError{Type: v.Type()}
	}
}

func timestampOf(v reflect.Value) (uint64, error) {
	if t, ok := v.Interface().(time.Time); ok {
		return uint64(t.UnixNano()), nil
	}
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		if n < 0 {
			return 0, fmt.Errorf("negative timestamp %d", n)
		}
		return uint64(n), nil
	default:
		return 0, fmt.Errorf("unsupported timestamp type %s", v.Type())
	}
}
