package template

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// isoTimeLayout matches JavaScript's Date.toISOString output for UTC times.
const isoTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Format coerces a resolved value to its rendered string form: strings pass
// through, numbers use their decimal representation (non-finite floats
// become "0"), times render as ISO-8601 UTC, slices join their formatted
// elements with ", ", functions render as "[Function]", nil renders empty,
// and everything else is JSON without indentation.
func Format(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return formatFloat(val)
	case float32:
		return formatFloat(float64(val))
	case time.Time:
		return val.UTC().Format(isoTimeLayout)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Func:
		return "[Function]"
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = Format(rv.Index(i).Interface())
		}
		return strings.Join(parts, ", ")
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return ""
		}
		return Format(rv.Elem().Interface())
	}

	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Truthy reports JavaScript-style truthiness: false, zero, empty string,
// NaN, and nil are falsy; everything else (including empty slices and maps)
// is truthy.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0 && !math.IsNaN(val)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
