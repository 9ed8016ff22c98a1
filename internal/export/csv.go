package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Rows converts a record slice into a header row plus one row per record.
// Columns are the first record's keys in declaration order; object- and
// array-valued fields are JSON-stringified. Every exporter shares this
// column contract.
func Rows(records any) (header []string, rows [][]string, err error) {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Slice {
		return nil, nil, fmt.Errorf("export: expected slice, got %s", v.Kind())
	}
	if v.Len() == 0 {
		return nil, nil, nil
	}

	header = columns(v.Index(0).Type())

	for i := 0; i < v.Len(); i++ {
		enc, err := json.Marshal(v.Index(i).Interface())
		if err != nil {
			return nil, nil, err
		}
		var record map[string]any
		if err := json.Unmarshal(enc, &record); err != nil {
			return nil, nil, err
		}

		row := make([]string, len(header))
		for j, col := range header {
			row[j] = cell(record[col])
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// CSV renders records per the export column contract.
func CSV(records any) ([]byte, error) {
	header, rows, err := Rows(records)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if header != nil {
		if err := w.Write(header); err != nil {
			return nil, err
		}
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func columns(t reflect.Type) []string {
	var cols []string
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name := strings.Split(tag, ",")[0]
		if name == "" || name == "-" {
			continue
		}
		cols = append(cols, name)
	}
	return cols
}

func cell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		enc, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(enc)
	}
}
