package syncer

import (
	"encoding/json"
	"time"

	"github.com/glowdesk/salon-manager/internal/models"
)

// The tabular mirror is lossy in three known ways: date-only cells come
// back as full timestamps, time-only cells come back anchored to the
// sheet epoch (1899-12-30), and list-valued fields come back as JSON
// strings. Each table declares which fields need which repair; nothing
// is type-sniffed.

type fieldKind int

const (
	kindDate fieldKind = iota // timestamp -> "2006-01-02"
	kindClock                 // epoch-anchored timestamp -> "15:04"
	kindList                  // JSON string -> decoded list, empty on failure
)

var schemas = map[string]map[string]fieldKind{
	models.TableStaff: {
		"specialty": kindList,
	},
	models.TableCustomers: {
		"birthday":    kindDate,
		"anniversary": kindDate,
		"coupons":     kindList,
	},
	models.TableAppointments: {
		"date": kindDate,
		"time": kindClock,
	},
	models.TableSales: {
		"date":  kindDate,
		"items": kindList,
	},
	models.TableCombos: {
		"service_names": kindList,
	},
	models.TableLeads: {
		"comments": kindList,
	},
	models.TableAttendance: {
		"date": kindDate,
	},
}

// Sanitize repairs one table's rows in place and returns them.
func Sanitize(table string, rows []map[string]any) []map[string]any {
	schema, ok := schemas[table]
	if !ok {
		return rows
	}

	for _, row := range rows {
		for field, kind := range schema {
			val, ok := row[field].(string)
			if !ok {
				continue
			}
			switch kind {
			case kindDate:
				row[field] = toDate(val)
			case kindClock:
				row[field] = toClock(val)
			case kindList:
				row[field] = toList(val)
			}
		}
	}
	return rows
}

// toDate truncates a round-tripped timestamp to its calendar day.
// Already-normalized values pass through.
func toDate(v string) string {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return v
	}
	return t.UTC().Format("2006-01-02")
}

// toClock extracts hour and minute from an epoch-anchored timestamp.
func toClock(v string) string {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return v
	}
	return t.UTC().Format("15:04")
}

// toList decodes a JSON-string list; a broken cell degrades to empty.
func toList(v string) []any {
	var list []any
	if err := json.Unmarshal([]byte(v), &list); err != nil {
		return []any{}
	}
	if list == nil {
		list = []any{}
	}
	return list
}
