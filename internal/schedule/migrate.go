package schedule

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"git.sr.ht/~jakintosh/sweep/internal/domain"
)

// Schema versions of a stored task record. Version 1 records scheduled a task
// on a set of days ("days": [...]); version 2 records carry a single "day".
const (
	schemaMultiDay  = 1
	schemaSingleDay = 2

	currentSchema = schemaSingleDay
)

var (
	errNotArray   = errors.New("mirror is not a JSON array")
	errNullRecord = errors.New("mirror holds a null record")
)

// record is one stored task as read from the mirror, before migration.
type record struct {
	domain.CleaningTask
	Days json.RawMessage `json:"days,omitempty"`
}

func (r *record) version() int {
	if isJSONArray(r.Days) {
		return schemaMultiDay
	}
	return schemaSingleDay
}

type migration struct {
	from  int
	name  string
	apply func(*record)
}

// migrations run in order; each lifts a record from `from` to `from+1`.
var migrations = []migration{
	{from: schemaMultiDay, name: "days-to-day", apply: collapseDays},
}

// collapseDays keeps the first scheduled day and drops the day set. An empty
// set, or a first entry that isn't a weekday, lands on Monday.
func collapseDays(r *record) {
	var days []any
	_ = json.Unmarshal(r.Days, &days)

	r.Day = domain.Monday
	if len(days) > 0 {
		if s, ok := days[0].(string); ok && domain.Day(s).Valid() {
			r.Day = domain.Day(s)
		}
	}
	r.Days = nil
}

// DecodeTasks parses a mirror payload and upgrades every record to the
// current schema. It reports how many records needed migrating.
func DecodeTasks(raw []byte) ([]domain.CleaningTask, int, error) {
	if !isJSONArray(raw) {
		return nil, 0, errNotArray
	}

	var records []*record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, 0, fmt.Errorf("decode tasks: %w", err)
	}

	tasks := make([]domain.CleaningTask, 0, len(records))
	migrated := 0
	for i, r := range records {
		if r == nil {
			return nil, 0, fmt.Errorf("decode tasks: record %d: %w", i, errNullRecord)
		}
		if upgrade(r) {
			migrated++
		}
		tasks = append(tasks, r.CleaningTask)
	}
	return tasks, migrated, nil
}

// EncodeTasks serializes tasks in the current schema.
func EncodeTasks(tasks []domain.CleaningTask) ([]byte, error) {
	if tasks == nil {
		tasks = []domain.CleaningTask{}
	}
	return json.Marshal(tasks)
}

func upgrade(r *record) bool {
	v := r.version()
	if v == currentSchema {
		return false
	}
	for _, m := range migrations {
		if m.from == v {
			m.apply(r)
			v++
		}
	}
	return true
}

func isJSONArray(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
