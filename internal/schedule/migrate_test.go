package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~jakintosh/sweep/internal/domain"
)

func TestDecodeTasks_Legacy(t *testing.T) {
	tests := []struct {
		name string
		days string
		want domain.Day
	}{
		{"first day wins", `["tuesday","friday"]`, domain.Tuesday},
		{"empty set defaults to monday", `[]`, domain.Monday},
		{"unknown first day defaults to monday", `["someday","friday"]`, domain.Monday},
		{"non-string first day defaults to monday", `[3]`, domain.Monday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := `[{"id":"a","name":"Dishes","room":"kitchen","days":` + tt.days + `,"notification":{"time":"none","method":"none"},"completed":false}]`

			tasks, migrated, err := DecodeTasks([]byte(raw))
			require.NoError(t, err)
			require.Len(t, tasks, 1)
			assert.Equal(t, 1, migrated)
			assert.Equal(t, tt.want, tasks[0].Day)
			assert.Equal(t, "a", tasks[0].ID)
			assert.Equal(t, domain.RoomKitchen, tasks[0].Room)
		})
	}
}

func TestDecodeTasks_LegacyDaysOverrideDay(t *testing.T) {
	raw := `[{"id":"a","name":"Dishes","room":"kitchen","day":"sunday","days":["wednesday"],"notification":{"time":"none","method":"none"},"completed":false}]`

	tasks, migrated, err := DecodeTasks([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, 1, migrated)
	assert.Equal(t, domain.Wednesday, tasks[0].Day)
}

func TestDecodeTasks_CurrentSchemaUntouched(t *testing.T) {
	raw := `[
		{"id":"a","name":"Dishes","room":"kitchen","day":"friday","notification":{"time":"morning","method":"push"},"completed":true},
		{"id":"b","name":"Towels","description":"fold","room":"bathroom","day":"monday","days":null,"notification":{"time":"none","method":"none"},"completed":false}
	]`

	tasks, migrated, err := DecodeTasks([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, 0, migrated)
	assert.Equal(t, []domain.CleaningTask{
		{
			ID:           "a",
			Name:         "Dishes",
			Room:         domain.RoomKitchen,
			Day:          domain.Friday,
			Notification: domain.Notification{Time: domain.NotifyMorning, Method: domain.MethodPush},
			Completed:    true,
		},
		{
			ID:           "b",
			Name:         "Towels",
			Description:  "fold",
			Room:         domain.RoomBathroom,
			Day:          domain.Monday,
			Notification: domain.Notification{Time: domain.NotifyNever, Method: domain.MethodNone},
		},
	}, tasks)
}

func TestDecodeTasks_Rejects(t *testing.T) {
	for _, raw := range []string{"", "   ", "null", `{"tasks":[]}`, `"[]"`, `[1,2]`, `[{"completed":"yes"}]`, `[null]`, `[{"id":"a","name":"Dishes","day":"monday"},null]`} {
		_, _, err := DecodeTasks([]byte(raw))
		assert.Error(t, err, "payload %q", raw)
	}
}

func TestDecodeTasks_NullRecord(t *testing.T) {
	_, _, err := DecodeTasks([]byte(`[{"id":"a","name":"Dishes","day":"monday"},null]`))
	assert.ErrorIs(t, err, errNullRecord)
}

func TestEncodeTasks(t *testing.T) {
	data, err := EncodeTasks(nil)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	data, err = EncodeTasks([]domain.CleaningTask{{
		ID:           "a",
		Name:         "Dishes",
		Room:         domain.RoomLivingRoom,
		Day:          domain.Monday,
		Notification: domain.Notification{Time: domain.NotifyNever, Method: domain.MethodNone},
	}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","name":"Dishes","room":"living room","day":"monday","notification":{"time":"none","method":"none"},"completed":false}]`, string(data))
}
