package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskValidate(t *testing.T) {
	valid := DefaultNewTask()
	valid.Name = "Vacuum"
	require.NoError(t, valid.Validate())

	bad := NewTask{
		Name:         "   ",
		Room:         "garage",
		Day:          "someday",
		Notification: Notification{Time: "midnight", Method: "pigeon"},
	}
	err := bad.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 5)
	assert.Contains(t, err.Error(), "name: task name is required")
	assert.Contains(t, err.Error(), `room: unknown room "garage"`)
}

func TestWithID(t *testing.T) {
	n := DefaultNewTask()
	n.Name = "Mop"
	n.Description = "under the table too"

	task := n.WithID("abc")
	assert.Equal(t, CleaningTask{
		ID:           "abc",
		Name:         "Mop",
		Description:  "under the table too",
		Room:         RoomKitchen,
		Day:          Monday,
		Notification: Notification{Time: NotifyNever, Method: MethodNone},
	}, task)
}

func TestParseRoom(t *testing.T) {
	r, err := ParseRoom("Living Room")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, RoomLivingRoom, *r)

	for _, s := range []string{"", "all", " ALL "} {
		r, err := ParseRoom(s)
		require.NoError(t, err)
		assert.Nil(t, r)
	}

	_, err = ParseRoom("attic")
	assert.Error(t, err)
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("Wednesday")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, d)

	_, err = ParseDay("caturday")
	assert.Error(t, err)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Living Room", RoomLivingRoom.Label())
	assert.Equal(t, "Monday", Monday.Label())
	assert.Equal(t, "Morning (8:00 AM)", NotifyMorning.Label())
	assert.Equal(t, "Push notification", MethodPush.Label())
	assert.Equal(t, "No notification", NotifyNever.Label())
}

func TestNotificationActive(t *testing.T) {
	assert.True(t, Notification{Time: NotifyEvening, Method: MethodSMS}.Active())
	assert.False(t, Notification{Time: NotifyNever, Method: MethodSMS}.Active())
	assert.False(t, Notification{Time: NotifyEvening, Method: MethodNone}.Active())
}
