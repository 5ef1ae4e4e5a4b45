package domain

import (
	"fmt"
	"strings"
)

type Room string

const (
	RoomKitchen    Room = "kitchen"
	RoomBathroom   Room = "bathroom"
	RoomBedroom    Room = "bedroom"
	RoomLivingRoom Room = "living room"
	RoomDiningRoom Room = "dining room"
	RoomOffice     Room = "office"
	RoomLaundry    Room = "laundry"
	RoomOutdoor    Room = "outdoor"
	RoomOther      Room = "other"
)

// Rooms lists every room in display order.
var Rooms = []Room{
	RoomKitchen,
	RoomBathroom,
	RoomBedroom,
	RoomLivingRoom,
	RoomDiningRoom,
	RoomOffice,
	RoomLaundry,
	RoomOutdoor,
	RoomOther,
}

type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// Days is the canonical week order used by every grouped view.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

type NotificationTime string

const (
	NotifyMorning   NotificationTime = "morning"
	NotifyAfternoon NotificationTime = "afternoon"
	NotifyEvening   NotificationTime = "evening"
	NotifyNever     NotificationTime = "none"
)

var NotificationTimes = []NotificationTime{NotifyMorning, NotifyAfternoon, NotifyEvening, NotifyNever}

type NotificationMethod string

const (
	MethodEmail NotificationMethod = "email"
	MethodPush  NotificationMethod = "push"
	MethodSMS   NotificationMethod = "sms"
	MethodNone  NotificationMethod = "none"
)

var NotificationMethods = []NotificationMethod{MethodEmail, MethodPush, MethodSMS, MethodNone}

// Notification is a stored reminder preference. Nothing in sweep delivers it.
type Notification struct {
	Time   NotificationTime   `json:"time"`
	Method NotificationMethod `json:"method"`
}

type CleaningTask struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Room         Room         `json:"room"`
	Day          Day          `json:"day"`
	Notification Notification `json:"notification"`
	Completed    bool         `json:"completed"`
}

// NewTask is a CleaningTask before the store has assigned it an ID.
type NewTask struct {
	Name         string
	Description  string
	Room         Room
	Day          Day
	Notification Notification
	Completed    bool
}

// WithID builds the stored task for n.
func (n NewTask) WithID(id string) CleaningTask {
	return CleaningTask{
		ID:           id,
		Name:         n.Name,
		Description:  n.Description,
		Room:         n.Room,
		Day:          n.Day,
		Notification: n.Notification,
		Completed:    n.Completed,
	}
}

// DefaultNewTask mirrors the blank task form.
func DefaultNewTask() NewTask {
	return NewTask{
		Room: RoomKitchen,
		Day:  Monday,
		Notification: Notification{
			Time:   NotifyNever,
			Method: MethodNone,
		},
	}
}

// ValidationError lists the fields of a task input that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range []string{"name", "room", "day", "notification.time", "notification.method"} {
		if msg, ok := e.Fields[field]; ok {
			parts = append(parts, field+": "+msg)
		}
	}
	return "invalid task: " + strings.Join(parts, "; ")
}

// Validate applies the task form rules. The store itself never calls it.
func (n NewTask) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(n.Name) == "" {
		fields["name"] = "task name is required"
	}
	if !n.Room.Valid() {
		fields["room"] = fmt.Sprintf("unknown room %q", n.Room)
	}
	if !n.Day.Valid() {
		fields["day"] = fmt.Sprintf("unknown day %q", n.Day)
	}
	if !n.Notification.Time.Valid() {
		fields["notification.time"] = fmt.Sprintf("unknown time %q", n.Notification.Time)
	}
	if !n.Notification.Method.Valid() {
		fields["notification.method"] = fmt.Sprintf("unknown method %q", n.Notification.Method)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Helper methods

func (r Room) Valid() bool {
	for _, room := range Rooms {
		if r == room {
			return true
		}
	}
	return false
}

func (r Room) Label() string {
	return titleCase(string(r))
}

func (d Day) Valid() bool {
	for _, day := range Days {
		if d == day {
			return true
		}
	}
	return false
}

func (d Day) Label() string {
	return titleCase(string(d))
}

func (t NotificationTime) Valid() bool {
	for _, nt := range NotificationTimes {
		if t == nt {
			return true
		}
	}
	return false
}

func (t NotificationTime) Label() string {
	switch t {
	case NotifyMorning:
		return "Morning (8:00 AM)"
	case NotifyAfternoon:
		return "Afternoon (1:00 PM)"
	case NotifyEvening:
		return "Evening (6:00 PM)"
	default:
		return "No notification"
	}
}

func (m NotificationMethod) Valid() bool {
	for _, nm := range NotificationMethods {
		if m == nm {
			return true
		}
	}
	return false
}

func (m NotificationMethod) Label() string {
	switch m {
	case MethodEmail:
		return "Email"
	case MethodPush:
		return "Push notification"
	case MethodSMS:
		return "SMS"
	default:
		return "None"
	}
}

// Active reports whether the preference asks for a reminder at all.
func (n Notification) Active() bool {
	return n.Time != NotifyNever && n.Method != MethodNone
}

// ParseRoom accepts a room value case-insensitively. An empty string or "all"
// yields nil, meaning no room filter.
func ParseRoom(s string) (*Room, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return nil, nil
	}
	r := Room(s)
	if !r.Valid() {
		return nil, fmt.Errorf("unknown room %q", s)
	}
	return &r, nil
}

func ParseDay(s string) (Day, error) {
	d := Day(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown day %q", s)
	}
	return d, nil
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
