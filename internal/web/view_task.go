package web

import (
	"fmt"
	"io"

	"git.sr.ht/~jakintosh/sweep/internal/domain"
)

// DeleteButtonView holds data for the delete button template fragment
type DeleteButtonView struct {
	URL            string
	ConfirmMessage string
	ButtonText     string
}

// TaskView is the view model for a task card
type TaskView struct {
	ID           string
	Name         string
	Description  string
	Room         string
	Day          string
	Completed    bool
	Notify       bool
	NotifyLabel  string // e.g. "Morning (8:00 AM) · Email"
	DeleteButton DeleteButtonView
}

// NewTaskView creates a TaskView from a domain CleaningTask
func NewTaskView(t domain.CleaningTask) TaskView {
	view := TaskView{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Room:        t.Room.Label(),
		Day:         t.Day.Label(),
		Completed:   t.Completed,
		Notify:      t.Notification.Active(),
	}
	if view.Notify {
		view.NotifyLabel = t.Notification.Time.Label() + " · " + t.Notification.Method.Label()
	}

	view.DeleteButton = DeleteButtonView{
		URL:            "/tasks/" + t.ID + "/delete",
		ConfirmMessage: fmt.Sprintf("Delete %q from your schedule?", t.Name),
		ButtonText:     "Delete Task",
	}
	return view
}

// OptionView is one entry of a select or radio group
type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

// TaskFormView drives both the create and the edit form
type TaskFormView struct {
	Editing      bool
	Action       string
	Name         string
	Description  string
	Rooms        []OptionView
	Days         []OptionView
	Times        []OptionView
	Methods      []OptionView
	Errors       map[string]string
	DeleteButton *DeleteButtonView
}

// NewTaskFormView fills the form from input. id is empty for a new task.
func NewTaskFormView(id string, input domain.NewTask, errs map[string]string) TaskFormView {
	view := TaskFormView{
		Editing:     id != "",
		Action:      "/tasks",
		Name:        input.Name,
		Description: input.Description,
		Errors:      errs,
	}
	if view.Editing {
		view.Action = "/tasks/" + id
		del := NewTaskView(input.WithID(id)).DeleteButton
		view.DeleteButton = &del
	}

	for _, r := range domain.Rooms {
		view.Rooms = append(view.Rooms, OptionView{Value: string(r), Label: r.Label(), Selected: r == input.Room})
	}
	for _, d := range domain.Days {
		view.Days = append(view.Days, OptionView{Value: string(d), Label: d.Label(), Selected: d == input.Day})
	}
	for _, nt := range domain.NotificationTimes {
		view.Times = append(view.Times, OptionView{Value: string(nt), Label: nt.Label(), Selected: nt == input.Notification.Time})
	}
	for _, m := range domain.NotificationMethods {
		view.Methods = append(view.Methods, OptionView{Value: string(m), Label: m.Label(), Selected: m == input.Notification.Method})
	}
	return view
}

// RenderTaskForm renders the create/edit form
func (p *Presentation) RenderTaskForm(w io.Writer, view TaskFormView) error {
	return p.tmpl.ExecuteTemplate(w, "task_form.html", view)
}
