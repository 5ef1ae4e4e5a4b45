package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"git.sr.ht/~jakintosh/sweep/internal/domain"
	"git.sr.ht/~jakintosh/sweep/internal/schedule"
)

//go:embed templates/*.html
var templateFS embed.FS

// Presentation handles all view-related logic and template rendering
type Presentation struct {
	tmpl *template.Template
}

func NewPresentation() (*Presentation, error) {
	tmpl, err := template.New("base").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Presentation{tmpl: tmpl}, nil
}

// DayView is one column of the weekly grid
type DayView struct {
	Day   string
	Label string
	Tasks []TaskView
}

func NewDayViews(cols []schedule.DayColumn) []DayView {
	views := make([]DayView, len(cols))
	for i, col := range cols {
		views[i] = DayView{
			Day:   string(col.Day),
			Label: col.Day.Label(),
			Tasks: make([]TaskView, len(col.Tasks)),
		}
		for j, t := range col.Tasks {
			views[i].Tasks[j] = NewTaskView(t)
		}
	}
	return views
}

type BusyDayView struct {
	Label string
	Count int
}

type SummaryView struct {
	Completed   int
	Remaining   int
	Percent     int
	BusiestDays []BusyDayView
}

func NewSummaryView(s schedule.Summary) SummaryView {
	view := SummaryView{
		Completed: s.Completed,
		Remaining: s.Remaining,
		Percent:   s.Percent,
	}
	for _, d := range s.BusiestDays {
		view.BusiestDays = append(view.BusiestDays, BusyDayView{Label: d.Day.Label(), Count: d.Count})
	}
	return view
}

// UndoView offers to bring back the last deleted task
type UndoView struct {
	Name string
}

// BoardView is everything that changes when a task changes
type BoardView struct {
	Summary SummaryView
	Days    []DayView
	Undo    *UndoView
}

// PageView is the full page
type PageView struct {
	BoardView
	Rooms []OptionView
	Form  TaskFormView
}

// NewBoardView builds the board for the store's current state: the summary
// covers every task, the grid only the selected room.
func NewBoardView(store *schedule.Store) BoardView {
	view := BoardView{
		Summary: NewSummaryView(schedule.Summarize(store.Tasks())),
		Days:    NewDayViews(schedule.WeekGrid(store.FilteredTasks(store.SelectedRoom()))),
	}
	if last, ok := store.LastDeleted(); ok {
		view.Undo = &UndoView{Name: last.Name}
	}
	return view
}

func NewPageView(store *schedule.Store) PageView {
	selected := store.SelectedRoom()
	rooms := []OptionView{{Value: "all", Label: "All Rooms", Selected: selected == nil}}
	for _, r := range domain.Rooms {
		rooms = append(rooms, OptionView{
			Value:    string(r),
			Label:    r.Label(),
			Selected: selected != nil && *selected == r,
		})
	}
	return PageView{
		BoardView: NewBoardView(store),
		Rooms:     rooms,
		Form:      NewTaskFormView("", domain.DefaultNewTask(), nil),
	}
}

func (p *Presentation) RenderIndex(w io.Writer, view PageView) error {
	return p.tmpl.ExecuteTemplate(w, "layout.html", view)
}

// RenderBoard renders the board fragment that HTMX swaps after a mutation
func (p *Presentation) RenderBoard(w io.Writer, view BoardView) error {
	return p.tmpl.ExecuteTemplate(w, "board.html", view)
}
