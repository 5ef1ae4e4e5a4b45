package schedule

import (
	"math"

	"git.sr.ht/~jakintosh/sweep/internal/domain"
)

// DayColumn is one column of the weekly grid.
type DayColumn struct {
	Day   domain.Day
	Tasks []domain.CleaningTask
}

// WeekGrid buckets tasks into seven columns, Monday first. Days without tasks
// still get a column with an empty (non-nil) task list.
func WeekGrid(tasks []domain.CleaningTask) []DayColumn {
	byDay := make(map[domain.Day][]domain.CleaningTask, len(domain.Days))
	for _, t := range tasks {
		byDay[t.Day] = append(byDay[t.Day], t)
	}

	cols := make([]DayColumn, len(domain.Days))
	for i, day := range domain.Days {
		cols[i] = DayColumn{Day: day, Tasks: byDay[day]}
		if cols[i].Tasks == nil {
			cols[i].Tasks = []domain.CleaningTask{}
		}
	}
	return cols
}

type DayCount struct {
	Day   domain.Day `json:"day"`
	Count int        `json:"count"`
}

type Summary struct {
	Total       int        `json:"total"`
	Completed   int        `json:"completed"`
	Remaining   int        `json:"remaining"`
	Percent     int        `json:"percent"`
	BusiestDays []DayCount `json:"busiest_days"`
}

func Summarize(tasks []domain.CleaningTask) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	s.Remaining = s.Total - s.Completed
	if s.Total > 0 {
		s.Percent = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	s.BusiestDays = BusiestDays(tasks)
	return s
}

// BusiestDays reports every day that shares the highest task count. Tied
// days come in week order (Monday first), not in the order tasks were added;
// days outside the week follow as first seen. It returns an empty list when
// there are no tasks.
func BusiestDays(tasks []domain.CleaningTask) []DayCount {
	counts := map[domain.Day]int{}
	order := []domain.Day{}
	for _, t := range tasks {
		if _, seen := counts[t.Day]; !seen {
			order = append(order, t.Day)
		}
		counts[t.Day]++
	}

	top := 0
	for _, n := range counts {
		if n > top {
			top = n
		}
	}

	busiest := []DayCount{}
	if top == 0 {
		return busiest
	}
	// weekdays first, then anything outside the canonical week as first seen
	for _, day := range domain.Days {
		if counts[day] == top {
			busiest = append(busiest, DayCount{Day: day, Count: top})
		}
	}
	for _, day := range order {
		if !day.Valid() && counts[day] == top {
			busiest = append(busiest, DayCount{Day: day, Count: top})
		}
	}
	return busiest
}
