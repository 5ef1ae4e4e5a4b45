package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~jakintosh/sweep/internal/domain"
)

func onDays(days ...domain.Day) []domain.CleaningTask {
	tasks := make([]domain.CleaningTask, len(days))
	for i, d := range days {
		tasks[i] = domain.CleaningTask{ID: string(d) + "-" + string(rune('a'+i)), Name: "chore", Room: domain.RoomOther, Day: d}
	}
	return tasks
}

func TestWeekGrid(t *testing.T) {
	tasks := onDays(domain.Friday, domain.Monday, domain.Friday)

	grid := WeekGrid(tasks)
	require.Len(t, grid, 7)
	for i, col := range grid {
		assert.Equal(t, domain.Days[i], col.Day)
		assert.NotNil(t, col.Tasks)
	}

	assert.Equal(t, []domain.CleaningTask{tasks[1]}, grid[0].Tasks)
	assert.Equal(t, []domain.CleaningTask{tasks[0], tasks[2]}, grid[4].Tasks)
	assert.Empty(t, grid[2].Tasks)
}

func TestWeekGrid_Empty(t *testing.T) {
	grid := WeekGrid(nil)
	require.Len(t, grid, 7)
	for _, col := range grid {
		assert.Empty(t, col.Tasks)
	}
}

func TestSummarize(t *testing.T) {
	tasks := onDays(domain.Monday, domain.Tuesday, domain.Wednesday)
	tasks[0].Completed = true

	s := Summarize(tasks)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 2, s.Remaining)
	assert.Equal(t, 33, s.Percent)

	tasks[1].Completed = true
	assert.Equal(t, 67, Summarize(tasks).Percent)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, Summary{BusiestDays: []DayCount{}}, s)
}

func TestBusiestDays_ReportsAllTiesInWeekOrder(t *testing.T) {
	// Wednesday reaches the top count first, Monday still leads.
	tasks := onDays(domain.Wednesday, domain.Monday, domain.Friday, domain.Wednesday, domain.Monday)

	assert.Equal(t, []DayCount{
		{Day: domain.Monday, Count: 2},
		{Day: domain.Wednesday, Count: 2},
	}, BusiestDays(tasks))
}

func TestBusiestDays_SingleWinner(t *testing.T) {
	tasks := onDays(domain.Sunday, domain.Sunday, domain.Saturday)
	assert.Equal(t, []DayCount{{Day: domain.Sunday, Count: 2}}, BusiestDays(tasks))
}
