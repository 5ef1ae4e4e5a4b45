package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"git.sr.ht/~jakintosh/sweep/internal/domain"
	"git.sr.ht/~jakintosh/sweep/internal/schedule"
)

func newListCmd(flags *globalFlags) *cobra.Command {
	var room string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally for one room",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := domain.ParseRoom(room)
			if err != nil {
				return err
			}
			a, err := openApp(cmd, flags)
			if err != nil {
				return err
			}
			defer a.close()

			out := cmd.OutOrStdout()
			for _, col := range schedule.WeekGrid(a.store.FilteredTasks(filter)) {
				for _, t := range col.Tasks {
					printTask(out, t)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&room, "room", "", "only this room (default all)")
	return cmd
}

func newAddCmd(flags *globalFlags) *cobra.Command {
	input := domain.DefaultNewTask()
	var room, day, notifyTime, notifyMethod string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a cleaning task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input.Name = strings.TrimSpace(input.Name)
			input.Room = domain.Room(strings.ToLower(room))
			input.Day = domain.Day(strings.ToLower(day))
			input.Notification = domain.Notification{
				Time:   domain.NotificationTime(notifyTime),
				Method: domain.NotificationMethod(notifyMethod),
			}
			if err := input.Validate(); err != nil {
				return err
			}

			a, err := openApp(cmd, flags)
			if err != nil {
				return err
			}
			defer a.close()

			printTask(cmd.OutOrStdout(), a.store.Add(input))
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Name, "name", "", "task name (required)")
	cmd.Flags().StringVar(&input.Description, "description", "", "optional details")
	cmd.Flags().StringVar(&room, "room", string(input.Room), "room")
	cmd.Flags().StringVar(&day, "day", string(input.Day), "day of the week")
	cmd.Flags().StringVar(&notifyTime, "notify-time", string(input.Notification.Time), "none, morning, afternoon or evening")
	cmd.Flags().StringVar(&notifyMethod, "notify-method", string(input.Notification.Method), "none, email, push or sms")
	return cmd
}

func newDoneCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task between done and not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, flags)
			if err != nil {
				return err
			}
			defer a.close()

			if _, ok := a.store.GetTask(args[0]); !ok {
				return fmt.Errorf("no task with id %q", args[0])
			}
			a.store.ToggleCompletion(args[0])
			task, _ := a.store.GetTask(args[0])
			printTask(cmd.OutOrStdout(), task)
			return nil
		},
	}
}

func newRmCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, flags)
			if err != nil {
				return err
			}
			defer a.close()

			task, ok := a.store.GetTask(args[0])
			if !ok {
				return fmt.Errorf("no task with id %q", args[0])
			}
			a.store.Delete(task.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %q\n", task.Name)
			return nil
		},
	}
}

func newSummaryCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show weekly progress and the busiest days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd, flags)
			if err != nil {
				return err
			}
			defer a.close()

			s := schedule.Summarize(a.store.Tasks())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d/%d done (%d%%), %d remaining\n", s.Completed, s.Total, s.Percent, s.Remaining)
			if len(s.BusiestDays) == 0 {
				return nil
			}
			days := make([]string, len(s.BusiestDays))
			for i, d := range s.BusiestDays {
				days[i] = d.Day.Label()
			}
			fmt.Fprintf(out, "busiest: %s (%d tasks)\n", strings.Join(days, ", "), s.BusiestDays[0].Count)
			return nil
		},
	}
}
