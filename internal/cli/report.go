package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/timetracking"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newWeeklyReportCmd(load ConfigLoader) *cobra.Command {
	var userID, from, to string

	cmd := &cobra.Command{
		Use:   "weekly-report",
		Short: "Print per-day attendance totals for one user",
		Long: `Print per-day attendance totals for one user.

Without --from/--to the last 7 days ending today are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, db, closeDB, err := openDB(load)
			if err != nil {
				return err
			}
			defer closeDB()

			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			svc := timetracking.NewService(sqlDB, timetracking.NewRepository(db),
				timetracking.WithPolicy(timetracking.OvertimePolicy{
					RegularHours:    cfg.Attendance.RegularHours,
					FixedBreakHours: cfg.Attendance.FixedBreakHours,
				}),
				timetracking.WithLocation(cfg.Location()),
			)

			days, err := svc.GetWeeklyReport(cmd.Context(), userID, from, to)
			if err != nil {
				return err
			}
			renderWeeklyReport(cmd.OutOrStdout(), days)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id")
	cmd.Flags().StringVar(&from, "from", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "last day, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func renderWeeklyReport(w io.Writer, days []timetracking.DailyAggregate) {
	if len(days) == 0 {
		fmt.Fprintln(w, "no attendance in range")
		return
	}

	var total, overtime float64
	rows := make([][]string, 0, len(days)+1)
	for _, d := range days {
		total += d.TotalHours
		overtime += d.OvertimeHours
		rows = append(rows, []string{
			d.Date,
			strconv.FormatFloat(d.TotalHours, 'f', 2, 64),
			strconv.FormatFloat(d.OvertimeHours, 'f', 2, 64),
			strconv.Itoa(d.BreakMinutes),
			strconv.Itoa(d.ActivityCount),
			strconv.Itoa(d.BreakCount),
		})
	}
	rows = append(rows, []string{
		"total",
		strconv.FormatFloat(total, 'f', 2, 64),
		strconv.FormatFloat(overtime, 'f', 2, 64),
		"", "", "",
	})

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("DATE", "HOURS", "OVERTIME", "BREAK MIN", "ACTIVITIES", "BREAKS").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	fmt.Fprintln(w, t.Render())
}
