package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"taskboard/internal/config"
	"taskboard/internal/service"
	"taskboard/internal/state"
)

// newRemindCmd runs a foreground loop that re-prints the daily agenda
// on a schedule until interrupted.
func newRemindCmd(c *state.Container, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Print the daily agenda on a schedule",
		Long:  "Runs in the foreground and re-prints the agenda summary at the configured time or interval until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, _ := cmd.Flags().GetString("at")
			every, _ := cmd.Flags().GetDuration("every")
			if every == 0 {
				every = cfg.ReportInterval
			}

			agenda := service.NewAgenda(c)
			emit := func() {
				// Pick up writes from other invocations.
				c.Reload()
				fmt.Println(agenda.Summary(time.Now().In(cfg.Location)))
			}

			scheduler := service.NewScheduler(cfg.Location)
			var err error
			if at != "" {
				_, err = scheduler.ScheduleDaily(at, emit)
			} else {
				_, err = scheduler.ScheduleInterval(every, emit)
			}
			if err != nil {
				return fmt.Errorf("schedule reminders: %w", err)
			}

			emit()
			scheduler.Start()
			defer scheduler.Stop()

			log.Println("[info] remind loop started, press Ctrl-C to stop")
			<-cmd.Context().Done()
			log.Println("[info] remind loop stopped")
			return nil
		},
	}

	cmd.Flags().String("at", "", "Daily reminder time as HH:MM")
	cmd.Flags().Duration("every", 0, "Reminder interval (defaults to TASKBOARD_REPORT_INTERVAL_HOURS)")

	return cmd
}
