package schedule

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/f1board/f1board/log"
	"github.com/f1board/f1board/pkg/cmd/cmdutil"
	"github.com/f1board/f1board/pkg/payload"
	"github.com/f1board/f1board/pkg/schedule"
)

type options struct {
	mode   string
	zone   string
	asJSON bool
}

func NewScheduleCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "schedule [file|-]",
		Short: "shows the session times of a race weekend",
		Long: `Reads a race record (optionally wrapped in the backend envelope) and
prints the track timezone, the weekend range and the five sessions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := cmdutil.SetupLogger(cmd.ErrOrStderr()); err != nil {
				return err
			}
			data, err := cmdutil.ReadInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runSchedule(cmd, data, opts)
		},
	}
	cmd.Flags().StringVar(&opts.mode, "mode", string(schedule.ModeMy),
		"zone of the session times (my, track, utc)")
	cmd.Flags().StringVar(&opts.zone, "tz", "",
		"explicit IANA zone, overrides --mode")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false,
		"print the schedule view as json")
	return cmd
}

func runSchedule(cmd *cobra.Command, data []byte, opts options) error {
	mode, err := schedule.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	race, err := payload.DecodeRace(data)
	if err != nil {
		return fmt.Errorf("decode race: %w", err)
	}
	builder, err := cmdutil.NewBuilder()
	if err != nil {
		return err
	}
	view, err := builder.Build(cmd.Context(), race, mode, opts.zone)
	if err != nil {
		return err
	}
	log.Debug("schedule built",
		log.Int("raceId", view.RaceID),
		log.String("trackZone", view.TrackZone),
		log.String("zone", view.Zone))

	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}
	return PrintView(cmd.OutOrStdout(), view)
}

// PrintView writes a human readable schedule.
func PrintView(w io.Writer, v *schedule.View) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", v.Round, v.Title)
	fmt.Fprintf(tw, "Country\t%s %s\n", v.Flag, v.Country)
	fmt.Fprintf(tw, "Track zone\t%s\n", v.TrackZone)
	fmt.Fprintf(tw, "Weekend\t%s\n", v.Weekend)
	fmt.Fprintf(tw, "Showing times in\t%s\n", v.Zone)
	fmt.Fprintln(tw)
	for _, s := range v.Sessions {
		status := ""
		if s.Completed {
			status = "completed"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, s.Date, s.Time, status)
	}
	return tw.Flush()
}
