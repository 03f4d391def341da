package calendar

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/f1board/f1board/log"
	"github.com/f1board/f1board/pkg/calendar"
	"github.com/f1board/f1board/pkg/cmd/cmdutil"
	"github.com/f1board/f1board/pkg/payload"
)

type options struct {
	out  string
	name string
}

func NewCalendarCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "calendar [file|-]",
		Short: "exports race weekends as iCalendar",
		Long: `Reads a race or a list of races and writes one calendar event per
session with a known start time.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := cmdutil.SetupLogger(cmd.ErrOrStderr()); err != nil {
				return err
			}
			data, err := cmdutil.ReadInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if opts.out == "" || opts.out == "-" {
				return writeCalendar(cmd.OutOrStdout(), data, opts)
			}
			f, err := os.Create(opts.out)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			if err := writeCalendar(f, data, opts); err != nil {
				return err
			}
			log.Info("calendar written", log.String("file", opts.out))
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.name, "name", "", "calendar name")
	return cmd
}

func writeCalendar(w io.Writer, data []byte, opts options) error {
	races, err := payload.DecodeRaces(data)
	if err != nil {
		return fmt.Errorf("decode races: %w", err)
	}
	tables, err := cmdutil.NewTables()
	if err != nil {
		return err
	}
	e := calendar.NewExporter(
		calendar.WithTables(tables),
		calendar.WithName(opts.name),
	)
	return e.Write(w, races...)
}
