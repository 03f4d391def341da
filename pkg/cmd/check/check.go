package check

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/f1board/f1board/pkg/cmd/cmdutil"
	"github.com/f1board/f1board/pkg/payload"
	"github.com/f1board/f1board/pkg/schedule"
)

var ErrUnresolved = errors.New("races without track timezone")

type options struct {
	strict bool
	asJSON bool
}

func NewCheckCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "check [file|-]",
		Short: "lists races whose track timezone cannot be resolved",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := cmdutil.SetupLogger(cmd.ErrOrStderr()); err != nil {
				return err
			}
			data, err := cmdutil.ReadInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runCheck(cmd, data, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.strict, "strict", false,
		"exit with an error if any race is unresolved")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false,
		"print the unresolved races as json")
	return cmd
}

func runCheck(cmd *cobra.Command, data []byte, opts options) error {
	races, err := payload.DecodeRaces(data)
	if err != nil {
		return fmt.Errorf("decode races: %w", err)
	}
	tables, err := cmdutil.NewTables()
	if err != nil {
		return err
	}
	resolver := schedule.NewResolver(schedule.WithTable(tables.Timezones))
	unresolved := resolver.ResolveAll(cmd.Context(), races)

	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(unresolved); err != nil {
			return err
		}
	} else if err := printUnresolved(cmd.OutOrStdout(), len(races), unresolved); err != nil {
		return err
	}
	if opts.strict && len(unresolved) > 0 {
		return fmt.Errorf("%w: %d of %d", ErrUnresolved, len(unresolved), len(races))
	}
	return nil
}

func printUnresolved(w io.Writer, total int, items []schedule.Unresolved) error {
	if len(items) == 0 {
		_, err := fmt.Fprintf(w, "all %d races resolved\n", total)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tROUND\tCOUNTRY\tLOCATION\tCIRCUIT\tEVENT")
	for _, u := range items {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n",
			u.RaceID, u.RoundNumber, u.Country, u.Location, u.CircuitName, u.EventName)
	}
	return tw.Flush()
}
