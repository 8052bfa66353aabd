package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iliyamo/bus-seat-roster/internal/config"
	"github.com/iliyamo/bus-seat-roster/internal/repository"
	"github.com/iliyamo/bus-seat-roster/internal/roster"
	"github.com/iliyamo/bus-seat-roster/internal/service"
)

func newParseCmd() *cobra.Command {
	var format, vocabFile string
	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse a roster post and print the seating plan",
		Long: `parse reads a roster post from a file, or from stdin when the file is
omitted or "-", and prints the resolved seating plan. Out-of-range or
duplicate seat numbers are reported and the command exits non-zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			vocab, err := config.LoadVocabulary(vocabFile)
			if err != nil {
				return err
			}
			// A throwaway in-memory store: previews never touch it.
			planner := service.NewPlanner(roster.NewParser(vocab), repository.NewMemoryRosterStore())
			plan, err := planner.Preview(text)
			if err != nil {
				return err
			}
			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}
			return writeText(cmd.OutOrStdout(), plan)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")
	cmd.Flags().StringVar(&vocabFile, "vocabulary", os.Getenv("VOCABULARY_FILE"), "YAML file overriding keyword tables")
	return cmd
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func writeText(out io.Writer, plan *service.Plan) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NO\tSEAT\tNAME\tSTATUS\tBOARDING\t")
	for _, p := range plan.Passengers {
		seat := "-"
		if p.HasSeat() {
			seat = strconv.Itoa(p.Seat())
		}
		note := ""
		if p.IsTemporaryAssignment {
			note = "temporary"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.OrderNumber, seat, p.Name, p.PaymentStatus, plan.Labels[p.Location], note)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := plan.Summary
	fmt.Fprintf(out, "\npassengers %d  paid %d  pending %d  temporary %d  unseated %d  empty seats %d\n",
		s.Total, s.Paid, s.Pending, s.TemporaryAssignments, s.UnassignedPassengers, s.EmptySeats)
	for _, l := range plan.Locations {
		fmt.Fprintf(out, "  %s: %d (paid %d, pending %d)\n", plan.Labels[l.Location], l.Total, l.Paid, l.Pending)
	}
	return nil
}
