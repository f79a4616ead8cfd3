package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kinshiphq/kinship/client"
)

func newRelativesCmd() *cobra.Command {
	var opts client.DiscoverOptions

	cmd := &cobra.Command{
		Use:   "relatives <person-id>",
		Short: "Discover a person's relatives up to a depth",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result, err := apiClient.Kinship.Relatives(context.Background(), args[0], opts)
			if err != nil {
				fatal("relatives", err)
			}

			if flagFmt == "table" {
				printRelativesTable(result)
				return
			}
			output(result)
		},
	}

	cmd.Flags().IntVar(&opts.Depth, "depth", 1, "Max traversal depth")
	cmd.Flags().StringVar(&opts.Mode, "mode", "up_to", "Depth mode: up_to|only_at")
	cmd.Flags().BoolVar(&opts.AliveOnly, "alive", false, "Only living relatives")
	cmd.Flags().StringVar(&opts.Gender, "gender", "", "Filter by gender: male|female|unknown")
	cmd.Flags().StringVar(&opts.CountryID, "country", "", "Filter by country location ID")
	cmd.Flags().StringVar(&opts.StateID, "state", "", "Filter by state location ID")
	cmd.Flags().StringVar(&opts.DistrictID, "district", "", "Filter by district location ID")
	cmd.Flags().StringVar(&opts.SubDistrictID, "sub-district", "", "Filter by sub-district location ID")
	cmd.Flags().StringVar(&opts.LocalityID, "locality", "", "Filter by locality location ID")

	return cmd
}

func printRelativesTable(result *client.DiscoverResult) {
	rows := make([][]string, 0, len(result.Relatives))
	for _, r := range result.Relatives {
		alive := "no"
		if r.Alive {
			alive = "yes"
		}
		rows = append(rows, []string{
			r.PersonID,
			strconv.Itoa(r.Depth),
			r.FullName,
			r.Gender,
			alive,
			strconv.Itoa(r.YearsAlive),
			r.Location,
		})
	}

	formatTable([]string{"ID", "DEPTH", "NAME", "GENDER", "ALIVE", "YEARS", "LOCATION"}, rows)
}
