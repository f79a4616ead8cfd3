package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kinshiphq/kinship/client"
)

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <from-id> <to-id>",
		Short: "Find the shortest relationship chain between two persons",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			result, err := apiClient.Kinship.Path(context.Background(), args[0], args[1])
			if err != nil {
				fatal("path", err)
			}

			if flagFmt == "table" {
				printPath(result)
				return
			}
			output(result)
		},
	}
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Health(context.Background())
			if err != nil {
				fatal("health", err)
			}
			output(resp)
		},
	}
}

// printPath renders a found path as a readable chain, e.g.
// "Ray Stone -[daughter]-> Ann Stone".
func printPath(result *client.PathResult) {
	if result.Trivial {
		fmt.Println("same person on both ends")
		return
	}
	if !result.ConnectionFound {
		fmt.Println("no connection found")
		return
	}

	parts := make([]string, 0, len(result.Path))
	for _, step := range result.Path {
		name := step.FullName
		if name == "" {
			name = step.PersonID
		}
		if step.IncomingKind != "" {
			parts = append(parts, fmt.Sprintf("-[%s]-> %s", step.IncomingKind, name))
		} else {
			parts = append(parts, name)
		}
	}

	fmt.Println(strings.Join(parts, " "))
}
