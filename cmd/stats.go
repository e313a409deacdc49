package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/zerohall/internal/quiz"
	"github.com/abhisek/zerohall/internal/rooms"
	"github.com/abhisek/zerohall/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show which gifts visitors found and which rooms they entered",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()
		repo := s.EventRepo()

		traits, err := repo.TraitDistribution(ctx)
		if err != nil {
			return fmt.Errorf("query traits: %w", err)
		}
		visits, err := repo.RoomVisitCounts(ctx)
		if err != nil {
			return fmt.Errorf("query rooms: %w", err)
		}

		if asJSON {
			return writeJSON(struct {
				Traits []store.TraitCount `json:"traits"`
				Rooms  []store.RoomCount  `json:"rooms"`
			}{traits, visits})
		}

		if len(traits) == 0 && len(visits) == 0 {
			fmt.Println("No visits recorded yet.")
			return nil
		}

		fmt.Println("Gifts found")
		fmt.Println(strings.Repeat("─", 40))
		total := 0
		for _, tc := range traits {
			total += tc.Count
		}
		for _, tc := range traits {
			fmt.Printf("%-18s %6d  %5.1f%%\n", quiz.Trait(tc.Trait).Name(), tc.Count, 100*float64(tc.Count)/float64(max(total, 1)))
		}

		fmt.Println()
		fmt.Println("Room entries")
		fmt.Println(strings.Repeat("─", 40))
		for _, rc := range visits {
			fmt.Printf("%-24s %6d\n", rooms.Room(rc.Room).Title(), rc.Count)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("json", false, "Print JSON")
}
