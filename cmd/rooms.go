package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/zerohall/internal/rooms"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms [room]",
	Short: "List the rooms of the hall, or show one in detail",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		if len(args) == 0 {
			if asJSON {
				return writeJSON(rooms.AllInfo())
			}
			for i, info := range rooms.AllInfo() {
				fmt.Printf("%d. %-20s %-24s %s\n", i+1, info.Room, info.Title, info.Subtitle)
			}
			return nil
		}

		r, err := rooms.Parse(args[0])
		if err != nil {
			return err
		}
		if asJSON {
			return writeJSON(roomDetail{
				Info:       r.Info(),
				Creators:   rooms.Creators(r),
				Characters: characters(r),
				Links:      links(r),
			})
		}
		printRoom(r)
		return nil
	},
}

type roomDetail struct {
	rooms.Info
	Creators   []rooms.Creator   `json:"creators,omitempty"`
	Characters []rooms.Character `json:"characters,omitempty"`
	Links      []rooms.Link      `json:"links,omitempty"`
}

func characters(r rooms.Room) []rooms.Character {
	if r != rooms.InspirationGarden {
		return nil
	}
	return rooms.Characters()
}

func links(r rooms.Room) []rooms.Link {
	if r != rooms.ThankYou {
		return nil
	}
	return rooms.ShareLinks()
}

func printRoom(r rooms.Room) {
	info := r.Info()
	fmt.Printf("%s (%d of %d)\n", info.Title, rooms.Index(r)+1, rooms.Count())
	fmt.Println(info.Subtitle)
	fmt.Println(strings.Repeat("─", 60))
	fmt.Println(info.Description)

	for _, c := range rooms.Creators(r) {
		fmt.Printf("\n  %s, %s\n  %s\n", c.Name, c.Title, c.VideoURL)
	}
	for _, c := range characters(r) {
		fmt.Printf("\n  %s\n  %s\n", c.Name, c.Quote)
	}
	for _, l := range links(r) {
		fmt.Printf("\n  %s\n  %s\n", l.Label, l.URL)
	}
}

func writeJSON(data any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func init() {
	roomsCmd.Flags().Bool("json", false, "Print JSON")
}
