package rooms

import (
	"errors"
	"fmt"
)

// ErrUnknownRoom is returned by Parse for identifiers outside the room set.
var ErrUnknownRoom = errors.New("unknown room")

// Room identifies one section of the Hall.
type Room string

const (
	None              Room = ""
	Entrance          Room = "entrance"
	Lobby             Room = "lobby"
	OriginStories     Room = "origin-stories"
	InspirationGarden Room = "inspiration-garden"
	ProductShowcase   Room = "product-showcase"
	Library           Room = "library"
	Quiz              Room = "quiz"
	ThankYou          Room = "thank-you"
)

// order is the fixed sequence used for next/prev navigation.
var order = [...]Room{
	Entrance,
	Lobby,
	OriginStories,
	InspirationGarden,
	ProductShowcase,
	Library,
	Quiz,
	ThankYou,
}

// Info is the static display metadata for a room.
type Info struct {
	Room        Room   `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

var infos = map[Room]Info{
	Entrance: {
		Room:        Entrance,
		Title:       "Welcome",
		Subtitle:    "Explore The Hall of Zero Limits",
		Description: "Enter the experience",
	},
	Lobby: {
		Room:        Lobby,
		Title:       "The Hall of Zero Limits",
		Subtitle:    "Where infinite potential grows",
		Description: "Step into the heart of the Hall",
	},
	OriginStories: {
		Room:        OriginStories,
		Title:       "Origin Stories",
		Subtitle:    "Find Your Inspiration",
		Description: "Discover the journeys of remarkable creators",
	},
	InspirationGarden: {
		Room:        InspirationGarden,
		Title:       "Inspiration Garden",
		Subtitle:    "Where Ingenuity Overflows",
		Description: "Honor the visionaries who paved the way",
	},
	ProductShowcase: {
		Room:        ProductShowcase,
		Title:       "Sprite Zero Sugar®",
		Subtitle:    "Open Your Infinite Potential",
		Description: "Refresh your creativity",
	},
	Library: {
		Room:        Library,
		Title:       "The Library",
		Subtitle:    "More Help Finding Your Gift",
		Description: "Learn from those who found their path",
	},
	Quiz: {
		Room:        Quiz,
		Title:       "Find Your Gift",
		Subtitle:    "Reflection & Discovery",
		Description: "Uncover your unique potential",
	},
	ThankYou: {
		Room:        ThankYou,
		Title:       "Thank You",
		Subtitle:    "Share the Experience",
		Description: "Continue your journey",
	},
}

// Order returns all rooms in navigation order.
func Order() []Room {
	out := make([]Room, len(order))
	copy(out, order[:])
	return out
}

// Count returns the number of rooms.
func Count() int {
	return len(order)
}

// At returns the room at position i in the navigation order.
// ok is false when i is out of range.
func At(i int) (Room, bool) {
	if i < 0 || i >= len(order) {
		return None, false
	}
	return order[i], true
}

// Index returns the position of r in the navigation order, or -1.
func Index(r Room) int {
	for i, o := range order {
		if o == r {
			return i
		}
	}
	return -1
}

// First returns the opening room.
func First() Room { return order[0] }

// Last returns the closing room.
func Last() Room { return order[len(order)-1] }

// Valid reports whether r is one of the enumerated rooms.
func (r Room) Valid() bool {
	return Index(r) >= 0
}

func (r Room) String() string {
	if r == None {
		return "none"
	}
	return string(r)
}

// Info returns the static metadata for r. Unknown rooms yield an Info
// whose Title is the raw identifier.
func (r Room) Info() Info {
	if info, ok := infos[r]; ok {
		return info
	}
	return Info{Room: r, Title: string(r)}
}

// Title is shorthand for r.Info().Title.
func (r Room) Title() string {
	return r.Info().Title
}

// AllInfo returns metadata for every room in navigation order.
func AllInfo() []Info {
	out := make([]Info, 0, len(order))
	for _, r := range order {
		out = append(out, infos[r])
	}
	return out
}

// Parse converts an identifier into a Room.
func Parse(s string) (Room, error) {
	r := Room(s)
	if !r.Valid() {
		return None, fmt.Errorf("%w: %q", ErrUnknownRoom, s)
	}
	return r, nil
}
