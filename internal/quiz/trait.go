package quiz

// Trait is one of the five classification buckets.
type Trait string

const (
	Decoder     Trait = "decoder"
	Visionary   Trait = "visionary"
	Illuminator Trait = "illuminator"
	AvantGarde  Trait = "avant-garde"
	Explorer    Trait = "explorer"
)

// traitOrder is the declaration order. It breaks scoring ties.
var traitOrder = [...]Trait{Decoder, Visionary, Illuminator, AvantGarde, Explorer}

// Traits returns all traits in declaration order.
func Traits() []Trait {
	out := make([]Trait, len(traitOrder))
	copy(out, traitOrder[:])
	return out
}

// Valid reports whether t is a known trait.
func (t Trait) Valid() bool {
	_, ok := profiles[t]
	return ok
}

// Profile is the display text for a trait.
type Profile struct {
	Trait       Trait  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Profile returns the display text for t.
func (t Trait) Profile() Profile {
	return profiles[t]
}

// Name is shorthand for t.Profile().Name.
func (t Trait) Name() string {
	if p, ok := profiles[t]; ok {
		return p.Name
	}
	return string(t)
}

// Profiles returns every trait profile in declaration order.
func Profiles() []Profile {
	out := make([]Profile, 0, len(traitOrder))
	for _, t := range traitOrder {
		out = append(out, profiles[t])
	}
	return out
}

var profiles = map[Trait]Profile{
	Decoder: {
		Trait:       Decoder,
		Name:        "The Decoder",
		Description: "Numbers form a bridge between the abstract and physical worlds, and perhaps the path to discovering your gift. Analytical and strategic, you're adept at zeroing in on the connection between new problems and existing knowledge. You can inspire by teaching, influence policy via research, secure futures in accounting and finance, and inform the creative process in a multitude of fields.",
	},
	Visionary: {
		Trait:       Visionary,
		Name:        "The Visionary",
		Description: "Where others see a door closing, you see an opportunity to open it—and often, build a better one. As an innovator and creator, you're not only a problem solver, but a problem seeker. You always find ways to improve the world around you and are creative enough to envision it differently. A myriad of paths awaits you—among them sound, design, software, aerospace, industrial, biomedical and more.",
	},
	Illuminator: {
		Trait:       Illuminator,
		Name:        "The Illuminator",
		Description: "You're inspired by the power of the question, \"What if?\" Whether optimizing existing systems and processes or experimenting with new ideas to invent them, you're well-equipped with the creativity and ingenuity it takes to propel our world forward. From programming and developing, to data modeling and analyzing, there are zero limits to your potential.",
	},
	AvantGarde: {
		Trait:       AvantGarde,
		Name:        "The Avant-Garde",
		Description: "Creative to your core, your strong imagination and unique vision are your gifts, not only as your life's path, but also your gifts to the world around you. Film, music, fine arts, gaming, fashion and cuisine are among the canvasses upon which you can leave your mark. Opportunities for you to make the world a better, more beautiful place are as vast as the imagination, which for you is limitless.",
	},
	Explorer: {
		Trait:       Explorer,
		Name:        "The Explorer",
		Description: "Driven by a mind filled with infinite wonder and a penchant for investigation, your calling lives where curiosity, discovery and observation converge. Plants, animals, computers, data, health, artificial intelligence—your potential spans as far as the ocean is from the sun. Perhaps it's your very nature that led you to the Hall of Zero Limits, and may this be the first of many hypotheses you test.",
	},
}
