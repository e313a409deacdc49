package rooms

// Creator is a featured person with a short video story.
type Creator struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	GlyphText string `json:"glyph_text"`
	VideoURL  string `json:"video_url"`
}

// Character is a statue in the Inspiration Garden.
type Character struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	GlyphText   string `json:"glyph_text"`
	Quote       string `json:"quote"`
	Description string `json:"description"`
}

// Link is an outbound share target on the closing room.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

const videoBase = "https://wakanda-forever-master.dogstudio-dev.co/zerolimits/assets/videos/"

var originCreators = []Creator{
	{ID: "hannah-beachler", Name: "Hannah Beachler", Title: "Production Designer", GlyphText: "YMBAKANDA SELLER", VideoURL: videoBase + "hannah.webm"},
	{ID: "jasmine-alexia", Name: "Jasmine Alexia", Title: "Storyboard Artist", GlyphText: "YOKAMTWIT MTXALA", VideoURL: videoBase + "jasmine.webm"},
	{ID: "alicia-diaz", Name: "Alícia Díaz", Title: "Sculptor", GlyphText: "YOKABAL", VideoURL: videoBase + "alicia.webm"},
}

var libraryCreators = []Creator{
	{ID: "naya", Name: "Naya", Title: "Software Engineer", GlyphText: "YMOKAVY8 8FFVXBFY", VideoURL: videoBase + "naya.webm"},
	{ID: "reyna-noriega", Name: "Reyna Noriega", Title: "Visual Artist & Author", GlyphText: "MX1OV3 VTMX1A & YOABVY", VideoURL: videoBase + "reyna.webm"},
	{ID: "joan-marie", Name: "Joan Marie", Title: "Space Engineer", GlyphText: "FYMV 8VKKFVY", VideoURL: videoBase + "joan.webm"},
}

var gardenCharacters = []Character{
	{
		ID:          "dora-milaje",
		Name:        "Dora Milaje",
		GlyphText:   "JHTY BXDYAZ",
		Quote:       `"I AM LOYAL TO THAT THRONE, NO MATTER WHO SITS ON IT."`,
		Description: "Much can be gleaned from these elite warriors who provide protection and intel to protect the crown and country. Though known for being physically skilled in battle, their minds are also among their greatest weapons—overcoming and embracing adversity and solving problems as quickly as they arise. Do the Dora's gifts reflect yours?",
	},
	{
		ID:          "shuri",
		Name:        "Shuri",
		GlyphText:   "COOTX",
		Quote:       `"JUST BECAUSE SOMETHING WORKS DOESN'T MEAN IT CAN'T BE IMPROVED."`,
		Description: "Both a problem solver and maker by nature, Shuri is a visionary, illuminator, decoder, explorer and avant-garde. She's unapologetically bold in her role as a leader across the board— as a master engineer, designer, tech inventor, mathematician, and scientist. Her innovations are of incredible importance to her community. Perhaps when you look at Shuri, you see glimpses of yourself there as well.",
	},
	{
		ID:          "mbaku",
		Name:        "M'Baku",
		GlyphText:   "B'EYAO",
		Quote:       `"WITNESS THE STRENGTH OF THE JABARI... FIRST-HAND!"`,
		Description: "Behold the gifts of a great leader: determination, courage, and passion. M'Baku's superhuman physical agility and strength are particularly impressive when combined with his superior mental agility—strategic, analytical, patient, and tenacious when met with obstacles. Do you think these characteristics would serve you well?",
	},
}

var shareLinks = []Link{
	{Label: "Sprite x Wakanda Forever (Original)", URL: "https://wakanda-forever-master.dogstudio-dev.co/zerolimits"},
	{Label: "Sprite - Official Home", URL: "https://www.coca-cola.com/us/en/brands/sprite"},
	{Label: "View Repository", URL: "https://github.com/iamyourdeveloper/immersive-cinematic-ui-test"},
}

// Creators returns the creators featured in r. Only origin-stories and
// library feature creators.
func Creators(r Room) []Creator {
	var src []Creator
	switch r {
	case OriginStories:
		src = originCreators
	case Library:
		src = libraryCreators
	default:
		return nil
	}
	out := make([]Creator, len(src))
	copy(out, src)
	return out
}

// Characters returns the Inspiration Garden statues.
func Characters() []Character {
	out := make([]Character, len(gardenCharacters))
	copy(out, gardenCharacters)
	return out
}

// ShareLinks returns the closing room's outbound links.
func ShareLinks() []Link {
	out := make([]Link, len(shareLinks))
	copy(out, shareLinks)
	return out
}
