package quiz

// Question is a two-option prompt. Option i selects Traits[i].
type Question struct {
	ID      int       `json:"id"`
	Line1   string    `json:"line1"`
	Line2   string    `json:"line2"`
	Options [2]string `json:"options"`
	Traits  [2]Trait  `json:"traits"`
}

var questions = [...]Question{
	{ID: 1, Line1: "SELECT A", Line2: "MOVIE GENRE", Options: [2]string{"DOCUMENTARY", "COMEDY"}, Traits: [2]Trait{Decoder, AvantGarde}},
	{ID: 2, Line1: "YOU'D BE MORE", Line2: "INSPIRED AS A", Options: [2]string{"CONTENT CREATOR", "PROGRAMMER"}, Traits: [2]Trait{AvantGarde, Decoder}},
	{ID: 3, Line1: "YOU'D RATHER", Line2: "DISCUSS:", Options: [2]string{"ASTROLOGY", "ASTRONOMY"}, Traits: [2]Trait{Visionary, Illuminator}},
	{ID: 4, Line1: "YOU'D", Line2: "PREFER TO:", Options: [2]string{"TAKE SOMETHING APART", "CREATE A BETTER VERSION"}, Traits: [2]Trait{Decoder, Illuminator}},
}

// QuestionCount is the number of questions in a full quiz.
const QuestionCount = len(questions)

// Questions returns the fixed question list.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions[:])
	return out
}

// QuestionAt returns the question at position i.
func QuestionAt(i int) (Question, bool) {
	if i < 0 || i >= len(questions) {
		return Question{}, false
	}
	return questions[i], true
}
