package quiz

import "strconv"

// Option is one selectable answer of a question.
type Option struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"question"`
	Options []Option `json:"options"`
}

var questions = []Question{
	{
		ID:   1,
		Text: "What type of work environment do you prefer?",
		Options: []Option{
			{Text: "Working outdoors and being physically active", Value: "outdoor"},
			{Text: "Working with machinery and tools", Value: "mechanical"},
			{Text: "Working in a controlled indoor environment", Value: "indoor"},
			{Text: "A mix of indoor and outdoor work", Value: "mixed"},
		},
	},
	{
		ID:   2,
		Text: "Which of these activities do you enjoy the most?",
		Options: []Option{
			{Text: "Building or repairing things", Value: "hands_on"},
			{Text: "Solving complex problems", Value: "analytical"},
			{Text: "Helping and working with people", Value: "social"},
			{Text: "Being creative and designing", Value: "creative"},
		},
	},
	{
		ID:   3,
		Text: "How do you prefer to learn new skills?",
		Options: []Option{
			{Text: "Hands-on practice and apprenticeship", Value: "practical"},
			{Text: "Classroom instruction with demonstrations", Value: "structured"},
			{Text: "Self-directed learning at my own pace", Value: "independent"},
			{Text: "A combination of theory and practice", Value: "balanced"},
		},
	},
	{
		ID:   4,
		Text: "Which career value is most important to you?",
		Options: []Option{
			{Text: "Job security and stability", Value: "stability"},
			{Text: "High earning potential", Value: "financial"},
			{Text: "Meaningful work that helps others", Value: "purpose"},
			{Text: "Opportunities for advancement", Value: "growth"},
		},
	},
	{
		ID:   5,
		Text: "How do you feel about technology in your career?",
		Options: []Option{
			{Text: "I want to work directly with advanced technology", Value: "tech_focused"},
			{Text: "I prefer traditional tools with some technology", Value: "balanced_tech"},
			{Text: "I'm comfortable using technology as needed", Value: "tech_comfortable"},
			{Text: "I prefer minimal technology in my work", Value: "low_tech"},
		},
	},
	{
		ID:   6,
		Text: "What timeframe are you looking at for training?",
		Options: []Option{
			{Text: "Less than 1 year", Value: "short_term"},
			{Text: "1-2 years", Value: "medium_term"},
			{Text: "2-4 years", Value: "long_term"},
			{Text: "I'm flexible on training time", Value: "flexible"},
		},
	},
}

// Questions returns a copy of the questionnaire in display order.
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = q
		out[i].Options = append([]Option(nil), q.Options...)
	}
	return out
}

func findQuestion(id string) (Question, bool) {
	for _, q := range questions {
		if strconv.Itoa(q.ID) == id {
			return q, true
		}
	}
	return Question{}, false
}
