package mood

// Burnout quiz: five fixed ordinal self-report questions. Each answer label
// maps to 0, 1 or 2 points; the total (0-10) selects a recommendation
// bucket. This is configuration data, not logic - the question set and the
// buckets live in one declarative table.

type QuizQuestion struct {
	ID      string         `json:"id"`
	Prompt  string         `json:"prompt"`
	Options []string       `json:"options"`
	points  map[string]int `json:"-"`
}

// QuizBucket is the recommendation selected by the quiz total.
type QuizBucket string

const (
	BucketSelfCare     QuizBucket = "self_care"
	BucketIntensive    QuizBucket = "intensive_self_care"
	BucketProfessional QuizBucket = "professional_support"
)

const (
	bucketProfessionalMin = 8
	bucketIntensiveMin    = 5
)

// QuizResult is the scored outcome of a complete quiz submission.
type QuizResult struct {
	Total  int        `json:"total"`
	Bucket QuizBucket `json:"bucket"`
}

var quizQuestions = []QuizQuestion{
	{
		ID:      "sleep_quality",
		Prompt:  "How has your sleep felt this week?",
		Options: []string{"Restful", "Broken", "Exhausting"},
		points:  map[string]int{"Restful": 0, "Broken": 1, "Exhausting": 2},
	},
	{
		ID:      "energy",
		Prompt:  "How is your energy through the day?",
		Options: []string{"Normal", "Dips often", "Drained all day"},
		points:  map[string]int{"Normal": 0, "Dips often": 1, "Drained all day": 2},
	},
	{
		ID:      "workload",
		Prompt:  "How does your workload feel?",
		Options: []string{"Manageable", "Heavy", "Crushing"},
		points:  map[string]int{"Manageable": 0, "Heavy": 1, "Crushing": 2},
	},
	{
		ID:      "detachment",
		Prompt:  "Do you feel distant or cynical about what you do?",
		Options: []string{"Rarely", "Sometimes", "Most of the time"},
		points:  map[string]int{"Rarely": 0, "Sometimes": 1, "Most of the time": 2},
	},
	{
		ID:      "motivation",
		Prompt:  "How hard is it to get started on things?",
		Options: []string{"Not hard", "Takes effort", "Feels impossible"},
		points:  map[string]int{"Not hard": 0, "Takes effort": 1, "Feels impossible": 2},
	},
}

// QuizQuestions returns the fixed question set in presentation order.
func QuizQuestions() []QuizQuestion {
	out := make([]QuizQuestion, len(quizQuestions))
	copy(out, quizQuestions)
	return out
}

// ScoreQuiz sums the ordinal points for a full answer set. Every question
// must be answered (ErrIncompleteQuiz otherwise); an unknown label is
// ErrUnknownQuizAnswer.
func ScoreQuiz(answers map[string]string) (*QuizResult, error) {
	total := 0
	for _, q := range quizQuestions {
		label, ok := answers[q.ID]
		if !ok {
			return nil, ErrIncompleteQuiz
		}
		pts, ok := q.points[label]
		if !ok {
			return nil, ErrUnknownQuizAnswer
		}
		total += pts
	}

	bucket := BucketSelfCare
	switch {
	case total >= bucketProfessionalMin:
		bucket = BucketProfessional
	case total >= bucketIntensiveMin:
		bucket = BucketIntensive
	}

	return &QuizResult{Total: total, Bucket: bucket}, nil
}
