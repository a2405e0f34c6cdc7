package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// answersAt builds a full answer set picking the option at the given index
// for every question.
func answersAt(idx int) map[string]string {
	answers := make(map[string]string)
	for _, q := range QuizQuestions() {
		answers[q.ID] = q.Options[idx]
	}
	return answers
}

func TestScoreQuizBuckets(t *testing.T) {
	tests := []struct {
		name       string
		answers    map[string]string
		wantTotal  int
		wantBucket QuizBucket
	}{
		{
			name:       "all calm answers",
			answers:    answersAt(0),
			wantTotal:  0,
			wantBucket: BucketSelfCare,
		},
		{
			name:       "all middle answers",
			answers:    answersAt(1),
			wantTotal:  5,
			wantBucket: BucketIntensive,
		},
		{
			name:       "all severe answers",
			answers:    answersAt(2),
			wantTotal:  10,
			wantBucket: BucketProfessional,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ScoreQuiz(tt.answers)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.Total)
			assert.Equal(t, tt.wantBucket, res.Bucket)
		})
	}
}

func TestScoreQuizBucketBoundaries(t *testing.T) {
	// 4 points stays self care, 5 is intensive, 8 is professional.
	questions := QuizQuestions()

	build := func(points []int) map[string]string {
		answers := make(map[string]string)
		for i, q := range questions {
			answers[q.ID] = q.Options[points[i]]
		}
		return answers
	}

	res, err := ScoreQuiz(build([]int{2, 2, 0, 0, 0})) // 4
	assert.NoError(t, err)
	assert.Equal(t, BucketSelfCare, res.Bucket)

	res, err = ScoreQuiz(build([]int{2, 2, 1, 0, 0})) // 5
	assert.NoError(t, err)
	assert.Equal(t, BucketIntensive, res.Bucket)

	res, err = ScoreQuiz(build([]int{2, 2, 2, 2, 0})) // 8
	assert.NoError(t, err)
	assert.Equal(t, BucketProfessional, res.Bucket)
}

func TestScoreQuizRejectsMissingAnswer(t *testing.T) {
	answers := answersAt(1)
	delete(answers, "workload")

	_, err := ScoreQuiz(answers)
	assert.ErrorIs(t, err, ErrIncompleteQuiz)
}

func TestScoreQuizRejectsUnknownLabel(t *testing.T) {
	answers := answersAt(0)
	answers["energy"] = "Over 9000"

	_, err := ScoreQuiz(answers)
	assert.ErrorIs(t, err, ErrUnknownQuizAnswer)
}

func TestQuizQuestionsCopyIsIsolated(t *testing.T) {
	qs := QuizQuestions()
	qs[0].Prompt = "mutated"

	assert.NotEqual(t, "mutated", QuizQuestions()[0].Prompt)
}
