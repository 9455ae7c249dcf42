package question

import (
	"context"
	"fmt"

	"github.com/gokatarajesh/trivia-api/internal/logging"
)

// NextQuizQuestion draws one question the client has not seen yet.
//
// categoryID <= 0 draws from every category. The returned PreviousQuestions
// is a new slice: previous followed by the drawn id.
func (s *Service) NextQuizQuestion(ctx context.Context, previous []int, categoryID int) (QuizPick, error) {
	category, ok := toInt32(categoryID)
	if !ok {
		s.metrics.QuizDraw(false)
		return QuizPick{}, ErrNoEligibleQuestion
	}
	exclude := make([]int32, 0, len(previous))
	for _, id := range previous {
		// ids outside int32 cannot exist in the table
		if v, ok := toInt32(id); ok {
			exclude = append(exclude, v)
		}
	}

	eligible, err := s.questions.ListEligibleIDs(ctx, category, exclude)
	if err != nil {
		return QuizPick{}, fmt.Errorf("list eligible questions: %w", err)
	}
	if len(eligible) == 0 {
		s.metrics.QuizDraw(false)
		return QuizPick{}, ErrNoEligibleQuestion
	}

	picked := eligible[s.pick(len(eligible))]
	row, err := s.questions.Get(ctx, picked)
	if err != nil {
		return QuizPick{}, notFoundOr(err, "get quiz question")
	}
	s.metrics.QuizDraw(true)

	seen := make([]int, 0, len(previous)+1)
	seen = append(seen, previous...)
	seen = append(seen, int(row.ID))

	logger := logging.FromContext(ctx)
	logger.Debug().
		Int32("question_id", row.ID).
		Int("category", categoryID).
		Int("eligible", len(eligible)).
		Msg("quiz question drawn")

	return QuizPick{Question: formatQuestion(row), PreviousQuestions: seen}, nil
}
