package question

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// QuestionsPerPage is the fixed page size for every paginated listing.
const QuestionsPerPage = 10

// Question is the formatted record delivered to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// FlexibleInt accepts a JSON number or a numeric string ("1", 1 or 1.0).
// Clients send category ids both ways; everything past decoding is an int.
type FlexibleInt int

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	raw = strings.TrimSpace(strings.Trim(raw, `"`))
	if n, err := strconv.Atoi(raw); err == nil {
		*f = FlexibleInt(n)
		return nil
	}
	// 1.0 and 1e0 are valid JSON spellings of 1
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", data, err)
	}
	if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return fmt.Errorf("invalid integer %s: not integral", data)
	}
	*f = FlexibleInt(int64(v))
	return nil
}

// CreateQuestionRequest is the POST /questions body. A non-empty SearchTerm
// turns the request into a search and the other fields are ignored.
type CreateQuestionRequest struct {
	Question   *string      `json:"question" validate:"required,min=1"`
	Answer     *string      `json:"answer" validate:"required,min=1"`
	Category   *FlexibleInt `json:"category" validate:"required,gt=0"`
	Difficulty *FlexibleInt `json:"difficulty" validate:"required"`
	SearchTerm string       `json:"searchTerm"`
}

// QuizCategory identifies the category a quiz draws from. ID 0 means any.
type QuizCategory struct {
	ID   FlexibleInt `json:"id"`
	Type string      `json:"type,omitempty"`
}

// QuizRequest is the POST /quizzes body. Nil fields mean the key was absent.
type QuizRequest struct {
	PreviousQuestions []FlexibleInt `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// Page is one slice of a result set plus the size of the whole set.
type Page struct {
	Questions []Question
	Total     int
}

// QuestionListing is the result of ListQuestions.
type QuestionListing struct {
	Page
	Categories map[int]string
}

// Deletion is the result of DeleteQuestion.
type Deletion struct {
	Page
	Deleted int
}

// Creation is the result of CreateQuestion.
type Creation struct {
	Page
	ID int
}

// CategoryPage is the result of QuestionsByCategory.
type CategoryPage struct {
	Page
	CurrentCategory string
}

// QuizPick is the question drawn for a quiz round together with the updated
// list of ids the client has seen.
type QuizPick struct {
	Question          Question
	PreviousQuestions []int
}
