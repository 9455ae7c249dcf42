package question

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-playground/validator/v10"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
)

var (
	// ErrNotFound covers empty pages, unknown ids and unknown categories.
	ErrNotFound = errors.New("question: not found")
	// ErrInvalidQuestion wraps validation failures on create.
	ErrInvalidQuestion = errors.New("question: invalid question")
	// ErrNoEligibleQuestion means every question in the quiz scope was already seen.
	ErrNoEligibleQuestion = errors.New("question: no eligible quiz question")
)

type questionRepository interface {
	List(ctx context.Context) ([]sqlcgen.Question, error)
	ListByCategory(ctx context.Context, categoryID int32) ([]sqlcgen.Question, error)
	Search(ctx context.Context, term string) ([]sqlcgen.Question, error)
	Get(ctx context.Context, id int32) (sqlcgen.Question, error)
	Insert(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	Delete(ctx context.Context, id int32) error
	ListEligibleIDs(ctx context.Context, categoryID int32, excludeIDs []int32) ([]int32, error)
}

type categoryRepository interface {
	List(ctx context.Context) ([]sqlcgen.Category, error)
	Get(ctx context.Context, id int32) (sqlcgen.Category, error)
}

var (
	_ questionRepository = (*repository.QuestionRepository)(nil)
	_ categoryRepository = (*repository.CategoryRepository)(nil)
)

// ServiceOptions tunes Service behavior.
type ServiceOptions struct {
	// Pick returns an index in [0, n). Nil uses a fresh random source per call.
	Pick    func(n int) int
	Metrics *metrics.Metrics
}

// Service answers category, question and quiz queries on top of the repositories.
type Service struct {
	questions  questionRepository
	categories categoryRepository
	validate   *validator.Validate
	pick       func(n int) int
	metrics    *metrics.Metrics
}

func NewService(questions questionRepository, categories categoryRepository, opts ServiceOptions) *Service {
	pick := opts.Pick
	if pick == nil {
		pick = requestScopedPick
	}
	return &Service{
		questions:  questions,
		categories: categories,
		validate:   validator.New(),
		pick:       pick,
		metrics:    opts.Metrics,
	}
}

// ListCategories maps every category id to its display type.
func (s *Service) ListCategories(ctx context.Context) (map[int]string, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make(map[int]string, len(rows))
	for _, row := range rows {
		out[int(row.ID)] = row.Type
	}
	return out, nil
}

// ListQuestions returns one page of all questions plus the category map.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionListing, error) {
	rows, err := s.questions.List(ctx)
	if err != nil {
		return QuestionListing{}, fmt.Errorf("list questions: %w", err)
	}
	current := Paginate(page, toDomain(rows))
	if len(current) == 0 {
		return QuestionListing{}, ErrNotFound
	}
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return QuestionListing{}, err
	}
	return QuestionListing{
		Page:       Page{Questions: current, Total: len(rows)},
		Categories: categories,
	}, nil
}

// DeleteQuestion removes a question and returns the requested page of what remains.
func (s *Service) DeleteQuestion(ctx context.Context, id int, page int) (Deletion, error) {
	key, ok := toInt32(id)
	if !ok {
		return Deletion{}, ErrNotFound
	}
	if err := s.questions.Delete(ctx, key); err != nil {
		return Deletion{}, notFoundOr(err, "delete question")
	}
	s.metrics.QuestionDeleted()
	logger := logging.FromContext(ctx)
	logger.Info().Int("question_id", id).Msg("question deleted")

	rows, err := s.questions.List(ctx)
	if err != nil {
		return Deletion{}, fmt.Errorf("list questions: %w", err)
	}
	return Deletion{
		Page:    Page{Questions: Paginate(page, toDomain(rows)), Total: len(rows)},
		Deleted: id,
	}, nil
}

// SearchQuestions pages through questions whose text contains term, ignoring case.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (Page, error) {
	rows, err := s.questions.Search(ctx, term)
	if err != nil {
		return Page{}, fmt.Errorf("search questions: %w", err)
	}
	return Page{Questions: Paginate(page, toDomain(rows)), Total: len(rows)}, nil
}

// CreateQuestion validates and stores a question, then returns the requested
// page of all questions.
func (s *Service) CreateQuestion(ctx context.Context, req CreateQuestionRequest, page int) (Creation, error) {
	if err := s.validate.Struct(req); err != nil {
		return Creation{}, fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}
	category, ok := toInt32(int(*req.Category))
	if !ok {
		return Creation{}, fmt.Errorf("%w: category out of range", ErrInvalidQuestion)
	}
	difficulty, ok := toInt32(int(*req.Difficulty))
	if !ok {
		return Creation{}, fmt.Errorf("%w: difficulty out of range", ErrInvalidQuestion)
	}

	created, err := s.questions.Insert(ctx, sqlcgen.InsertQuestionParams{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   category,
		Difficulty: difficulty,
	})
	if err != nil {
		return Creation{}, fmt.Errorf("insert question: %w", err)
	}
	s.metrics.QuestionCreated()
	logger := logging.FromContext(ctx)
	logger.Info().
		Int32("question_id", created.ID).
		Int32("category", created.Category).
		Msg("question created")

	rows, err := s.questions.List(ctx)
	if err != nil {
		return Creation{}, fmt.Errorf("list questions: %w", err)
	}
	return Creation{
		Page: Page{Questions: Paginate(page, toDomain(rows)), Total: len(rows)},
		ID:   int(created.ID),
	}, nil
}

// QuestionsByCategory returns one page of a category's questions and its display name.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID int, page int) (CategoryPage, error) {
	key, ok := toInt32(categoryID)
	if !ok {
		return CategoryPage{}, ErrNotFound
	}
	rows, err := s.questions.ListByCategory(ctx, key)
	if err != nil {
		return CategoryPage{}, fmt.Errorf("list questions by category: %w", err)
	}
	current := Paginate(page, toDomain(rows))
	if len(current) == 0 {
		return CategoryPage{}, ErrNotFound
	}
	category, err := s.categories.Get(ctx, key)
	if err != nil {
		return CategoryPage{}, notFoundOr(err, "get category")
	}
	return CategoryPage{
		Page:            Page{Questions: current, Total: len(rows)},
		CurrentCategory: category.Type,
	}, nil
}

func toDomain(rows []sqlcgen.Question) []Question {
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, formatQuestion(row))
	}
	return out
}

func formatQuestion(row sqlcgen.Question) Question {
	return Question{
		ID:         int(row.ID),
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   int(row.Category),
		Difficulty: int(row.Difficulty),
	}
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func toInt32(v int) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

func requestScopedPick(n int) int {
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	return r.IntN(n)
}
