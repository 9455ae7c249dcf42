package question

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// memoryQuestions mimics the Postgres queries over an id-ordered slice.
type memoryQuestions struct {
	mu     sync.Mutex
	rows   []sqlcgen.Question
	nextID int32
	err    error
	gets   int
}

func newMemoryQuestions(rows ...sqlcgen.Question) *memoryQuestions {
	m := &memoryQuestions{nextID: 1}
	for _, row := range rows {
		m.rows = append(m.rows, row)
		if row.ID >= m.nextID {
			m.nextID = row.ID + 1
		}
	}
	return m
}

func (m *memoryQuestions) filter(keep func(sqlcgen.Question) bool) ([]sqlcgen.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []sqlcgen.Question
	for _, row := range m.rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memoryQuestions) List(ctx context.Context) ([]sqlcgen.Question, error) {
	return m.filter(func(sqlcgen.Question) bool { return true })
}

func (m *memoryQuestions) ListByCategory(ctx context.Context, categoryID int32) ([]sqlcgen.Question, error) {
	return m.filter(func(q sqlcgen.Question) bool { return q.Category == categoryID })
}

func (m *memoryQuestions) Search(ctx context.Context, term string) ([]sqlcgen.Question, error) {
	needle := strings.ToLower(term)
	return m.filter(func(q sqlcgen.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), needle)
	})
}

func (m *memoryQuestions) Get(ctx context.Context, id int32) (sqlcgen.Question, error) {
	m.mu.Lock()
	m.gets++
	m.mu.Unlock()
	rows, err := m.filter(func(q sqlcgen.Question) bool { return q.ID == id })
	if err != nil {
		return sqlcgen.Question{}, err
	}
	if len(rows) == 0 {
		return sqlcgen.Question{}, repository.ErrNotFound
	}
	return rows[0], nil
}

func (m *memoryQuestions) Insert(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return sqlcgen.Question{}, m.err
	}
	row := sqlcgen.Question{
		ID:         m.nextID,
		Question:   params.Question,
		Answer:     params.Answer,
		Category:   params.Category,
		Difficulty: params.Difficulty,
	}
	m.nextID++
	m.rows = append(m.rows, row)
	return row, nil
}

func (m *memoryQuestions) Delete(ctx context.Context, id int32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for i, row := range m.rows {
		if row.ID == id {
			m.rows = slices.Delete(m.rows, i, i+1)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memoryQuestions) ListEligibleIDs(ctx context.Context, categoryID int32, excludeIDs []int32) ([]int32, error) {
	rows, err := m.filter(func(q sqlcgen.Question) bool {
		if categoryID > 0 && q.Category != categoryID {
			return false
		}
		return !slices.Contains(excludeIDs, q.ID)
	})
	if err != nil {
		return nil, err
	}
	ids := make([]int32, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

type memoryCategories struct {
	rows []sqlcgen.Category
	err  error
}

func (m *memoryCategories) List(ctx context.Context) ([]sqlcgen.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

func (m *memoryCategories) Get(ctx context.Context, id int32) (sqlcgen.Category, error) {
	if m.err != nil {
		return sqlcgen.Category{}, m.err
	}
	for _, row := range m.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return sqlcgen.Category{}, repository.ErrNotFound
}

var errStoreDown = errors.New("store unavailable")

func defaultCategories() *memoryCategories {
	return &memoryCategories{rows: []sqlcgen.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}}
}

// seedQuestions builds n questions spread round-robin over categories 1..3.
func seedQuestions(n int) []sqlcgen.Question {
	out := make([]sqlcgen.Question, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, sqlcgen.Question{
			ID:         int32(i),
			Question:   "Question number " + string(rune('A'+(i-1)%26)),
			Answer:     "Answer",
			Category:   int32((i-1)%3 + 1),
			Difficulty: int32(i%5 + 1),
		})
	}
	return out
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *FlexibleInt {
	v := FlexibleInt(n)
	return &v
}
