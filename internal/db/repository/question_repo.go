package repository

import (
	"context"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type questionStore interface {
	ListQuestions(ctx context.Context) ([]sqlcgen.Question, error)
	ListQuestionsByCategory(ctx context.Context, category int32) ([]sqlcgen.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]sqlcgen.Question, error)
	GetQuestion(ctx context.Context, id int32) (sqlcgen.Question, error)
	InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	DeleteQuestion(ctx context.Context, id int32) (int64, error)
	ListEligibleQuestionIDs(ctx context.Context, arg sqlcgen.ListEligibleQuestionIDsParams) ([]int32, error)
}

// QuestionRepository wraps sqlc queries for trivia question access.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// List returns all questions ordered by id.
func (r *QuestionRepository) List(ctx context.Context) ([]sqlcgen.Question, error) {
	return r.store.ListQuestions(ctx)
}

// ListByCategory returns the questions filed under a category id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int32) ([]sqlcgen.Question, error) {
	return r.store.ListQuestionsByCategory(ctx, categoryID)
}

// Search matches term against question text, ignoring case.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]sqlcgen.Question, error) {
	return r.store.SearchQuestions(ctx, term)
}

func (r *QuestionRepository) Get(ctx context.Context, id int32) (sqlcgen.Question, error) {
	q, err := r.store.GetQuestion(ctx, id)
	if err != nil {
		return sqlcgen.Question{}, translate(err)
	}
	return q, nil
}

// Insert stores a new question and returns it with the assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	return r.store.InsertQuestion(ctx, params)
}

// Delete removes a question; ErrNotFound when nothing was deleted.
func (r *QuestionRepository) Delete(ctx context.Context, id int32) error {
	affected, err := r.store.DeleteQuestion(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListEligibleIDs returns ids in categoryID (any category when <= 0) that are
// not in excludeIDs.
func (r *QuestionRepository) ListEligibleIDs(ctx context.Context, categoryID int32, excludeIDs []int32) ([]int32, error) {
	// a nil slice is sent as NULL, which would make NOT (id = ANY(...)) drop every row
	exclude := make([]int32, 0, len(excludeIDs))
	exclude = append(exclude, excludeIDs...)
	return r.store.ListEligibleQuestionIDs(ctx, sqlcgen.ListEligibleQuestionIDsParams{
		CategoryID: categoryID,
		ExcludeIds: exclude,
	})
}
