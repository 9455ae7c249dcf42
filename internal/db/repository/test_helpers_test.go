package repository

import sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"

func sqlQuestion(id int32, text string, category int32) sqlcgen.Question {
	return sqlcgen.Question{
		ID:         id,
		Question:   text,
		Answer:     "answer " + text,
		Category:   category,
		Difficulty: 1,
	}
}
