//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestCategoriesAreSeeded(t *testing.T) {
	status, body := doJSON(t, http.MethodGet, "/categories", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	categories, ok := body["categories"].(map[string]interface{})
	if !ok || len(categories) == 0 {
		t.Fatalf("expected categories, got %v", body["categories"])
	}
	if categories["1"] != "Science" {
		t.Fatalf("expected category 1 to be Science, got %v", categories["1"])
	}
}

func TestCreateThenList(t *testing.T) {
	text := fmt.Sprintf("Who wrote Neil Gaiman's Sandman? %d", time.Now().UnixNano())
	id := createQuestion(t, text)
	defer doJSON(t, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil)

	status, body := doJSON(t, http.MethodGet, "/questions", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["total_questions"].(float64) < 1 {
		t.Fatalf("expected at least one question, got %v", body["total_questions"])
	}
	if len(body["questions"].([]interface{})) > 10 {
		t.Fatalf("page holds more than 10 questions")
	}

	status, body = doJSON(t, http.MethodPost, "/questions", map[string]interface{}{"searchTerm": text})
	if status != http.StatusOK {
		t.Fatalf("search failed: %d %v", status, body)
	}
	if body["total_questions"].(float64) != 1 {
		t.Fatalf("expected exactly one search hit, got %v", body["total_questions"])
	}
}

func TestPageBeyondEndIsNotFound(t *testing.T) {
	status, body := doJSON(t, http.MethodGet, "/questions?page=1000", nil)
	expectError(t, status, body, http.StatusNotFound)
	if body["message"] != "Not found" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	marker := fmt.Sprintf("HeY-%d", time.Now().UnixNano())
	id := createQuestion(t, "Say "+marker+" to the quiz")
	defer doJSON(t, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil)

	status, body := doJSON(t, http.MethodPost, "/questions", map[string]interface{}{"searchTerm": "hey-"})
	if status != http.StatusOK {
		t.Fatalf("search failed: %d %v", status, body)
	}
	if body["total_questions"].(float64) < 1 {
		t.Fatalf("expected a hit for %q", marker)
	}
}

func TestDeleteTwice(t *testing.T) {
	id := createQuestion(t, fmt.Sprintf("Delete me %d", time.Now().UnixNano()))
	path := fmt.Sprintf("/questions/%d", id)

	status, body := doJSON(t, http.MethodDelete, path, nil)
	if status != http.StatusOK {
		t.Fatalf("delete failed: %d %v", status, body)
	}
	if int(body["deleted"].(float64)) != id {
		t.Fatalf("expected deleted=%d, got %v", id, body["deleted"])
	}

	status, body = doJSON(t, http.MethodDelete, path, nil)
	expectError(t, status, body, http.StatusUnprocessableEntity)
}

func TestCreateMissingFieldsIsUnprocessable(t *testing.T) {
	status, body := doJSON(t, http.MethodPost, "/questions", map[string]interface{}{"question": "no answer"})
	expectError(t, status, body, http.StatusUnprocessableEntity)
}

func TestQuizNeverRepeats(t *testing.T) {
	id := createQuestion(t, fmt.Sprintf("Quiz question %d", time.Now().UnixNano()))
	defer doJSON(t, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil)

	seen := map[int]bool{}
	previous := []int{}
	for i := 0; i < 5; i++ {
		status, body := doJSON(t, http.MethodPost, "/quizzes", map[string]interface{}{
			"previous_questions": previous,
			"quiz_category":      map[string]interface{}{"id": 0, "type": "click"},
		})
		if status == http.StatusUnprocessableEntity {
			break
		}
		if status != http.StatusOK {
			t.Fatalf("quiz failed: %d %v", status, body)
		}
		question := body["question"].(map[string]interface{})
		drawn := int(question["id"].(float64))
		if seen[drawn] {
			t.Fatalf("question %d served twice", drawn)
		}
		seen[drawn] = true
		previous = append(previous, drawn)
	}
	if len(seen) == 0 {
		t.Fatal("quiz served no questions")
	}
}

func TestQuizMissingFieldsIsNotFound(t *testing.T) {
	status, body := doJSON(t, http.MethodPost, "/quizzes", map[string]interface{}{})
	expectError(t, status, body, http.StatusNotFound)
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	status, body := doJSON(t, http.MethodGet, "/nope", nil)
	expectError(t, status, body, http.StatusNotFound)
}
