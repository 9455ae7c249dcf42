//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"
)

var client = &http.Client{Timeout: 10 * time.Second}

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")
}

// doJSON sends payload (if any) and decodes the JSON reply into a map.
func doJSON(t *testing.T, method, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload failed: %v", err)
		}
	}

	req, err := http.NewRequest(method, baseURL()+path, &body)
	if err != nil {
		t.Fatalf("build request failed: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s %s response failed: %v", method, path, err)
	}
	return resp.StatusCode, out
}

func expectError(t *testing.T, status int, body map[string]interface{}, want int) {
	t.Helper()
	if status != want {
		t.Fatalf("expected %d, got %d: %v", want, status, body)
	}
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body["success"])
	}
	if int(body["error"].(float64)) != want {
		t.Fatalf("expected error=%d, got %v", want, body["error"])
	}
}

func createQuestion(t *testing.T, text string) int {
	t.Helper()
	status, body := doJSON(t, http.MethodPost, "/questions", map[string]interface{}{
		"question":   text,
		"answer":     "integration answer",
		"category":   "1",
		"difficulty": 2,
	})
	if status != http.StatusOK {
		t.Fatalf("create question failed: %d %v", status, body)
	}
	return int(body["id"].(float64))
}
