package zenhub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(Config{
		Token:      "secret",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestGetOldestBoard(t *testing.T) {
	var gotPath, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Authentication-Token")
		w.Write([]byte(`{
			"pipelines": [
				{"id": "p1", "name": "New Issues", "issues": [
					{"issue_number": 8, "is_epic": true},
					{"issue_number": 9, "is_epic": false}
				]},
				{"id": "p2", "name": "In Progress", "issues": []}
			]
		}`))
	}))
	defer server.Close()

	board, err := newTestClient(t, server).GetOldestBoard(context.Background(), 1296269)
	if err != nil {
		t.Fatalf("GetOldestBoard: %v", err)
	}
	if gotPath != "/p1/repositories/1296269/board" {
		t.Errorf("path = %q", gotPath)
	}
	if gotToken != "secret" {
		t.Errorf("X-Authentication-Token = %q", gotToken)
	}
	if len(board.Pipelines) != 2 {
		t.Fatalf("pipelines = %d, want 2", len(board.Pipelines))
	}
	first := board.Pipelines[0]
	if first.Name != "New Issues" || len(first.Issues) != 2 {
		t.Errorf("pipeline = %+v", first)
	}
	if first.Issues[0].Number != 8 || !first.Issues[0].IsEpic {
		t.Errorf("issue ref = %+v", first.Issues[0])
	}
}

func TestGetOldestBoardStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	if _, err := newTestClient(t, server).GetOldestBoard(context.Background(), 1); err == nil {
		t.Fatal("expected an error for a 403 response")
	}
}
