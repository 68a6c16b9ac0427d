package directory_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nkostic/transferhub/internal/adapter/directory"
	"github.com/nkostic/transferhub/internal/domain"
)

func TestTeamClient_CheckTeamsExist(t *testing.T) {
	var gotIDs []int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/team/exist" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}

		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotIDs); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := directory.NewTeamClient(server.URL, time.Second, nil)

	if err := client.CheckTeamsExist(context.Background(), []int64{30, 20}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(gotIDs) != 2 || gotIDs[0] != 30 || gotIDs[1] != 20 {
		t.Errorf("expected ids [30 20], got %v", gotIDs)
	}
}

func TestTeamClient_MissingTeam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := directory.NewTeamClient(server.URL, time.Second, nil)

	err := client.CheckTeamsExist(context.Background(), []int64{30, 99})
	if !errors.Is(err, domain.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestTeamClient_ServerErrorIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := directory.NewTeamClient(server.URL, time.Second, nil)

	err := client.CheckTeamsExist(context.Background(), []int64{30})
	if !errors.Is(err, domain.ErrDirectoryUnavailable) {
		t.Fatalf("expected ErrDirectoryUnavailable, got %v", err)
	}
}
