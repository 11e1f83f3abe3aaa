// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package asking

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"askdb/cli/internal/backend"
	"askdb/cli/internal/history"
	"askdb/cli/internal/session"
)

// fakeAPI implements backend.API for controller tests. Only Ask is exercised;
// the remaining methods satisfy the interface.
type fakeAPI struct {
	answer *backend.Answer
	err    error

	mu      sync.Mutex
	asked   []string
	release chan struct{}
}

func (f *fakeAPI) Ask(ctx context.Context, question string, showReasoning bool) (*backend.Answer, error) {
	f.mu.Lock()
	f.asked = append(f.asked, question)
	f.mu.Unlock()
	if f.release != nil {
		<-f.release
	}
	return f.answer, f.err
}

func (f *fakeAPI) GetVersion(ctx context.Context) (string, error) { return "test", nil }
func (f *fakeAPI) ListDatabases(ctx context.Context) (*backend.DatabaseInfo, error) {
	return nil, nil
}
func (f *fakeAPI) SelectDatabase(ctx context.Context, name string) (string, error) { return "", nil }
func (f *fakeAPI) UploadDatabase(ctx context.Context, path string) (string, error) { return "", nil }
func (f *fakeAPI) Schema(ctx context.Context, table string) (*backend.SchemaView, error) {
	return nil, nil
}
func (f *fakeAPI) ExecuteSQL(ctx context.Context, sql string) (*backend.ExecResult, error) {
	return nil, nil
}

func TestAskResolvesAnswer(t *testing.T) {
	api := &fakeAPI{answer: &backend.Answer{
		Summary:           "There are 42 users.",
		SQL:               "SELECT COUNT(*) FROM users",
		Result:            &backend.AnswerResult{Columns: []string{"count"}, Rows: []map[string]any{{"count": 42}}},
		DatabaseAvailable: true,
	}}
	ctl := NewController(api)

	got, err := ctl.Ask(context.Background(), "  how many users?  ")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if got.Status != session.StatusSuccess {
		t.Errorf("Status = %q, want %q", got.Status, session.StatusSuccess)
	}
	if !got.ShowResult {
		t.Error("ShowResult = false, want true")
	}
	if api.asked[0] != "how many users?" {
		t.Errorf("question sent = %q, want trimmed", api.asked[0])
	}
	if cur := ctl.Current(); cur.SQL != got.SQL {
		t.Errorf("Current().SQL = %q, want %q", cur.SQL, got.SQL)
	}
}

func TestAskTransportFailure(t *testing.T) {
	api := &fakeAPI{err: errors.New("connection refused")}
	ctl := NewController(api)

	got, err := ctl.Ask(context.Background(), "how many users?")
	if err != nil {
		t.Fatalf("Ask() error = %v, want nil (failures become error sessions)", err)
	}
	if got.Status != session.StatusError {
		t.Errorf("Status = %q, want %q", got.Status, session.StatusError)
	}
	if got.ErrorMessage != "connection refused" {
		t.Errorf("ErrorMessage = %q", got.ErrorMessage)
	}
}

func TestAskEmptyQuestion(t *testing.T) {
	ctl := NewController(&fakeAPI{})
	if _, err := ctl.Ask(context.Background(), "   "); !errors.Is(err, ErrEmptyQuestion) {
		t.Errorf("Ask(blank) error = %v, want ErrEmptyQuestion", err)
	}
}

func TestAskRejectsConcurrent(t *testing.T) {
	api := &fakeAPI{answer: &backend.Answer{}, release: make(chan struct{})}
	ctl := NewController(api)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = ctl.Ask(context.Background(), "first")
	}()

	// Wait for the first question to reach the API before submitting the second.
	deadline := time.After(2 * time.Second)
	for {
		api.mu.Lock()
		started := len(api.asked) > 0
		api.mu.Unlock()
		if started {
			break
		}
		select {
		case <-deadline:
			t.Fatal("first Ask never reached the API")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if !ctl.InFlight() {
		t.Error("InFlight() = false while a question is outstanding")
	}
	if _, err := ctl.Ask(context.Background(), "second"); !errors.Is(err, ErrBusy) {
		t.Errorf("concurrent Ask error = %v, want ErrBusy", err)
	}

	close(api.release)
	<-done
	if ctl.InFlight() {
		t.Error("InFlight() = true after completion")
	}
}

func TestAskRecordsHistory(t *testing.T) {
	log := history.OpenAt(filepath.Join(t.TempDir(), "history.jsonl"))
	api := &fakeAPI{answer: &backend.Answer{
		SQL:               "SELECT name FROM artists",
		Result:            &backend.AnswerResult{Columns: []string{"name"}, Rows: []map[string]any{{"name": "AC/DC"}}},
		DatabaseAvailable: true,
	}}
	ctl := NewController(api).WithHistory(log)

	if _, err := ctl.Ask(context.Background(), "list artists"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	records, err := log.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	r := records[0]
	if r.Question != "list artists" || r.Status != "success" || r.RowCount != 1 {
		t.Errorf("record = %+v", r)
	}
}

func TestReset(t *testing.T) {
	api := &fakeAPI{err: errors.New("boom")}
	ctl := NewController(api)
	_, _ = ctl.Ask(context.Background(), "anything")
	ctl.Reset()
	if got := ctl.Current().Status; got != session.StatusIdle {
		t.Errorf("Status after Reset = %q, want idle", got)
	}
}

func TestStageAt(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    session.Status
	}{
		{0, session.StatusThinking},
		{1900 * time.Millisecond, session.StatusThinking},
		{2 * time.Second, session.StatusExploring},
		{4 * time.Second, session.StatusExploring},
		{5 * time.Second, session.StatusGenerating},
		{8 * time.Second, session.StatusGenerating},
		{9 * time.Second, session.StatusExecuting},
		{5 * time.Minute, session.StatusExecuting},
	}
	for _, tt := range tests {
		if got := StageAt(tt.elapsed); got != tt.want {
			t.Errorf("StageAt(%v) = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}

func TestIsSQLRequest(t *testing.T) {
	tests := []struct {
		question string
		want     bool
	}{
		{"write a query to list all albums", true},
		{"show me the query for top customers", true},
		{"generate sql for monthly revenue", true},
		{"SELECT everything from invoices", true},
		{"how many customers are there?", false},
		{"which artist has the most albums?", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSQLRequest(tt.question); got != tt.want {
			t.Errorf("IsSQLRequest(%q) = %v, want %v", tt.question, got, tt.want)
		}
	}
}
