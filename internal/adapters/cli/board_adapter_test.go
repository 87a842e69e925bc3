package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/example/workdesk/internal/ports/primary"
)

// mockBoardService implements primary.BoardService for testing
type mockBoardService struct {
	board  *primary.Board
	err    error
	frames []*primary.Board

	lastFilters  primary.BoardFilters
	lastInterval time.Duration
}

func (m *mockBoardService) Snapshot(ctx context.Context, filters primary.BoardFilters) (*primary.Board, error) {
	m.lastFilters = filters
	if m.err != nil {
		return nil, m.err
	}
	return m.board, nil
}

func (m *mockBoardService) Watch(ctx context.Context, filters primary.BoardFilters, interval time.Duration, fn func(*primary.Board) error) error {
	m.lastFilters = filters
	m.lastInterval = interval
	for _, b := range m.frames {
		if err := fn(b); err != nil {
			return err
		}
	}
	return nil
}

func managerBoard() *primary.Board {
	return &primary.Board{
		View: primary.BoardViewManager,
		Entries: []primary.BoardEntry{
			{WorkOrderID: 1, Label: "Plumbing", Status: "pending", Bucket: "yellow", ClientID: 0},
			{WorkOrderID: 2, Label: "Wiring", Status: "in progress", Bucket: "orange", ClientID: 4, WorkerName: "Ivan Petrov", PostTitle: "Electrician"},
			{WorkOrderID: 3, Label: "Painting", Status: "done", Bucket: "green", ClientID: 4, HasElapsed: true, Elapsed: 90 * time.Minute},
		},
	}
}

func TestBoardAdapter_ShowManager(t *testing.T) {
	service := &mockBoardService{board: managerBoard()}
	out := &bytes.Buffer{}
	adapter := NewBoardAdapter(service, out)

	if err := adapter.Show(context.Background(), primary.BoardFilters{View: primary.BoardViewManager}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	output := out.String()
	for _, want := range []string{"Manager board", "#1", "Plumbing", "Ivan Petrov, Electrician", "1:30:00"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %q", want, output)
		}
	}
	if strings.Contains(output, "client 4") {
		t.Errorf("manager board should not show client ids: %q", output)
	}
}

func TestBoardAdapter_CustomerShowsClients(t *testing.T) {
	board := managerBoard()
	board.View = primary.BoardViewCustomer
	out := &bytes.Buffer{}
	adapter := NewBoardAdapter(&mockBoardService{board: board}, out)

	if err := adapter.Show(context.Background(), primary.BoardFilters{View: primary.BoardViewCustomer}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), "client 4") {
		t.Errorf("customer board should show client ids: %q", out.String())
	}
}

func TestBoardAdapter_WorkerHeader(t *testing.T) {
	board := &primary.Board{
		View:   primary.BoardViewWorker,
		Worker: &primary.Worker{ID: 3, FullName: "Ivan Petrov", Post: primary.Post{Title: "Plumber"}, Balance: 300},
	}
	out := &bytes.Buffer{}
	adapter := NewBoardAdapter(&mockBoardService{board: board}, out)

	if err := adapter.Show(context.Background(), primary.BoardFilters{View: primary.BoardViewWorker, WorkerID: 3}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Ivan Petrov (Plumber)  balance 300.00") {
		t.Errorf("missing worker header: %q", output)
	}
	if !strings.Contains(output, "No work orders") {
		t.Errorf("missing empty marker: %q", output)
	}
}

func TestBoardAdapter_ShowError(t *testing.T) {
	adapter := NewBoardAdapter(&mockBoardService{err: errors.New("boom")}, &bytes.Buffer{})

	err := adapter.Show(context.Background(), primary.BoardFilters{View: primary.BoardViewManager})
	if err == nil || !strings.Contains(err.Error(), "failed to build board") {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

func TestBoardAdapter_WatchRendersEachFrame(t *testing.T) {
	first := managerBoard()
	second := managerBoard()
	second.Entries = second.Entries[:1]
	service := &mockBoardService{frames: []*primary.Board{first, second}}
	out := &bytes.Buffer{}
	adapter := NewBoardAdapter(service, out)
	adapter.ClearBetweenFrames = true

	if err := adapter.Watch(context.Background(), primary.BoardFilters{View: primary.BoardViewManager}, 4*time.Second); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if service.lastInterval != 4*time.Second {
		t.Errorf("interval = %v, want 4s", service.lastInterval)
	}
	output := out.String()
	if n := strings.Count(output, "Manager board"); n != 2 {
		t.Errorf("rendered %d frames, want 2", n)
	}
	if n := strings.Count(output, clearScreen); n != 2 {
		t.Errorf("cleared %d times, want 2", n)
	}
}
