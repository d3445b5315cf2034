package pipeline

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tabuflow/convert-core/constants"
)

func newTestRouter() *Router {
	return NewRouter(nil, nil, nil, nil, nil, nil)
}

func TestRouteReceiptFixture(t *testing.T) {
	r := newTestRouter()
	d, err := r.Route(context.Background(), filepath.Join("testdata", "receipt.pdf"), "")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}

	if d.ID == uuid.Nil {
		t.Error("decision has no id")
	}
	if d.Pages != 1 {
		t.Errorf("pages = %d, want 1", d.Pages)
	}
	if d.Category != constants.BillOrReceipt {
		t.Errorf("category = %s, want bill_or_receipt", d.Category)
	}
	if d.DocumentType != constants.DocTypeNormalPDF {
		t.Errorf("document type = %s, want NORMAL_PDF", d.DocumentType)
	}
	if d.Processor != constants.ProcessorForm {
		t.Errorf("processor = %s, want form parser", d.Processor)
	}
	if d.Grid == nil {
		t.Fatal("expected a forced two-column grid for a receipt")
	}
	if len(d.Grid.Columns) != 3 {
		t.Errorf("grid columns = %v, want exactly one split", d.Grid.Columns)
	}
	if d.Quote.CostPerPage != 2.0 || d.Quote.TotalRequired != 2.0 {
		t.Errorf("quote = %+v, want default 2.0 rate for one page", d.Quote)
	}
}

func TestRouteHintOverridesContent(t *testing.T) {
	r := newTestRouter()
	d, err := r.Route(context.Background(), filepath.Join("testdata", "receipt.pdf"), "bank statement")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if d.Processor != constants.ProcessorBank {
		t.Errorf("processor = %s, want bank (hint wins)", d.Processor)
	}
}

func TestRouteRejectsBadInput(t *testing.T) {
	r := newTestRouter()
	if _, err := r.Route(context.Background(), "", ""); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := r.Route(context.Background(), "notes.txt", ""); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := r.Route(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"), ""); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRouteHonorsCancelledContext(t *testing.T) {
	r := newTestRouter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Route(ctx, filepath.Join("testdata", "receipt.pdf"), ""); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestRouteQueueProcessesJobs(t *testing.T) {
	r := newTestRouter()

	var mu sync.Mutex
	results := make(map[string]error)
	q := NewRouteQueue(r, nil,
		WithWorkers(2),
		WithQueueSize(8),
		WithResultHandler(func(job Job, _ Decision, err error) {
			mu.Lock()
			defer mu.Unlock()
			results[job.Path] = err
		}),
	)

	good := filepath.Join("testdata", "receipt.pdf")
	bad := filepath.Join(t.TempDir(), "missing.pdf")
	for _, p := range []string{good, bad} {
		if err := q.Enqueue(context.Background(), Job{Path: p, SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	mu.Lock()
	defer mu.Unlock()
	if len(results) != 2 {
		t.Fatalf("results = %d jobs, want 2", len(results))
	}
	if results[good] != nil {
		t.Errorf("good job failed: %v", results[good])
	}
	if results[bad] == nil {
		t.Error("missing file job should report an error")
	}
}

func TestRouteQueueEnqueueAfterShutdown(t *testing.T) {
	q := NewRouteQueue(newTestRouter(), nil, WithWorkers(1))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)
	// dropped with a warning, never a panic on the closed channel
	if err := q.Enqueue(context.Background(), Job{Path: "late.pdf"}); err != nil {
		t.Errorf("Enqueue after shutdown: %v", err)
	}
}
