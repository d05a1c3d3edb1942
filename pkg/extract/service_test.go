package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/matzehuels/orgchart/pkg/cache"
	"github.com/matzehuels/orgchart/pkg/document"
)

type fakeModel struct {
	reply string
	err   error
	calls int
}

func (m *fakeModel) Name() string { return "fake" }

func (m *fakeModel) ParseText(context.Context, string) (string, error) {
	m.calls++
	return m.reply, m.err
}

func (m *fakeModel) ParseImage(ctx context.Context, _ string) (string, error) {
	return m.ParseText(ctx, "")
}

func noRetry(_ context.Context, fn func() error) error { return fn() }

func imageDoc() *document.Document {
	return &document.Document{Name: "chart.png", Kind: document.KindImage, MIME: "image/png", Data: []byte("png-bytes")}
}

func TestProcessWithoutModel(t *testing.T) {
	s := NewService(nil)
	resp, err := s.Process(context.Background(), imageDoc())
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Success || len(resp.Companies) != 11 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.ExtractedText != SampleLoadedText {
		t.Errorf("ExtractedText = %q", resp.ExtractedText)
	}
	if resp.Companies[6].Level != 2 {
		t.Errorf("levels not assigned: %+v", resp.Companies[6])
	}
}

func TestProcessShortPDFText(t *testing.T) {
	m := &fakeModel{reply: `[{"name": "A"}]`}
	s := NewService(m)
	s.retry = noRetry

	doc := &document.Document{Name: "a.pdf", Kind: document.KindPDF, Data: []byte("%PDF-1.4\nnot really")}
	resp, err := s.Process(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if m.calls != 0 {
		t.Error("model called for a document without text")
	}
	if len(resp.Companies) != 11 {
		t.Errorf("len = %d, want fallback 11", len(resp.Companies))
	}
}

func TestProcessImageWithModel(t *testing.T) {
	m := &fakeModel{reply: `[{"id":1,"name":"A","parent":"","equity":"100%"},{"id":2,"name":"B","parent":"A","equity":"60%"}]`}
	s := NewService(m)
	s.retry = noRetry

	resp, err := s.Process(context.Background(), imageDoc())
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Companies) != 2 || resp.Companies[1].Level != 1 {
		t.Errorf("companies = %+v", resp.Companies)
	}
	if resp.ExtractedText != SampleLoadedText {
		t.Errorf("ExtractedText = %q, want %q for images", resp.ExtractedText, SampleLoadedText)
	}
}

func TestProcessModelFailure(t *testing.T) {
	m := &fakeModel{err: errors.New("boom")}
	s := NewService(m)
	s.retry = noRetry

	resp, err := s.Process(context.Background(), imageDoc())
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Companies) != 10 {
		t.Errorf("len = %d, want sample 10", len(resp.Companies))
	}
}

func TestProcessCachesModelResult(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	m := &fakeModel{reply: `[{"name": "Only"}]`}
	s := NewService(m, WithCache(fc, nil))
	s.retry = noRetry

	for i := 0; i < 2; i++ {
		resp, err := s.Process(context.Background(), imageDoc())
		if err != nil {
			t.Fatal(err)
		}
		if resp.Companies[0].Name != "Only" {
			t.Fatalf("run %d: %+v", i, resp.Companies)
		}
	}
	if m.calls != 1 {
		t.Errorf("model calls = %d, want 1", m.calls)
	}
}

func TestProcessRetriesTransientErrors(t *testing.T) {
	m := &fakeModel{err: cache.Retryable(cache.ErrNetwork)}
	s := NewService(m)
	attempts := 0
	s.retry = func(ctx context.Context, fn func() error) error {
		for i := 0; i < 3; i++ {
			attempts++
			if err := fn(); !cache.IsRetryable(err) {
				return err
			}
		}
		return cache.ErrNetwork
	}

	if _, err := s.Process(context.Background(), imageDoc()); err != nil {
		t.Fatal(err)
	}
	if m.calls != 3 || attempts != 3 {
		t.Errorf("calls = %d attempts = %d, want 3", m.calls, attempts)
	}
}

func TestProcessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewService(nil).Process(ctx, imageDoc()); err == nil {
		t.Error("expected error for cancelled context")
	}
}
