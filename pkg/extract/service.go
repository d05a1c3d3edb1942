package extract

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/orgchart/pkg/cache"
	"github.com/matzehuels/orgchart/pkg/company"
	"github.com/matzehuels/orgchart/pkg/document"
	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/observability"
)

// MinTextLength is the shortest extracted text worth sending to a model.
const MinTextLength = 10

// Service converts documents to records.
type Service struct {
	model  Model
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
	retry  func(context.Context, func() error) error
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithCache sets the cache for model results.
func WithCache(c cache.Cache, k cache.Keyer) ServiceOption {
	return func(s *Service) {
		if c != nil {
			s.cache = c
		}
		if k != nil {
			s.keyer = k
		}
	}
}

// WithServiceLogger sets the logger.
func WithServiceLogger(l *log.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service. A nil model makes every document fall back
// to sample data.
func NewService(model Model, opts ...ServiceOption) *Service {
	s := &Service{
		model:  model,
		cache:  cache.NewNullCache(),
		keyer:  cache.NewDefaultKeyer(),
		logger: log.Default(),
		retry:  cache.RetryWithBackoff,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HasModel reports whether a model is configured.
func (s *Service) HasModel() bool { return s.model != nil }

// Process extracts the companies in doc. Model failures fall back to sample
// data; the only error is a cancelled context.
func (s *Service) Process(ctx context.Context, doc *document.Document) (*Response, error) {
	start := time.Now()
	observability.Pipeline().OnExtractStart(ctx, doc.Name)

	text, err := doc.Text()
	if err != nil {
		s.logger.Warn("text extraction failed", "file", doc.Name, "err", err)
		text = ""
	}

	records := s.records(ctx, doc, text)
	if err := ctx.Err(); err != nil {
		observability.Pipeline().OnExtractComplete(ctx, doc.Name, 0, time.Since(start), err)
		return nil, errors.Wrap(errors.ErrCodeTimeout, err, "request cancelled")
	}
	records = company.AssignLevels(records)

	preview := Preview(text)
	observability.Pipeline().OnExtractComplete(ctx, doc.Name, len(records), time.Since(start), nil)
	return &Response{Success: true, Companies: records, ExtractedText: preview}, nil
}

// records returns the model's companies, or sample data when the model
// cannot be used.
func (s *Service) records(ctx context.Context, doc *document.Document, text string) []company.Record {
	if s.model == nil {
		s.logger.Info("no model configured, using sample data", "file", doc.Name)
		return company.FallbackSample()
	}
	if !doc.IsImage() && len(strings.TrimSpace(text)) < MinTextLength {
		s.logger.Info("no meaningful text, using sample data", "file", doc.Name, "chars", len(text))
		return company.FallbackSample()
	}

	records, err := s.ask(ctx, doc, text)
	if err != nil {
		s.logger.Warn("model parsing failed, using sample data", "file", doc.Name, "err", err)
		return company.Sample()
	}
	return records
}

func (s *Service) ask(ctx context.Context, doc *document.Document, text string) ([]company.Record, error) {
	key := s.keyer.ExtractionKey(s.model.Name(), cache.Hash(doc.Data))
	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		var cached []company.Record
		if json.Unmarshal(data, &cached) == nil && len(cached) > 0 {
			observability.Cache().OnCacheHit(ctx, "extract")
			return company.Clone(cached), nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "extract")

	var reply string
	err := s.retry(ctx, func() error {
		var err error
		if doc.IsImage() {
			reply, err = s.model.ParseImage(ctx, doc.DataURL())
		} else {
			reply, err = s.model.ParseText(ctx, text)
		}
		return err
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExtraction, err, "model request failed")
	}
	s.logger.Debug("model reply", "file", doc.Name, "chars", len(reply))

	records, err := ParseCompanies(reply)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExtraction, err, "unreadable model reply")
	}

	if data, err := json.Marshal(records); err == nil {
		if err := s.cache.Set(ctx, key, data, cache.TTLExtraction); err != nil {
			s.logger.Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "extract", len(data))
		}
	}
	return records, nil
}
