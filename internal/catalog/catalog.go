// Package catalog loads the read-only question catalog.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kakomon-drill/backend/internal/domain/questionbank"
)

var (
	// ErrUnavailable wraps every failure to obtain the catalog.
	ErrUnavailable      = errors.New("question catalog unavailable")
	ErrQuestionNotFound = errors.New("question not found")
)

// Source returns the full catalog in its published order.
type Source interface {
	Questions(ctx context.Context) ([]questionbank.Question, error)
}

// Question looks up a single question by ID.
func Question(ctx context.Context, src Source, id string) (*questionbank.Question, error) {
	questions, err := src.Questions(ctx)
	if err != nil {
		return nil, err
	}
	q, ok := questionbank.Find(questions, id)
	if !ok {
		return nil, ErrQuestionNotFound
	}
	return q, nil
}

// FileSource reads a JSON array of questions from disk on every call, so an
// edited file is picked up without a restart.
type FileSource struct {
	path string
}

var _ Source = (*FileSource)(nil)

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Questions(_ context.Context) ([]questionbank.Question, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer f.Close()

	return decode(f)
}

// HTTPSource fetches the catalog from another instance's /api/questions.
type HTTPSource struct {
	url    string
	client *http.Client
}

var _ Source = (*HTTPSource)(nil)

// NewHTTPSource targets baseURL, e.g. "http://localhost:8080".
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		url: strings.TrimRight(baseURL, "/") + "/api/questions",
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *HTTPSource) Questions(ctx context.Context) ([]questionbank.Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET %s returned %d", ErrUnavailable, s.url, resp.StatusCode)
	}

	return decode(resp.Body)
}

func decode(r io.Reader) ([]questionbank.Question, error) {
	var questions []questionbank.Question
	if err := json.NewDecoder(r).Decode(&questions); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	return questions, nil
}
