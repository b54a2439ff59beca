package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"

	"github.com/wastewise/wastewise-api/internal/domain/entity"
	repo "github.com/wastewise/wastewise-api/internal/domain/repository"
	"github.com/wastewise/wastewise-api/pkg/helpers"
	"github.com/wastewise/wastewise-api/pkg/mailer"
)

var ErrFeedbackNotFound = errors.New("Feedback not found")

// FeedbackService handles resident feedback: sanitized intake, staff
// responses with email notification, and full-text search.
type FeedbackService struct {
	Repo      repo.FeedbackRepository
	Sanitizer *bluemonday.Policy
	ES        *elasticsearch.Client
	ESIndex   string
	Pub       *helpers.RabbitPublisher
	Logger    *logrus.Logger
}

func NewFeedbackService(r repo.FeedbackRepository, es *elasticsearch.Client, esIndex string, pub *helpers.RabbitPublisher, logger *logrus.Logger) *FeedbackService {
	return &FeedbackService{
		Repo:      r,
		Sanitizer: bluemonday.StrictPolicy(),
		ES:        es,
		ESIndex:   esIndex,
		Pub:       pub,
		Logger:    logger,
	}
}

// Create strips any markup from the free-text fields before persistence and
// indexes the stored document for search. Indexing failures are logged, not
// surfaced: the store is the source of truth.
func (s *FeedbackService) Create(ctx context.Context, f *entity.Feedback) error {
	f.Message = s.Sanitizer.Sanitize(f.Message)
	f.Area = s.Sanitizer.Sanitize(f.Area)
	if err := s.Repo.Create(f); err != nil {
		return err
	}
	_ = s.index(ctx, f)
	return nil
}

func (s *FeedbackService) GetAll() ([]*entity.Feedback, error) {
	return s.Repo.GetAll()
}

func (s *FeedbackService) GetByID(id string) (*entity.Feedback, error) {
	f, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *FeedbackService) GetByEmail(email string) ([]*entity.Feedback, error) {
	return s.Repo.GetByEmail(email)
}

func (s *FeedbackService) GetByUserID(userID string) ([]*entity.Feedback, error) {
	return s.Repo.GetByUserID(userID)
}

func (s *FeedbackService) Update(ctx context.Context, f *entity.Feedback) error {
	f.Message = s.Sanitizer.Sanitize(f.Message)
	f.Area = s.Sanitizer.Sanitize(f.Area)
	if err := s.Repo.Update(f); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrFeedbackNotFound
		}
		return err
	}
	_ = s.index(ctx, f)
	return nil
}

func (s *FeedbackService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrFeedbackNotFound
		}
		return err
	}
	return nil
}

// AddResponse stores the staff response and queues a notification email to
// the resident. Publishing failures are logged; the response itself is
// already persisted.
func (s *FeedbackService) AddResponse(ctx context.Context, id, response string) (*entity.Feedback, error) {
	response = s.Sanitizer.Sanitize(response)
	f, err := s.Repo.SetResponse(id, response)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	if s.Pub != nil && response != "" {
		job := mailer.FeedbackResponseJob(f.EmailAddress, f.Area, f.FeedbackType, response)
		if err := s.Pub.PublishJSON(ctx, job); err != nil {
			s.Logger.WithError(err).WithField("feedback_id", id).Warn("publish notification failed")
		}
	}
	return f, nil
}

func (s *FeedbackService) DeleteResponse(id string) (*entity.Feedback, error) {
	f, err := s.Repo.SetResponse(id, "")
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *FeedbackService) index(ctx context.Context, f *entity.Feedback) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":            f.ID,
		"user_id":       f.UserID,
		"email_address": f.EmailAddress,
		"area":          f.Area,
		"feedback_type": f.FeedbackType,
		"message":       f.Message,
		"date":          f.Date.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: f.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("feedback_id", f.ID).Warn("es index failed")
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("feedback_id", f.ID).Warn("es index response error")
	}
	return nil
}

// Search performs a multi_match query over the free-text fields.
func (s *FeedbackService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"message^2", "area", "feedback_type"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
