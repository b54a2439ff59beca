package application

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastewise/wastewise-api/internal/domain/entity"
	repo "github.com/wastewise/wastewise-api/internal/domain/repository"
)

type fakeFeedbackRepo struct {
	byID map[string]*entity.Feedback
	seq  int
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{byID: map[string]*entity.Feedback{}}
}

func (f *fakeFeedbackRepo) Create(fb *entity.Feedback) error {
	f.seq++
	fb.ID = "fb-" + strconv.Itoa(f.seq)
	cp := *fb
	f.byID[fb.ID] = &cp
	return nil
}

func (f *fakeFeedbackRepo) GetByID(id string) (*entity.Feedback, error) {
	fb, ok := f.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *fb
	return &cp, nil
}

func (f *fakeFeedbackRepo) GetByEmail(email string) ([]*entity.Feedback, error) {
	var out []*entity.Feedback
	for _, fb := range f.byID {
		if fb.EmailAddress == email {
			cp := *fb
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeFeedbackRepo) GetByUserID(userID string) ([]*entity.Feedback, error) {
	var out []*entity.Feedback
	for _, fb := range f.byID {
		if fb.UserID == userID {
			cp := *fb
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeFeedbackRepo) GetAll() ([]*entity.Feedback, error) {
	out := make([]*entity.Feedback, 0, len(f.byID))
	for _, fb := range f.byID {
		cp := *fb
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeFeedbackRepo) Update(fb *entity.Feedback) error {
	cur, ok := f.byID[fb.ID]
	if !ok {
		return repo.ErrNotFound
	}
	// Columns the update statement does not touch are read back.
	fb.Response = cur.Response
	fb.Date = cur.Date
	cp := *fb
	f.byID[fb.ID] = &cp
	return nil
}

func (f *fakeFeedbackRepo) SetResponse(id, response string) (*entity.Feedback, error) {
	fb, ok := f.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	fb.Response = response
	cp := *fb
	return &cp, nil
}

func (f *fakeFeedbackRepo) Delete(id string) error {
	if _, ok := f.byID[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func newFeedbackService(r repo.FeedbackRepository) *FeedbackService {
	// No search cluster and no broker in unit tests; both are optional.
	return NewFeedbackService(r, nil, "", nil, quietLogger())
}

func TestFeedbackCreateStripsMarkup(t *testing.T) {
	svc := newFeedbackService(newFakeFeedbackRepo())

	fb := &entity.Feedback{
		UserID:        "acc-1",
		EmailAddress:  "amara@example.com",
		ContactNumber: "0771234567",
		Area:          `Kandy <img src=x onerror=alert(1)>`,
		FeedbackType:  "complaint",
		Message:       `<script>alert("xss")</script>Bins overflowing on Main St`,
	}
	require.NoError(t, svc.Create(context.Background(), fb))

	assert.Equal(t, "Bins overflowing on Main St", fb.Message)
	assert.Equal(t, "Kandy ", fb.Area)
	assert.NotEmpty(t, fb.ID)
}

func TestFeedbackAddResponseSanitizesAndStores(t *testing.T) {
	r := newFakeFeedbackRepo()
	svc := newFeedbackService(r)

	fb := &entity.Feedback{EmailAddress: "amara@example.com", Message: "collection was missed"}
	require.NoError(t, svc.Create(context.Background(), fb))

	updated, err := svc.AddResponse(context.Background(), fb.ID, "<b>We</b> will re-route the truck")
	require.NoError(t, err)
	assert.Equal(t, "We will re-route the truck", updated.Response)
}

func TestFeedbackUpdateKeepsStoredDateAndResponse(t *testing.T) {
	r := newFakeFeedbackRepo()
	svc := newFeedbackService(r)

	fb := &entity.Feedback{EmailAddress: "amara@example.com", Message: "collection was missed"}
	require.NoError(t, svc.Create(context.Background(), fb))

	submitted := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	r.byID[fb.ID].Date = submitted
	r.byID[fb.ID].Response = "truck re-routed"

	edit := &entity.Feedback{
		ID:           fb.ID,
		EmailAddress: "amara@example.com",
		Message:      "collection was missed twice",
	}
	require.NoError(t, svc.Update(context.Background(), edit))

	assert.Equal(t, submitted, edit.Date, "submission date must not change on edit")
	assert.Equal(t, "truck re-routed", edit.Response)
	assert.Equal(t, "collection was missed twice", r.byID[fb.ID].Message)
}

func TestFeedbackDeleteResponseClears(t *testing.T) {
	r := newFakeFeedbackRepo()
	svc := newFeedbackService(r)

	fb := &entity.Feedback{EmailAddress: "amara@example.com", Message: "collection was missed"}
	require.NoError(t, svc.Create(context.Background(), fb))
	_, err := svc.AddResponse(context.Background(), fb.ID, "on it")
	require.NoError(t, err)

	cleared, err := svc.DeleteResponse(fb.ID)
	require.NoError(t, err)
	assert.Empty(t, cleared.Response)
}

func TestFeedbackNotFoundMapping(t *testing.T) {
	svc := newFeedbackService(newFakeFeedbackRepo())

	_, err := svc.GetByID("fb-missing")
	assert.ErrorIs(t, err, ErrFeedbackNotFound)

	_, err = svc.AddResponse(context.Background(), "fb-missing", "hello")
	assert.ErrorIs(t, err, ErrFeedbackNotFound)

	err = svc.Delete("fb-missing")
	assert.ErrorIs(t, err, ErrFeedbackNotFound)
}

func TestFeedbackSearchWithoutCluster(t *testing.T) {
	svc := newFeedbackService(newFakeFeedbackRepo())

	hits, err := svc.Search(context.Background(), "overflowing", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
