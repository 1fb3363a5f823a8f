package jobs

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"soko.backend/internal/domain/entities"
	"soko.backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("development")
	os.Exit(m.Run())
}

// stubAdRepo serves batches of expiry counts to the sweep loop
type stubAdRepo struct {
	mu      sync.Mutex
	batches []int64
	calls   int
}

func (s *stubAdRepo) ExpireDue(ctx context.Context, now time.Time, limit int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if len(s.batches) == 0 {
		return 0, nil
	}
	n := s.batches[0]
	s.batches = s.batches[1:]
	return n, nil
}

func (s *stubAdRepo) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *stubAdRepo) Create(context.Context, *entities.Ad) error { return nil }
func (s *stubAdRepo) GetByID(context.Context, uuid.UUID) (*entities.Ad, error) {
	return nil, nil
}
func (s *stubAdRepo) GetLiveByProduct(context.Context, uuid.UUID, time.Time) (*entities.Ad, error) {
	return nil, nil
}
func (s *stubAdRepo) Update(context.Context, *entities.Ad) error          { return nil }
func (s *stubAdRepo) IncrementViews(context.Context, uuid.UUID) error     { return nil }
func (s *stubAdRepo) IncrementClicks(context.Context, uuid.UUID) error    { return nil }
func (s *stubAdRepo) CountActive(context.Context, time.Time) (int64, error) { return 0, nil }
func (s *stubAdRepo) List(context.Context, entities.AdFilter, time.Time, int, int) ([]*entities.Ad, int64, error) {
	return nil, 0, nil
}

func TestAdExpiryJob_SweepDrainsBatches(t *testing.T) {
	// A full batch means more rows may be waiting; the sweep loops until
	// a short batch comes back.
	repo := &stubAdRepo{batches: []int64{500, 500, 120}}
	job := NewAdExpiryJob(repo, time.Hour)

	job.sweep()
	require.Equal(t, 3, repo.callCount())
}

func TestAdExpiryJob_StartStop(t *testing.T) {
	repo := &stubAdRepo{}
	job := NewAdExpiryJob(repo, 10*time.Millisecond)

	job.Start()
	time.Sleep(50 * time.Millisecond)
	job.Stop()

	require.Greater(t, repo.callCount(), 0)
}
