package services_test

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/webcodur/feelandnote-services-recommend/internal/models/po"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

var stdLogger = log.NewStdLogger(io.Discard)

// seqUUID returns a fixed, ordered UUID for deterministic assertions.
func seqUUID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

type stubInteractionStore struct {
	mu            sync.Mutex
	contentIDs    map[uuid.UUID][]uuid.UUID
	consumers     map[uuid.UUID][]uuid.UUID
	counts        map[uuid.UUID]int
	recent        []*po.RecentInteraction
	contentErr    error
	consumersErr  error
	countsErr     error
	recentErr     error
	consumerCalls int
	recentCalls   int
}

func (s *stubInteractionStore) GetContentIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if s.contentErr != nil {
		return nil, s.contentErr
	}
	return s.contentIDs[userID], nil
}

func (s *stubInteractionStore) GetConsumers(ctx context.Context, contentID uuid.UUID) ([]uuid.UUID, error) {
	s.mu.Lock()
	s.consumerCalls++
	s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.consumersErr != nil {
		return nil, s.consumersErr
	}
	return s.consumers[contentID], nil
}

func (s *stubInteractionStore) CountByUsers(_ context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if s.countsErr != nil {
		return nil, s.countsErr
	}
	counts := make(map[uuid.UUID]int, len(userIDs))
	for _, id := range userIDs {
		counts[id] = s.counts[id]
	}
	return counts, nil
}

func (s *stubInteractionStore) ListRecent(_ context.Context, _ int) ([]*po.RecentInteraction, error) {
	s.mu.Lock()
	s.recentCalls++
	s.mu.Unlock()
	if s.recentErr != nil {
		return nil, s.recentErr
	}
	return s.recent, nil
}

func (s *stubInteractionStore) consumerCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consumerCalls
}

type stubExclusionStore struct {
	blocked     []uuid.UUID
	followed    []uuid.UUID
	blockedErr  error
	followedErr error
}

func (s *stubExclusionStore) ListBlockedIDs(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	if s.blockedErr != nil {
		return nil, s.blockedErr
	}
	return s.blocked, nil
}

func (s *stubExclusionStore) ListFollowedIDs(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	if s.followedErr != nil {
		return nil, s.followedErr
	}
	return s.followed, nil
}

type stubProfileStore struct {
	exists bool
	err    error
	calls  int
}

func (s *stubProfileStore) Exists(_ context.Context, _ uuid.UUID) (bool, error) {
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	return s.exists, nil
}

type stubLogStore struct {
	mu      sync.Mutex
	entries []po.RecommendationLog
	err     error
}

func (s *stubLogStore) Insert(_ context.Context, entry po.RecommendationLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubLogStore) inserted() []po.RecommendationLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]po.RecommendationLog(nil), s.entries...)
}
