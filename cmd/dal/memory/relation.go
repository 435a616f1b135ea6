package memory

import (
	"context"
	"time"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
)

func (s *Store) FindSubscription(ctx context.Context, subscriber, channel int64) (*model.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subscriptions[subKey{subscriber, channel}]
	if !ok {
		return nil, nil
	}
	cp := *sub
	return &cp, nil
}

func (s *Store) CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := subKey{sub.SubscriberId, sub.ChannelId}
	if _, ok := s.subscriptions[key]; ok {
		return dal.ErrDuplicate
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	cp := *sub
	s.subscriptions[key] = &cp
	return nil
}

func (s *Store) DeleteSubscription(ctx context.Context, subscriber, channel int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := subKey{subscriber, channel}
	if _, ok := s.subscriptions[key]; !ok {
		return 0, nil
	}
	delete(s.subscriptions, key)
	return 1, nil
}

func (s *Store) CountSubscribers(ctx context.Context, channel int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for k := range s.subscriptions {
		if k.channel == channel {
			n++
		}
	}
	return n, nil
}

func (s *Store) CountSubscribedTo(ctx context.Context, subscriber int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for k := range s.subscriptions {
		if k.subscriber == subscriber {
			n++
		}
	}
	return n, nil
}

func (s *Store) listSubscriptions(match func(subKey) bool, offset, limit int) []*model.Subscription {
	out := make([]*model.Subscription, 0)
	for k, sub := range s.subscriptions {
		if match(k) {
			cp := *sub
			out = append(out, &cp)
		}
	}
	newestFirst(out, func(s *model.Subscription) (int64, int64) { return s.CreatedAt.UnixNano(), s.ID })
	return window(out, offset, limit)
}

func (s *Store) ListSubscribers(ctx context.Context, channel int64, offset, limit int) ([]*model.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listSubscriptions(func(k subKey) bool { return k.channel == channel }, offset, limit), nil
}

func (s *Store) ListSubscribed(ctx context.Context, subscriber int64, offset, limit int) ([]*model.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listSubscriptions(func(k subKey) bool { return k.subscriber == subscriber }, offset, limit), nil
}
