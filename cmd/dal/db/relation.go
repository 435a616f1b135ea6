package db

import (
	"context"

	"vidtube.com/cmd/model"
)

func (s *Store) FindSubscription(ctx context.Context, subscriber, channel int64) (*model.Subscription, error) {
	var sub model.Subscription
	res := s.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriber, channel).
		Limit(1).Find(&sub)
	if res.Error != nil {
		return nil, wrap(res.Error, "FindSubscription failed")
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &sub, nil
}

func (s *Store) CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	return wrap(s.db.WithContext(ctx).Create(sub).Error, "CreateSubscription failed")
}

func (s *Store) DeleteSubscription(ctx context.Context, subscriber, channel int64) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriber, channel).
		Delete(&model.Subscription{})
	return res.RowsAffected, wrap(res.Error, "DeleteSubscription failed")
}

func (s *Store) CountSubscribers(ctx context.Context, channel int64) (count int64, err error) {
	if err = s.db.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channel).Count(&count).Error; err != nil {
		return 0, wrap(err, "CountSubscribers failed")
	}
	return count, nil
}

func (s *Store) CountSubscribedTo(ctx context.Context, subscriber int64) (count int64, err error) {
	if err = s.db.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriber).Count(&count).Error; err != nil {
		return 0, wrap(err, "CountSubscribedTo failed")
	}
	return count, nil
}

func (s *Store) ListSubscribers(ctx context.Context, channel int64, offset, limit int) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	err := s.db.WithContext(ctx).Where("channel_id = ?", channel).
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&subs).Error
	if err != nil {
		return nil, wrap(err, "ListSubscribers failed")
	}
	return subs, nil
}

func (s *Store) ListSubscribed(ctx context.Context, subscriber int64, offset, limit int) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	err := s.db.WithContext(ctx).Where("subscriber_id = ?", subscriber).
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&subs).Error
	if err != nil {
		return nil, wrap(err, "ListSubscribed failed")
	}
	return subs, nil
}
