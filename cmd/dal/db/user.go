package db

import (
	"context"

	"vidtube.com/cmd/model"
)

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	return wrap(s.db.WithContext(ctx).Create(user).Error, "CreateUser failed")
}

func (s *Store) FindUserByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	res := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&user)
	if res.Error != nil {
		return nil, wrap(res.Error, "FindUserByID failed")
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	res := s.db.WithContext(ctx).Where("username = ?", username).Limit(1).Find(&user)
	if res.Error != nil {
		return nil, wrap(res.Error, "FindUserByUsername failed")
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

func (s *Store) FindUsersByIDs(ctx context.Context, ids []int64) (map[int64]*model.User, error) {
	out := make(map[int64]*model.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []*model.User
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, wrap(err, "FindUsersByIDs failed")
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}
