package service

import (
	"context"
	"strings"
	"time"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/compose"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

const minPasswordLength = 8

type UserService struct {
	ctx      context.Context
	store    dal.Store
	composer *compose.Composer
	blobs    oss.BlobStore
}

func NewUserService(ctx context.Context, store dal.Store, composer *compose.Composer, blobs oss.BlobStore) *UserService {
	return &UserService{ctx: ctx, store: store, composer: composer, blobs: blobs}
}

// RegisterInput carries local paths for Avatar and the optional CoverImage.
type RegisterInput struct {
	Username   string
	FullName   string
	Email      string
	Password   string
	Avatar     string
	CoverImage string
}

func (in *RegisterInput) normalize() error {
	in.Username = strings.ToLower(strings.TrimSpace(in.Username))
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case in.FullName == "":
		return errno.ParamErr.WithMessage("full name is required")
	case !utils.IsValidUsername(in.Username):
		return errno.ParamErr.WithMessage("username must be 3-32 characters of a-z, 0-9, '_' or '.'")
	case !utils.IsValidEmail(in.Email):
		return errno.ParamErr.WithMessage("email is invalid")
	case len(in.Password) < minPasswordLength:
		return errno.ParamErr.WithMessage("password is too short")
	case in.Avatar == "":
		return errno.ParamErr.WithMessage("avatar file is required")
	}
	return nil
}

func (s *UserService) Register(in RegisterInput) (*model.User, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	existing, err := s.store.FindUserByUsername(s.ctx, in.Username)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.FindUserByUsername failed")
	}
	if existing != nil {
		return nil, errno.ParamErr.WithMessage("username is already taken")
	}
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "Password fail to crypt")
	}

	avatar, err := s.blobs.Upload(s.ctx, in.Avatar)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "upload avatar failed: %v", err)
		return nil, errno.OssErr.WithMessage("failed to upload avatar")
	}
	cover := ""
	if in.CoverImage != "" {
		if cover, err = s.blobs.Upload(s.ctx, in.CoverImage); err != nil {
			// a missing cover image does not block registration
			hlog.CtxWarnf(s.ctx, "upload cover image failed: %v", err)
			cover = ""
		}
	}

	user := &model.User{
		ID:           utils.GenerateID(),
		Username:     in.Username,
		FullName:     in.FullName,
		Email:        in.Email,
		Avatar:       avatar,
		CoverImage:   cover,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err = s.store.CreateUser(s.ctx, user); err != nil {
		s.blobs.Delete(s.ctx, avatar)
		if cover != "" {
			s.blobs.Delete(s.ctx, cover)
		}
		if errors.Is(err, dal.ErrDuplicate) {
			return nil, errno.ParamErr.WithMessage("username or email is already registered")
		}
		return nil, errors.WithMessage(err, "dal.CreateUser failed")
	}
	hlog.CtxInfof(s.ctx, "registered user %d (%s)", user.ID, user.Username)
	return user, nil
}

// ChannelProfile looks a channel up by its handle.
func (s *UserService) ChannelProfile(actor int64, username string) (*model.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, errno.ParamErr.WithMessage("username is required")
	}
	return s.composer.ChannelProfile(s.ctx, actor, username)
}
