package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/dicehall/accounts/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) newUser(username string) *model.User {
	return &model.User{
		Username:     username,
		PasswordHash: "$2a$10$fakehash",
		CreatedAt:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		GameData:     model.NewGameData(),
	}
}

func (s *StorageSuite) TestCreateAndGetUser() {
	err := s.storage.CreateUser(s.ctx, s.newUser("alice"))
	s.Require().NoError(err)

	user, err := s.storage.GetUser(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
	s.Equal("$2a$10$fakehash", user.PasswordHash)
	s.Equal([]string{}, user.GameData.Achievements)
}

func (s *StorageSuite) TestCreateUserFailsIfExists() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("alice")))

	err := s.storage.CreateUser(s.ctx, s.newUser("alice"))
	s.ErrorIs(err, model.ErrUsernameExists)
}

func (s *StorageSuite) TestCreateUserDoesNotOverwrite() {
	original := s.newUser("alice")
	original.ProfilePicture = "original.png"
	s.Require().NoError(s.storage.CreateUser(s.ctx, original))

	dup := s.newUser("alice")
	dup.ProfilePicture = "other.png"
	s.Require().ErrorIs(s.storage.CreateUser(s.ctx, dup), model.ErrUsernameExists)

	user, err := s.storage.GetUser(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("original.png", user.ProfilePicture)
}

func (s *StorageSuite) TestGetUserFailsIfAbsent() {
	_, err := s.storage.GetUser(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestUpdateUserAppliesMutation() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("alice")))

	err := s.storage.UpdateUser(s.ctx, "alice", func(u *model.User) error {
		u.ProfilePicture = "pic.png"
		u.GameData.Coins = 42
		return nil
	})
	s.Require().NoError(err)

	user, err := s.storage.GetUser(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("pic.png", user.ProfilePicture)
	s.Equal(42, user.GameData.Coins)
}

func (s *StorageSuite) TestUpdateUserFailsIfAbsent() {
	err := s.storage.UpdateUser(s.ctx, "nobody", func(u *model.User) error {
		return nil
	})
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestUpdateUserAbortsOnMutatorError() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("alice")))

	wantErr := context.DeadlineExceeded
	err := s.storage.UpdateUser(s.ctx, "alice", func(u *model.User) error {
		u.ProfilePicture = "pic.png"
		return wantErr
	})
	s.ErrorIs(err, wantErr)

	user, err := s.storage.GetUser(s.ctx, "alice")
	s.Require().NoError(err)
	s.Empty(user.ProfilePicture)
}

func (s *StorageSuite) TestDeleteUser() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("alice")))

	s.Require().NoError(s.storage.DeleteUser(s.ctx, "alice"))

	_, err := s.storage.GetUser(s.ctx, "alice")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestDeleteUserFailsIfAbsent() {
	err := s.storage.DeleteUser(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestPasswordHashSurvivesRoundTrip() {
	user := s.newUser("alice")
	user.PasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMye"
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))

	got, err := s.storage.GetUser(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user.PasswordHash, got.PasswordHash)
}
