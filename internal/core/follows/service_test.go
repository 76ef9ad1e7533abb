package follows

import (
	"context"
	"testing"

	"Lumen/internal/core/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock repositories for testing
type mockFollowRepository struct {
	mock.Mock
}

func (m *mockFollowRepository) Get(ctx context.Context, followerID, followingID string) (*Follow, error) {
	args := m.Called(ctx, followerID, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Follow), args.Error(1)
}

func (m *mockFollowRepository) Create(ctx context.Context, follow *Follow) (*Follow, error) {
	args := m.Called(ctx, follow)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Follow), args.Error(1)
}

func (m *mockFollowRepository) Delete(ctx context.Context, followerID, followingID string) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *mockFollowRepository) ListFollowing(ctx context.Context, followerID string) ([]users.Profile, error) {
	args := m.Called(ctx, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]users.Profile), args.Error(1)
}

func (m *mockFollowRepository) ListFollowers(ctx context.Context, followingID string) ([]users.Profile, error) {
	args := m.Called(ctx, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]users.Profile), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *mockUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) Upsert(ctx context.Context, user *users.User) (*users.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

const (
	alice = "7b9f6a0e-3f65-4cbb-9c2e-5b2d2f8a1c01"
	bob   = "9d2c4e8a-1b3d-4f5a-8e6c-7a9b0c1d2e03"
)

func TestToggleFollow_CreatesEdgeWhenAbsent(t *testing.T) {
	repo := new(mockFollowRepository)
	userRepo := new(mockUserRepository)
	service := NewFollowService(repo, userRepo)

	repo.On("Get", mock.Anything, alice, bob).Return(nil, ErrEdgeNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(f *Follow) bool {
		return f.FollowerID == alice && f.FollowingID == bob
	})).Return(&Follow{FollowerID: alice, FollowingID: bob}, nil)

	result, err := service.ToggleFollow(context.Background(), alice, bob)
	require.NoError(t, err)
	assert.True(t, result.Followed)
	repo.AssertExpectations(t)
}

func TestToggleFollow_RemovesEdgeWhenPresent(t *testing.T) {
	repo := new(mockFollowRepository)
	userRepo := new(mockUserRepository)
	service := NewFollowService(repo, userRepo)

	repo.On("Get", mock.Anything, alice, bob).Return(&Follow{FollowerID: alice, FollowingID: bob}, nil)
	repo.On("Delete", mock.Anything, alice, bob).Return(nil)

	result, err := service.ToggleFollow(context.Background(), alice, bob)
	require.NoError(t, err)
	assert.False(t, result.Followed)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// A pair of toggles must return the edge to its original state.
func TestToggleFollow_DoubleToggleRoundTrips(t *testing.T) {
	repo := new(mockFollowRepository)
	userRepo := new(mockUserRepository)
	service := NewFollowService(repo, userRepo)

	// First toggle: absent -> created
	repo.On("Get", mock.Anything, alice, bob).Return(nil, ErrEdgeNotFound).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(&Follow{FollowerID: alice, FollowingID: bob}, nil).Once()

	first, err := service.ToggleFollow(context.Background(), alice, bob)
	require.NoError(t, err)
	require.True(t, first.Followed)

	// Second toggle: present -> deleted
	repo.On("Get", mock.Anything, alice, bob).Return(&Follow{FollowerID: alice, FollowingID: bob}, nil).Once()
	repo.On("Delete", mock.Anything, alice, bob).Return(nil).Once()

	second, err := service.ToggleFollow(context.Background(), alice, bob)
	require.NoError(t, err)
	assert.False(t, second.Followed)
	repo.AssertExpectations(t)
}

// Losing an insert race to a concurrent toggle must resolve to an unfollow,
// not an error: the composite key reports the edge as existing.
func TestToggleFollow_LostInsertRaceResolvesToUnfollow(t *testing.T) {
	repo := new(mockFollowRepository)
	userRepo := new(mockUserRepository)
	service := NewFollowService(repo, userRepo)

	repo.On("Get", mock.Anything, alice, bob).Return(nil, ErrEdgeNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, ErrEdgeExists)
	repo.On("Delete", mock.Anything, alice, bob).Return(nil)

	result, err := service.ToggleFollow(context.Background(), alice, bob)
	require.NoError(t, err)
	assert.False(t, result.Followed)
}

func TestToggleFollow_RejectsSelfFollow(t *testing.T) {
	repo := new(mockFollowRepository)
	userRepo := new(mockUserRepository)
	service := NewFollowService(repo, userRepo)

	_, err := service.ToggleFollow(context.Background(), alice, alice)
	assert.ErrorIs(t, err, ErrSelfFollow)
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleFollow_RejectsMalformedIDs(t *testing.T) {
	repo := new(mockFollowRepository)
	userRepo := new(mockUserRepository)
	service := NewFollowService(repo, userRepo)

	_, err := service.ToggleFollow(context.Background(), alice, "not-a-uuid")
	assert.True(t, IsValidationError(err))

	_, err = service.ToggleFollow(context.Background(), "", bob)
	assert.True(t, IsValidationError(err))
}

func TestListFollowing_ReturnsEmptySliceNotNil(t *testing.T) {
	repo := new(mockFollowRepository)
	userRepo := new(mockUserRepository)
	service := NewFollowService(repo, userRepo)

	repo.On("ListFollowing", mock.Anything, alice).Return(nil, nil)

	profiles, err := service.ListFollowing(context.Background(), alice)
	require.NoError(t, err)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}

func TestListFollowers_RequiresKnownCaller(t *testing.T) {
	repo := new(mockFollowRepository)
	userRepo := new(mockUserRepository)
	service := NewFollowService(repo, userRepo)

	userRepo.On("Exists", mock.Anything, alice).Return(false, nil)

	_, err := service.ListFollowers(context.Background(), bob, alice)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
	repo.AssertNotCalled(t, "ListFollowers", mock.Anything, mock.Anything)
}

func TestListFollowers_ReturnsProfiles(t *testing.T) {
	repo := new(mockFollowRepository)
	userRepo := new(mockUserRepository)
	service := NewFollowService(repo, userRepo)

	expected := []users.Profile{
		{ID: alice, FullName: "Alice", Username: "alice", AvatarURL: "https://cdn.test/a.jpg"},
	}
	userRepo.On("Exists", mock.Anything, alice).Return(true, nil)
	repo.On("ListFollowers", mock.Anything, bob).Return(expected, nil)

	profiles, err := service.ListFollowers(context.Background(), bob, alice)
	require.NoError(t, err)
	assert.Equal(t, expected, profiles)
}
