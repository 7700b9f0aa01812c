package auth

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo keeps users in memory with the same uniqueness rules the
// database enforces.
type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.Username] = &stored
	return nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func validInput() RegisterInput {
	return RegisterInput{
		Username:    "dana",
		FirstName:   "Dana",
		LastName:    "Levi",
		Email:       "dana@example.com",
		Password:    "s3cret-pass",
		DateOfBirth: time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo, "test-key", time.Hour, bcrypt.MinCost)

	user, err := service.Register(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo, "test-key", time.Hour, bcrypt.MinCost)
	ctx := context.Background()

	_, err := service.Register(ctx, validInput())
	require.NoError(t, err)

	dup := validInput()
	dup.Email = "other@example.com"
	_, err = service.Register(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	service := NewAuthService(newFakeUserRepo(), "test-key", time.Hour, bcrypt.MinCost)

	input := validInput()
	input.Email = ""
	_, err := service.Register(context.Background(), input)
	assert.Error(t, err)
}

func TestAuthService_Login_IssuesVerifiableToken(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo, "test-key", time.Hour, bcrypt.MinCost)
	ctx := context.Background()

	user, err := service.Register(ctx, validInput())
	require.NoError(t, err)

	token, err := service.Login(ctx, "dana", "s3cret-pass")
	require.NoError(t, err)

	userID, claims, err := ParseToken("test-key", token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "dana", claims.Username)
	assert.Equal(t, "Dana", claims.FirstName)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo, "test-key", time.Hour, bcrypt.MinCost)
	ctx := context.Background()

	_, err := service.Register(ctx, validInput())
	require.NoError(t, err)

	_, err = service.Login(ctx, "dana", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	service := NewAuthService(newFakeUserRepo(), "test-key", time.Hour, bcrypt.MinCost)

	_, err := service.Login(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestParseToken_RejectsWrongKey(t *testing.T) {
	user := &domain.User{ID: 42, Username: "dana"}
	token, err := NewToken("key-a", user, time.Hour)
	require.NoError(t, err)

	_, _, err = ParseToken("key-b", token)
	assert.Error(t, err)
}

func TestParseToken_RejectsExpired(t *testing.T) {
	user := &domain.User{ID: 42, Username: "dana"}
	token, err := NewToken("test-key", user, -time.Minute)
	require.NoError(t, err)

	_, _, err = ParseToken("test-key", token)
	assert.Error(t, err)
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	_, _, err := ParseToken("test-key", "not-a-token")
	assert.Error(t, err)
}
