package helper_test

import (
	"sync/atomic"
	"testing"
	"time"

	"oneclickticket/constants"
	"oneclickticket/database"
	"oneclickticket/helper"
	"oneclickticket/model"
	"oneclickticket/testutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := helper.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, helper.CheckPasswordHash("secret123", hash))
	assert.False(t, helper.CheckPasswordHash("secret124", hash))
}

func TestAccessTokenFollowsClock(t *testing.T) {
	clock := testutil.Setup(t)
	t.Setenv("JWT_TTL", "30m")

	data, err := helper.GenerateAccessToken(model.TokenClaim{AccountId: 7, Username: "alice", Role: constants.ROLE_ADMIN})
	require.NoError(t, err)
	assert.Equal(t, testutil.Now.Add(30*time.Minute).Unix(), data.ExpiresAt)

	token, err := helper.ParseToken(data.AccessToken)
	require.NoError(t, err)
	claim, ok := helper.ClaimFromToken(token)
	require.True(t, ok)
	assert.Equal(t, model.TokenClaim{AccountId: 7, Username: "alice", Role: constants.ROLE_ADMIN}, claim)

	clock.Advance(31 * time.Minute)
	_, err = helper.ParseToken(data.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseTokenRejectsOtherSecret(t *testing.T) {
	testutil.Setup(t)
	data, err := helper.GenerateAccessToken(model.TokenClaim{AccountId: 1, Username: "alice", Role: constants.ROLE_STAFF})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = helper.ParseToken(data.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestGetUserByUsername(t *testing.T) {
	testutil.Setup(t)
	require.NoError(t, database.DB.Create(&model.Account{Username: "alice", Password: "x", Role: constants.ROLE_STAFF}).Error)

	account, err := helper.GetUserByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, constants.ROLE_STAFF, account.Role)

	account, err = helper.GetUserByUsername("bob")
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestGenreOptions(t *testing.T) {
	comedy := model.Comedy

	options := helper.GenreOptions(&comedy)
	require.Len(t, options, len(model.Genres()))
	assert.Equal(t, "Action", options[0].Label)
	for _, o := range options {
		assert.Equal(t, o.Value == "Comedy", o.Selected, o.Value)
	}

	for _, o := range helper.GenreOptions(nil) {
		assert.False(t, o.Selected)
	}
}

func TestOptionsWithoutCache(t *testing.T) {
	testutil.Setup(t)
	grand := testutil.SeedCinema(t, "Grand", "Main St", 5)
	testutil.SeedCinema(t, "Riverside", "River Rd", 3)
	movie := testutil.SeedMovie(t, "Laugh Track", model.Comedy, 95, "J. Okafor", "2024-03-01")

	cinemas, err := helper.CinemaOptions(t.Context(), grand.ID)
	require.NoError(t, err)
	require.Len(t, cinemas, 2)
	assert.Equal(t, model.SelectOption{Value: "1", Label: "Main St", Selected: true}, cinemas[0])
	assert.Equal(t, model.SelectOption{Value: "2", Label: "River Rd"}, cinemas[1])

	movies, err := helper.MovieOptions(t.Context(), 0)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "J. Okafor", movies[0].Label)
	assert.False(t, movies[0].Selected)
	assert.NotZero(t, movie.ID)

	helper.InvalidateOptions(t.Context(), helper.CinemaOptionsKey)
	require.NoError(t, helper.WarmOptionCache(t.Context()))
}

func TestOptionsNeedSets(t *testing.T) {
	testutil.Setup(t)
	database.Ctx.Cinema = nil

	_, err := helper.CinemaOptions(t.Context(), 0)
	assert.ErrorIs(t, err, database.ErrSetMissing)
}

func TestIntervalSchedulerRunsImmediately(t *testing.T) {
	clock := testutil.Setup(t)
	var runs atomic.Int32

	s, err := helper.NewIntervalScheduler(clock, time.Minute, func() { runs.Add(1) })
	require.NoError(t, err)
	s.Start()
	t.Cleanup(func() { _ = s.Shutdown() })

	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestOptionSchedulerSkippedWithoutRedis(t *testing.T) {
	testutil.Setup(t)

	helper.StartOptionCacheScheduler()
	helper.StopOptionCacheScheduler()
}
