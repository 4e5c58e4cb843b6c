package auth

import (
	"context"
	"testing"
	"time"

	"solarcare/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestAuth(t *testing.T) (*Service, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := NewService(client, "test-secret", time.Hour, 5*time.Minute, true, nil)
	return svc, mr
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"9876543210":      "9876543210",
		"+91 98765 43210": "9876543210",
		"098765-43210":    "9876543210",
	}
	for in, want := range cases {
		got, err := NormalizePhone(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	for _, bad := range []string{"", "12345", "1234567890", "98765432101"} {
		_, err := NormalizePhone(bad)
		assert.ErrorIs(t, err, ErrInvalidPhone, bad)
	}
}

func TestRequestAndVerifyOTP(t *testing.T) {
	svc, mr := setupTestAuth(t)
	ctx := context.Background()

	ch, err := svc.RequestOTP(ctx, "+91 9876543210")
	require.NoError(t, err)
	require.Len(t, ch.DevOTP, 6)
	assert.True(t, mr.Exists(otpPrefix+ch.RequestID))

	res, err := svc.VerifyOTP(ctx, ch.RequestID, ch.DevOTP)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", res.User.Phone)
	assert.Equal(t, UserIDForPhone("9876543210"), res.User.ID)
	assert.False(t, mr.Exists(otpPrefix+ch.RequestID))

	userID, err := svc.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, userID)

	_, err = svc.VerifyOTP(ctx, ch.RequestID, ch.DevOTP)
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestRequestOTP_HidesCodeWhenNotExposed(t *testing.T) {
	svc, _ := setupTestAuth(t)
	svc.ExposeOTP = false

	ch, err := svc.RequestOTP(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.Empty(t, ch.DevOTP)
}

func TestVerifyOTP_Expired(t *testing.T) {
	svc, mr := setupTestAuth(t)
	ctx := context.Background()

	ch, err := svc.RequestOTP(ctx, "9876543210")
	require.NoError(t, err)
	mr.FastForward(6 * time.Minute)

	_, err = svc.VerifyOTP(ctx, ch.RequestID, ch.DevOTP)
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestVerifyOTP_MismatchThenLockout(t *testing.T) {
	svc, mr := setupTestAuth(t)
	ctx := context.Background()

	ch, err := svc.RequestOTP(ctx, "9876543210")
	require.NoError(t, err)

	for i := 1; i < maxAttempts; i++ {
		_, err = svc.VerifyOTP(ctx, ch.RequestID, "wrong!")
		assert.ErrorIs(t, err, ErrOTPMismatch)
	}
	_, err = svc.VerifyOTP(ctx, ch.RequestID, "wrong!")
	assert.ErrorIs(t, err, ErrTooManyAttempts)
	assert.False(t, mr.Exists(otpPrefix+ch.RequestID))

	_, err = svc.VerifyOTP(ctx, ch.RequestID, ch.DevOTP)
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestValidateToken_Rejects(t *testing.T) {
	svc, _ := setupTestAuth(t)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewService(nil, "other-secret", time.Hour, time.Minute, false, nil)
	tok, err := other.GenerateToken(models.User{ID: "u1"})
	require.NoError(t, err)
	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	svc.TokenTTL = -time.Minute
	expired, err := svc.GenerateToken(models.User{ID: "u1"})
	require.NoError(t, err)
	_, err = svc.ValidateToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUserIDForPhone_IsStable(t *testing.T) {
	assert.Equal(t, UserIDForPhone("9876543210"), UserIDForPhone("9876543210"))
	assert.NotEqual(t, UserIDForPhone("9876543210"), UserIDForPhone("9876543211"))
}
