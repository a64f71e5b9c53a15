package auth

import (
	"testing"
	"time"

	"brasserie/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: "user-1", Role: string(models.RoleCashier)}

	token, err := IssueToken("secret", user, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, string(models.RoleCashier), claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: "user-1", Role: string(models.RoleAdmin)}

	token, err := IssueToken("secret", user, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	user := &models.User{ID: "user-1", Role: string(models.RoleCustomer)}

	token, err := IssueToken("secret", user, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("password123")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hashed, "password123"))
	assert.False(t, CheckPassword(hashed, "wrong"))
}
