package cmd

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/moneypath/internal/auth"
	"github.com/abhisek/moneypath/internal/config"
)

func newFlagCmd(t *testing.T, user string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{}
	c.Flags().String("user", "", "")
	if user != "" {
		require.NoError(t, c.Flags().Set("user", user))
	}
	return c
}

func TestResolveIdentityFallbacks(t *testing.T) {
	id, err := resolveIdentity(newFlagCmd(t, ""), config.AuthConfig{})
	require.NoError(t, err)
	assert.Equal(t, localUser, id.UserID)

	id, err = resolveIdentity(newFlagCmd(t, ""), config.AuthConfig{UserID: "from-env"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", id.UserID)

	id, err = resolveIdentity(newFlagCmd(t, "from-flag"), config.AuthConfig{UserID: "from-env"})
	require.NoError(t, err)
	assert.Equal(t, "from-flag", id.UserID)
}

func TestResolveIdentityFromToken(t *testing.T) {
	const secret = "test-secret"
	token, err := auth.NewVerifier(secret).Sign(auth.Identity{UserID: "u-42", Role: auth.RoleStaff}, time.Hour)
	require.NoError(t, err)

	id, err := resolveIdentity(newFlagCmd(t, "ignored"), config.AuthConfig{JWTSecret: secret, AccessToken: token})
	require.NoError(t, err)
	assert.Equal(t, "u-42", id.UserID)
	assert.Equal(t, auth.RoleStaff, id.Role)

	_, err = resolveIdentity(newFlagCmd(t, ""), config.AuthConfig{AccessToken: token})
	assert.Error(t, err, "token without a secret")

	_, err = resolveIdentity(newFlagCmd(t, ""), config.AuthConfig{JWTSecret: "other", AccessToken: token})
	assert.Error(t, err)
}
