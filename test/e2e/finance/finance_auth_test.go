package finance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spendlyhq/spendly/pkg/spendlysdk"
)

// TestRegisterAndLogin tests the complete signup and login flow.
func TestRegisterAndLogin(t *testing.T) {
	baseURL, cleanup := setupFinanceContainer(t)
	defer cleanup()

	client := spendlysdk.New(baseURL)

	user, err := client.Register(t.Context(), spendlysdk.RegisterRequest{
		Username: "alice",
		Password: testPassword,
	})

	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "standard", user.Role, "role should default to standard")
	require.False(t, user.MFAEnabled)

	t.Logf("Registered user %s", user.ID)

	loginResp, err := client.Login(t.Context(), spendlysdk.LoginRequest{
		Username: "alice",
		Password: testPassword,
	})

	require.NoError(t, err)
	require.NotEmpty(t, loginResp.AccessToken)
	require.Equal(t, "Bearer", loginResp.TokenType)
	require.Equal(t, int64(3600), loginResp.ExpiresIn, "sessions should last one hour")
	require.Equal(t, user.ID, loginResp.User.ID)

	me, err := client.Me(t.Context())

	require.NoError(t, err)
	require.Equal(t, user.ID, me.ID)
	require.Equal(t, "alice", me.Username)

	t.Logf("Login and profile fetch succeeded")
}

// TestRegisterLegacyRoleValues verifies the numeric role values accepted for
// backwards compatibility map onto the named roles.
func TestRegisterLegacyRoleValues(t *testing.T) {
	baseURL, cleanup := setupFinanceContainer(t)
	defer cleanup()

	client := spendlysdk.New(baseURL)

	privileged, err := client.Register(t.Context(), spendlysdk.RegisterRequest{
		Username: "legacy1",
		Password: testPassword,
		Role:     "1",
	})
	require.NoError(t, err)
	require.Equal(t, "privileged", privileged.Role)

	standard, err := client.Register(t.Context(), spendlysdk.RegisterRequest{
		Username: "legacy2",
		Password: testPassword,
		Role:     "2",
	})
	require.NoError(t, err)
	require.Equal(t, "standard", standard.Role)
}

// TestDuplicateUsernameRejected verifies registration enforces unique
// usernames.
func TestDuplicateUsernameRejected(t *testing.T) {
	baseURL, cleanup := setupFinanceContainer(t)
	defer cleanup()

	client := spendlysdk.New(baseURL)

	_, err := client.Register(t.Context(), spendlysdk.RegisterRequest{
		Username: "bob",
		Password: testPassword,
	})
	require.NoError(t, err)

	_, err = client.Register(t.Context(), spendlysdk.RegisterRequest{
		Username: "bob",
		Password: testPassword,
	})
	assertAPIError(t, err, spendlysdk.ErrCodeDuplicateUsername)

	t.Logf("Duplicate username correctly rejected")
}

// TestLoginWrongPassword verifies wrong passwords and unknown usernames
// each map to their own error.
func TestLoginWrongPassword(t *testing.T) {
	baseURL, cleanup := setupFinanceContainer(t)
	defer cleanup()

	client := spendlysdk.New(baseURL)

	_, err := client.Register(t.Context(), spendlysdk.RegisterRequest{
		Username: "carol",
		Password: testPassword,
	})
	require.NoError(t, err)

	_, err = client.Login(t.Context(), spendlysdk.LoginRequest{
		Username: "carol",
		Password: "wrong-password",
	})
	assertAPIError(t, err, spendlysdk.ErrCodeInvalidCredentials)

	// Unknown usernames surface as not found.
	_, err = client.Login(t.Context(), spendlysdk.LoginRequest{
		Username: "nobody",
		Password: testPassword,
	})
	assertAPIError(t, err, spendlysdk.ErrCodeNotFound)
}

// TestProtectedEndpointsRequireToken verifies requests without a bearer
// token are rejected.
func TestProtectedEndpointsRequireToken(t *testing.T) {
	baseURL, cleanup := setupFinanceContainer(t)
	defer cleanup()

	client := spendlysdk.New(baseURL)

	_, err := client.Me(t.Context())
	require.Error(t, err)

	var apiErr *spendlysdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.Status)
}

// TestUserListRequiresPrivilegedRole verifies standard users cannot list
// everyone while privileged users can.
func TestUserListRequiresPrivilegedRole(t *testing.T) {
	baseURL, cleanup := setupFinanceContainer(t)
	defer cleanup()

	standard := registerAndLogin(t, baseURL, "stduser", "standard")
	privileged := registerAndLogin(t, baseURL, "adminuser", "privileged")

	_, err := standard.ListUsers(t.Context())
	require.Error(t, err)

	var apiErr *spendlysdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.Status)

	users, err := privileged.ListUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, users, 2)

	t.Logf("Role gating on user listing works")
}

// TestUserUpdateAndDelete covers self-service profile edits and account
// removal.
func TestUserUpdateAndDelete(t *testing.T) {
	baseURL, cleanup := setupFinanceContainer(t)
	defer cleanup()

	client := registerAndLogin(t, baseURL, "dave", "standard")

	me, err := client.Me(t.Context())
	require.NoError(t, err)

	newName := "dave2"
	updated, err := client.UpdateUser(t.Context(), me.ID, spendlysdk.UpdateUserRequest{
		Username: &newName,
	})
	require.NoError(t, err)
	require.Equal(t, "dave2", updated.Username)

	// Another standard user cannot edit dave's account.
	other := registerAndLogin(t, baseURL, "eve", "standard")
	badName := "hacked"
	_, err = other.UpdateUser(t.Context(), me.ID, spendlysdk.UpdateUserRequest{
		Username: &badName,
	})
	assertAPIError(t, err, spendlysdk.ErrCodeForbidden)

	err = client.DeleteUser(t.Context(), me.ID)
	require.NoError(t, err)

	// Session subject no longer exists.
	_, err = client.Me(t.Context())
	require.Error(t, err)

	t.Logf("Update, cross-user rejection and delete all behaved")
}
