package userControllers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mayanshop/mayan-api/models"
)

func strPtr(s string) *string { return &s }

func TestApplyProfileUpdatePartial(t *testing.T) {
	user := models.User{Name: "Dana", Phone: "123", Locale: "ar"}

	err := applyProfileUpdate(&user, updateProfileInput{
		Name: strPtr("Dana K"),
		City: strPtr("Baghdad"),
	})
	require.NoError(t, err)

	require.Equal(t, "Dana K", user.Name)
	require.Equal(t, "Baghdad", user.Address.City)
	// untouched fields stay as they were
	require.Equal(t, "123", user.Phone)
	require.Equal(t, "ar", user.Locale)
}

func TestApplyProfileUpdateLocale(t *testing.T) {
	user := models.User{Locale: "ar"}

	err := applyProfileUpdate(&user, updateProfileInput{Locale: strPtr("fr")})
	require.ErrorIs(t, err, errInvalidLocale)
	require.Equal(t, "ar", user.Locale)

	err = applyProfileUpdate(&user, updateProfileInput{Locale: strPtr("en")})
	require.NoError(t, err)
	require.Equal(t, "en", user.Locale)
}

func TestApplyProfileUpdatePassword(t *testing.T) {
	user := models.User{Password: "old-hash"}

	err := applyProfileUpdate(&user, updateProfileInput{Password: strPtr("123")})
	require.ErrorIs(t, err, errShortPassword)
	require.Equal(t, "old-hash", user.Password)

	err = applyProfileUpdate(&user, updateProfileInput{Password: strPtr("secret123")})
	require.NoError(t, err)
	require.NotEqual(t, "old-hash", user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}
