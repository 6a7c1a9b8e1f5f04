package validation

import (
	"net/http"
	"testing"

	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/apierr"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newValidator() *Validator {
	return New(MinLengthPolicy(8))
}

func TestEmail(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name    string
		input   *string
		want    string
		wantErr *apierr.Error
	}{
		{name: "missing", input: nil, wantErr: apierr.ErrRequiredEmail},
		{name: "empty", input: ptr(""), wantErr: apierr.ErrInvalidEmailAddress},
		{name: "no at sign", input: ptr("not-an-email"), wantErr: apierr.ErrInvalidEmailAddress},
		{name: "no domain", input: ptr("user@"), wantErr: apierr.ErrInvalidEmailAddress},
		{name: "lower-cased", input: ptr("A@B.com"), want: "a@b.com"},
		{name: "trimmed", input: ptr("  Mixed.Case@Example.ORG "), want: "mixed.case@example.org"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Email(tt.input)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPassword(t *testing.T) {
	v := newValidator()

	_, err := v.Password(nil)
	assert.Equal(t, apierr.ErrRequiredPassword, err)

	for _, weak := range []string{"", "short1", "onlyletters", "12345678"} {
		_, err := v.Password(ptr(weak))
		assert.Equal(t, apierr.ErrPasswordNecessity, err, weak)
	}

	got, err := v.Password(ptr("hunter22hunter"))
	require.NoError(t, err)
	assert.Equal(t, "hunter22hunter", got)
}

func TestPasswordUsesInjectedPolicy(t *testing.T) {
	v := New(func(p string) bool { return p == "open sesame" })

	_, err := v.Password(ptr("hunter22hunter"))
	assert.Equal(t, apierr.ErrPasswordNecessity, err)

	_, err = v.Password(ptr("open sesame"))
	assert.NoError(t, err)
}

func TestCredentials(t *testing.T) {
	assert.Equal(t, apierr.ErrRequiredEmailAndPassword, Credentials(nil, ptr("x")))
	assert.Equal(t, apierr.ErrRequiredEmailAndPassword, Credentials(ptr("a@b.com"), nil))
	assert.Equal(t, apierr.ErrRequiredEmailAndPassword, Credentials(nil, nil))
	assert.NoError(t, Credentials(ptr(""), ptr("")))
}

func TestStruct(t *testing.T) {
	v := newValidator()

	err := v.Struct(&dto.CreateSongRequest{SongTitle: ptr("Imagine"), Genre: ptr("rock"), Ratings: ptr(5)})
	assert.NoError(t, err)

	err = v.Struct(&dto.CreateSongRequest{SongTitle: ptr("Imagine"), Genre: ptr("rock"), Ratings: ptr(6)})
	e, ok := apierr.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, e.Status)
	assert.Equal(t, map[string][]string{
		"ratings": {"Ensure this value is less than or equal to 5."},
	}, e.Body)

	err = v.Struct(&dto.CreateSongRequest{Ratings: ptr(-1)})
	e, ok = apierr.As(err)
	require.True(t, ok)
	assert.Equal(t, map[string][]string{
		"song_title": {"This field is required."},
		"genre":      {"This field is required."},
		"ratings":    {"Ensure this value is greater than or equal to 0."},
	}, e.Body)

	err = v.Struct(&dto.UpdateGenreRequest{Genre: ptr("")})
	e, ok = apierr.As(err)
	require.True(t, ok)
	assert.Equal(t, map[string][]string{"genre": {"This field may not be blank."}}, e.Body)

	assert.NoError(t, v.Struct(&dto.UpdateSongRequest{}))
}
