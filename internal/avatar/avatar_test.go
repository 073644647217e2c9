package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"testing"

	"portfolio_backend/internal/models"
	"portfolio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func requireValidationError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %T", err)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Contains(t, appErr.Details, field)
}

func TestResolveURL(t *testing.T) {
	t.Run("url returns the address verbatim", func(t *testing.T) {
		got, err := ResolveURL(KindURL, Params{CustomURL: "https://x.test/a.png"})
		require.NoError(t, err)
		assert.Equal(t, "https://x.test/a.png", got)
	})

	t.Run("url is stored without trimming", func(t *testing.T) {
		_, err := ResolveURL(KindURL, Params{CustomURL: " https://x.test/a.png "})
		requireValidationError(t, err, "avatarCustomUrl")
	})

	t.Run("url rejects a relative value", func(t *testing.T) {
		_, err := ResolveURL(KindURL, Params{CustomURL: "not-a-url"})
		requireValidationError(t, err, "avatarCustomUrl")
	})

	t.Run("qq uses the template", func(t *testing.T) {
		got, err := ResolveURL(KindQQ, Params{QQNumber: "12345"})
		require.NoError(t, err)
		assert.Equal(t, "https://q1.qlogo.cn/g?b=qq&nk=12345&s=640", got)
	})

	t.Run("qq rejects empty and non-numeric ids", func(t *testing.T) {
		_, err := ResolveURL(KindQQ, Params{})
		requireValidationError(t, err, "avatarQQNumber")

		_, err = ResolveURL(KindQQ, Params{QQNumber: "12a45"})
		requireValidationError(t, err, "avatarQQNumber")
	})

	t.Run("gravatar is case and whitespace insensitive", func(t *testing.T) {
		messy, err := ResolveURL(KindGravatar, Params{GravatarEmail: "Test@Example.com "})
		require.NoError(t, err)
		clean, err := ResolveURL(KindGravatar, Params{GravatarEmail: "test@example.com"})
		require.NoError(t, err)

		assert.Equal(t, clean, messy)
		assert.Equal(t, DefaultGravatarServer+md5Hex("test@example.com")+"?s=400&d=mp", messy)
	})

	t.Run("gravatar uses the selected mirror", func(t *testing.T) {
		got, err := ResolveURL(KindGravatar, Params{
			GravatarEmail:  "a@example.com",
			GravatarServer: "https://cravatar.cn/avatar/",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://cravatar.cn/avatar/"+md5Hex("a@example.com")+"?s=400&d=mp", got)
	})

	t.Run("gravatar custom server gets a trailing slash", func(t *testing.T) {
		got, err := ResolveURL(KindGravatar, Params{
			GravatarEmail:        "a@example.com",
			GravatarServer:       CustomServer,
			GravatarCustomServer: "https://avatars.example.org/g",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://avatars.example.org/g/"+md5Hex("a@example.com")+"?s=400&d=mp", got)
	})

	t.Run("gravatar custom requires a valid base", func(t *testing.T) {
		_, err := ResolveURL(KindGravatar, Params{
			GravatarEmail:        "a@example.com",
			GravatarServer:       CustomServer,
			GravatarCustomServer: "avatars",
		})
		requireValidationError(t, err, "avatarGravatarCustomServer")
	})

	t.Run("gravatar rejects a bad email", func(t *testing.T) {
		_, err := ResolveURL(KindGravatar, Params{GravatarEmail: "nope"})
		requireValidationError(t, err, "avatarGravatarEmail")
	})

	t.Run("gravatar rejects an unknown server token", func(t *testing.T) {
		_, err := ResolveURL(KindGravatar, Params{GravatarEmail: "a@example.com", GravatarServer: "mirror-7"})
		requireValidationError(t, err, "avatarGravatarServer")
	})

	t.Run("upload requires the file url", func(t *testing.T) {
		_, err := ResolveURL(KindUpload, Params{})
		requireValidationError(t, err, "avatar")

		got, err := ResolveURL(KindUpload, Params{UploadURL: "http://localhost:5000/uploads/avatars/a.png"})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5000/uploads/avatars/a.png", got)
	})

	t.Run("upload accepts a site-relative path", func(t *testing.T) {
		got, err := ResolveURL(KindUpload, Params{UploadURL: "/uploads/avatars/a.png"})
		require.NoError(t, err)
		assert.Equal(t, "/uploads/avatars/a.png", got)
	})

	t.Run("upload rejects values that are not urls", func(t *testing.T) {
		for _, bad := range []string{
			"javascript:alert(1)",
			"just some text",
			"avatars/a.png",
			"//evil.example.com/a.png",
			"data:image/png;base64,AAAA",
		} {
			_, err := ResolveURL(KindUpload, Params{UploadURL: bad})
			requireValidationError(t, err, "avatar")

			_, err = BuildFieldUpdate(KindUpload, Params{UploadURL: bad})
			requireValidationError(t, err, "avatar")
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := ResolveURL(Kind("weibo"), Params{})
		requireValidationError(t, err, "avatarSource")
	})
}

func nonNullGroups(p Patch) []string {
	var groups []string
	if p.CustomURL != nil {
		groups = append(groups, "url")
	}
	if p.QQNumber != nil {
		groups = append(groups, "qq")
	}
	if p.GravatarEmail != nil || p.GravatarServer != nil {
		groups = append(groups, "gravatar")
	}
	return groups
}

func TestBuildFieldUpdateKeepsOneGroup(t *testing.T) {
	cases := []struct {
		kind   Kind
		params Params
		want   []string
	}{
		{KindUpload, Params{UploadURL: "/uploads/avatars/a.png", QQNumber: "1", CustomURL: "https://x.test"}, nil},
		{KindURL, Params{CustomURL: "https://x.test/a.png", QQNumber: "1"}, []string{"url"}},
		{KindQQ, Params{QQNumber: "12345", GravatarEmail: "a@example.com"}, []string{"qq"}},
		{KindGravatar, Params{GravatarEmail: "a@example.com", CustomURL: "https://x.test/a.png"}, []string{"gravatar"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			patch, err := BuildFieldUpdate(tc.kind, tc.params)
			require.NoError(t, err)

			assert.Equal(t, tc.kind, patch.Source)
			assert.NotEmpty(t, patch.Avatar)
			assert.Equal(t, tc.want, nonNullGroups(patch))

			cols := patch.Columns()
			assert.Len(t, cols, 6)
			for _, col := range []string{"avatar_custom_url", "avatar_qq_number", "avatar_gravatar_email", "avatar_gravatar_server"} {
				assert.Contains(t, cols, col, "inactive columns must be present so they are nulled")
			}
		})
	}
}

func TestSwitchGravatarToQQ(t *testing.T) {
	profile := &models.Profile{}

	gravatar, err := BuildFieldUpdate(KindGravatar, Params{
		GravatarEmail:  "a@example.com",
		GravatarServer: "https://www.gravatar.com/avatar/",
	})
	require.NoError(t, err)
	gravatar.ApplyTo(profile)
	require.NotNil(t, profile.AvatarGravatarEmail)

	qq, err := BuildFieldUpdate(KindQQ, Params{QQNumber: "12345"})
	require.NoError(t, err)
	qq.ApplyTo(profile)

	assert.Nil(t, profile.AvatarGravatarEmail)
	assert.Nil(t, profile.AvatarGravatarServer)
	require.NotNil(t, profile.AvatarQQNumber)
	assert.Equal(t, "12345", *profile.AvatarQQNumber)
	assert.Equal(t, "qq", *profile.AvatarSource)
	assert.Equal(t, "https://q1.qlogo.cn/g?b=qq&nk=12345&s=640", *profile.Avatar)

	cols := qq.Columns()
	assert.Nil(t, cols["avatar_gravatar_email"])
	assert.Nil(t, cols["avatar_gravatar_server"])
	assert.Equal(t, "12345", cols["avatar_qq_number"])
}

func TestBuildFieldUpdateRejectsMissingParams(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			_, err := BuildFieldUpdate(kind, Params{})
			assert.Error(t, err)
		})
	}
}

func TestPatchForSource(t *testing.T) {
	patch := PatchFor(Gravatar{Email: "a@example.com", Server: "https://cdn.v2ex.com/gravatar/"})

	assert.Equal(t, KindGravatar, patch.Source)
	assert.Equal(t, "https://cdn.v2ex.com/gravatar/", *patch.GravatarServer)
	assert.Equal(t, "https://cdn.v2ex.com/gravatar/"+md5Hex("a@example.com")+"?s=400&d=mp", patch.Avatar)
}
