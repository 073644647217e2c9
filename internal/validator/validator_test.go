package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name         string `json:"name" validate:"required,max=10"`
	Proficiency  int    `json:"proficiency" validate:"gte=0,lte=100"`
	AvatarSource string `json:"avatarSource" validate:"omitempty,is-avatar-source"`
	Kind         string `json:"kind" validate:"omitempty,is-upload-kind"`
}

func TestValidateUsesJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Proficiency: 120, AvatarSource: "weibo", Kind: "banner"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", vErr.Errors["name"])
	assert.Equal(t, "Must be less than or equal to 100", vErr.Errors["proficiency"])
	assert.Equal(t, "Must be one of: upload, url, qq, gravatar", vErr.Errors["avatarSource"])
	assert.Equal(t, "Must be one of: avatar, project, favicon, logo", vErr.Errors["kind"])
	assert.Contains(t, vErr.Error(), "field 'name'")
}

func TestValidatePasses(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&sampleRequest{Name: "Go", Proficiency: 90, AvatarSource: "qq", Kind: "logo"}))
}
