// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_UnmarshalKeepsExtraFields(t *testing.T) {
	var p Profile
	require.NoError(t, json.Unmarshal([]byte(`{"username":"ann","display_name":"Ann","id":5,"lang":"en"}`), &p))

	assert.Equal(t, "ann", p.Username)
	assert.Equal(t, "Ann", p.DisplayName)
	assert.JSONEq(t, `5`, string(p.Fields["id"]))
	assert.JSONEq(t, `"en"`, string(p.Fields["lang"]))
}

func TestProfile_DisplayNamePrecedence(t *testing.T) {
	inputs := []string{
		`{"username":"ann","displayName":"Camel","display_name":"Snake"}`,
		`{"display_name":"Snake","username":"ann","displayName":"Camel"}`,
	}
	for _, in := range inputs {
		// map order is random; repeat to catch order dependence
		for i := 0; i < 20; i++ {
			var p Profile
			require.NoError(t, json.Unmarshal([]byte(in), &p))
			assert.Equal(t, "Camel", p.DisplayName)
			assert.NotContains(t, p.Fields, "display_name")
		}
	}

	var p Profile
	require.NoError(t, json.Unmarshal([]byte(`{"displayName":"","display_name":"Snake"}`), &p))
	assert.Equal(t, "Snake", p.DisplayName)
}

func TestProfile_RoundTrip(t *testing.T) {
	in := `{"username":"ann","displayName":"Ann","id":5}`

	var p Profile
	require.NoError(t, json.Unmarshal([]byte(in), &p))
	out, err := json.Marshal(p)
	require.NoError(t, err)

	assert.JSONEq(t, in, string(out))
}

func TestProfile_UnmarshalNull(t *testing.T) {
	var p Profile
	err := json.Unmarshal([]byte(`null`), &p)
	assert.ErrorIs(t, err, ErrEmptyProfile)
}

func TestProfile_CloneAndEqual(t *testing.T) {
	p := &Profile{Username: "ann", Fields: map[string]json.RawMessage{"id": json.RawMessage(`5`)}}

	c := p.Clone()
	require.True(t, p.Equal(c))

	c.Fields["id"][0] = '6'
	assert.False(t, p.Equal(c))
	assert.JSONEq(t, `5`, string(p.Fields["id"]))

	var nilProfile *Profile
	assert.Nil(t, nilProfile.Clone())
	assert.True(t, nilProfile.Equal(nil))
	assert.False(t, nilProfile.Equal(p))
}

func TestProfile_Name(t *testing.T) {
	assert.Equal(t, "Ann", (&Profile{Username: "ann", DisplayName: "Ann"}).Name())
	assert.Equal(t, "ann", (&Profile{Username: "ann"}).Name())
	var nilProfile *Profile
	assert.Empty(t, nilProfile.Name())
}

func TestSession_Username(t *testing.T) {
	assert.Empty(t, Session{}.Username())
	assert.False(t, Session{}.IsAuthenticated())

	s := Session{Token: "t", Profile: &Profile{Username: "ann"}}
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "ann", s.Username())
}

func TestTelegramLoginResponse(t *testing.T) {
	var r TelegramLoginResponse
	require.NoError(t, json.Unmarshal([]byte(`{"success":true,"apiKey":"k1","user":{"username":"ann"}}`), &r))

	assert.True(t, r.Succeeded())
	assert.Equal(t, "k1", r.IssuedToken())
	require.NotNil(t, r.User)
	assert.Equal(t, "ann", r.User.Username)

	var missing TelegramLoginResponse
	require.NoError(t, json.Unmarshal([]byte(`{"token":"t"}`), &missing))
	assert.False(t, missing.Succeeded())
	assert.Equal(t, "t", missing.IssuedToken())
}
