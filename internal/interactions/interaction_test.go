package interactions

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInteraction(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		wantType *int
	}{
		{
			name:     "ping",
			body:     `{"type":1}`,
			wantType: intPtr(1),
		},
		{
			name:     "command",
			body:     `{"type":2,"id":"123","data":{"name":"greet"}}`,
			wantType: intPtr(2),
		},
		{
			name:     "missing type",
			body:     `{"id":"123"}`,
			wantType: nil,
		},
		{
			name:     "explicit null type",
			body:     `{"type":null,"id":"123"}`,
			wantType: nil,
		},
		{
			name:     "null body",
			body:     `null`,
			wantType: nil,
		},
		{
			name:    "not json",
			body:    `{{{`,
			wantErr: true,
		},
		{
			name:    "array body",
			body:    `[1,2,3]`,
			wantErr: true,
		},
		{
			name:    "string type",
			body:    `{"type":"2"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interaction, err := ParseInteraction([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.wantType == nil {
				assert.Nil(t, interaction.Type)
			} else {
				require.NotNil(t, interaction.Type)
				assert.Equal(t, *tt.wantType, *interaction.Type)
			}
		})
	}
}

func TestCommandName(t *testing.T) {
	tests := []struct {
		name string
		data map[string]interface{}
		want string
	}{
		{"nil data", nil, ""},
		{"no name", map[string]interface{}{"options": []interface{}{}}, ""},
		{"empty name", map[string]interface{}{"name": ""}, ""},
		{"non-string name", map[string]interface{}{"name": 42}, ""},
		{"named command", map[string]interface{}{"name": "greet"}, "greet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interaction := &Interaction{Data: tt.data}
			assert.Equal(t, tt.want, interaction.CommandName())
		})
	}
}

func TestSanitizeDropsToken(t *testing.T) {
	interaction, err := ParseInteraction([]byte(`{
		"type": 2,
		"id": "int-1",
		"application_id": "app-1",
		"token": "sensitive-token-should-be-redacted",
		"data": {"name": "greet"},
		"guild_id": "guild-1",
		"channel_id": "chan-1",
		"member": {"user": {"id": "user-1"}},
		"locale": "en-US"
	}`))
	require.NoError(t, err)

	event := interaction.Sanitize()
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "sensitive-token-should-be-redacted")
	assert.NotContains(t, string(payload), `"token"`)
	assert.Contains(t, string(payload), `"id":"int-1"`)
	assert.Contains(t, string(payload), `"guild_id":"guild-1"`)
	assert.Contains(t, string(payload), `"locale":"en-US"`)
}

func TestSanitizeOmitsAbsentFields(t *testing.T) {
	interaction, err := ParseInteraction([]byte(`{"type":2,"id":"int-1"}`))
	require.NoError(t, err)

	payload, err := json.Marshal(interaction.Sanitize())
	require.NoError(t, err)

	// Absent optional fields stay absent, never placeholder-defaulted
	assert.NotContains(t, string(payload), "guild_id")
	assert.NotContains(t, string(payload), "channel_id")
	assert.NotContains(t, string(payload), "member")
	assert.NotContains(t, string(payload), "user")
	assert.Contains(t, string(payload), `"type":2`)
}

func intPtr(v int) *int {
	return &v
}
