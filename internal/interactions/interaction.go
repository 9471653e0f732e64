// Package interactions holds the interaction model, the type state machine
// that decides the synchronous HTTP response, and the sanitize-and-publish
// path that hands accepted commands to the message bus.
package interactions

import (
	"encoding/json"
)

// Interaction type codes sent by the platform.
const (
	TypePing               = 1
	TypeApplicationCommand = 2
)

// Response type codes returned to the platform.
const (
	ResponseTypePong                   = 1
	ResponseTypeDeferredChannelMessage = 5
)

// Interaction is the inbound payload after signature verification. Type is a
// pointer so an absent or null "type" is distinguishable from zero.
type Interaction struct {
	Type          *int                   `json:"type"`
	ID            string                 `json:"id,omitempty"`
	ApplicationID string                 `json:"application_id,omitempty"`
	Token         string                 `json:"token,omitempty"`
	Data          map[string]interface{} `json:"data,omitempty"`
	GuildID       string                 `json:"guild_id,omitempty"`
	ChannelID     string                 `json:"channel_id,omitempty"`
	Member        map[string]interface{} `json:"member,omitempty"`
	User          map[string]interface{} `json:"user,omitempty"`
	Locale        string                 `json:"locale,omitempty"`
	GuildLocale   string                 `json:"guild_locale,omitempty"`
}

// CommandName returns data.name when present and a non-empty string.
func (i *Interaction) CommandName() string {
	if i.Data == nil {
		return ""
	}
	name, _ := i.Data["name"].(string)
	return name
}

// SanitizedEvent is the downstream projection of an Interaction. The token
// grants reply access on the platform and is never part of it.
type SanitizedEvent struct {
	Type          *int                   `json:"type"`
	ID            string                 `json:"id,omitempty"`
	ApplicationID string                 `json:"application_id,omitempty"`
	Data          map[string]interface{} `json:"data,omitempty"`
	GuildID       string                 `json:"guild_id,omitempty"`
	ChannelID     string                 `json:"channel_id,omitempty"`
	Member        map[string]interface{} `json:"member,omitempty"`
	User          map[string]interface{} `json:"user,omitempty"`
	Locale        string                 `json:"locale,omitempty"`
	GuildLocale   string                 `json:"guild_locale,omitempty"`
}

// Sanitize projects the interaction into its downstream event form.
func (i *Interaction) Sanitize() *SanitizedEvent {
	return &SanitizedEvent{
		Type:          i.Type,
		ID:            i.ID,
		ApplicationID: i.ApplicationID,
		Data:          i.Data,
		GuildID:       i.GuildID,
		ChannelID:     i.ChannelID,
		Member:        i.Member,
		User:          i.User,
		Locale:        i.Locale,
		GuildLocale:   i.GuildLocale,
	}
}

// ParseInteraction decodes the verified raw body. Non-object bodies and
// malformed JSON are parse errors; a null body decodes to an Interaction
// with a nil Type, which the dispatcher rejects as missing.
func ParseInteraction(body []byte) (*Interaction, error) {
	var interaction Interaction
	if err := json.Unmarshal(body, &interaction); err != nil {
		return nil, err
	}
	return &interaction, nil
}

// Response is the synchronous interaction response body.
type Response struct {
	Type int `json:"type"`
}

// ErrorResponse is the error body for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
