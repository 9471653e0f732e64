package interactions

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"interactions-gateway/internal/common/logging"
)

// DefaultPublishTimeout bounds how long a publish may delay the response.
const DefaultPublishTimeout = 10 * time.Second

// Dispatcher maps interaction types to synchronous responses and forwards
// accepted commands to the publisher. It holds only immutable startup state
// and is safe for concurrent use.
type Dispatcher struct {
	publisher      Publisher
	logger         logging.Logger
	publishTimeout time.Duration

	now func() time.Time
}

// NewDispatcher creates a dispatcher. A nil publisher falls back to the noop
// publisher; a non-positive timeout falls back to the default.
func NewDispatcher(publisher Publisher, logger logging.Logger, publishTimeout time.Duration) *Dispatcher {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if publishTimeout <= 0 {
		publishTimeout = DefaultPublishTimeout
	}

	return &Dispatcher{
		publisher:      publisher,
		logger:         logger,
		publishTimeout: publishTimeout,
		now:            time.Now,
	}
}

// Dispatch runs the interaction type state machine and returns the HTTP
// status and response body. For application commands the response is decided
// before the publish attempt and is never altered by its outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, interaction *Interaction) (int, interface{}) {
	if interaction.Type == nil {
		return http.StatusBadRequest, ErrorResponse{Error: "missing type"}
	}

	switch *interaction.Type {
	case TypePing:
		return http.StatusOK, Response{Type: ResponseTypePong}

	case TypeApplicationCommand:
		d.publish(interaction)
		return http.StatusOK, Response{Type: ResponseTypeDeferredChannelMessage}

	default:
		d.logger.Warn("Unsupported interaction type",
			logging.Field{"type", *interaction.Type},
			logging.Field{"interaction_id", interaction.ID},
		)
		return http.StatusBadRequest, ErrorResponse{Error: "unsupported interaction type"}
	}
}

// publish sanitizes the interaction and attempts a single bounded publish.
// Failures are logged and swallowed. The timeout context is detached from the
// request so a client disconnect cannot cut the publish short.
func (d *Dispatcher) publish(interaction *Interaction) {
	event := interaction.Sanitize()

	body, err := json.Marshal(event)
	if err != nil {
		d.logger.Error("Failed to marshal sanitized event", err,
			logging.Field{"interaction_id", interaction.ID},
		)
		return
	}

	attributes := map[string]string{
		"interaction_id":   interaction.ID,
		"interaction_type": strconv.Itoa(*interaction.Type),
		"application_id":   interaction.ApplicationID,
		"guild_id":         interaction.GuildID,
		"channel_id":       interaction.ChannelID,
		"timestamp":        d.now().UTC().Format("2006-01-02T15:04:05Z"),
	}
	if name := interaction.CommandName(); name != "" {
		attributes["command_name"] = name
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.publishTimeout)
	defer cancel()

	if err := d.publisher.Publish(ctx, body, attributes); err != nil {
		d.logger.Error("Failed to publish interaction event", err,
			logging.Field{"interaction_id", interaction.ID},
			logging.Field{"publisher", d.publisher.Name()},
		)
		return
	}

	d.logger.Info("Interaction event published",
		logging.Field{"interaction_id", interaction.ID},
		logging.Field{"command_name", interaction.CommandName()},
		logging.Field{"publisher", d.publisher.Name()},
	)
}
