// SPDX-License-Identifier: MIT

package nats

import (
	"context"
	"encoding/json"
	"log/slog"
)

// PublishEvent marshals event to JSON and publishes it to subject,
// fire-and-forget. A publish failure is logged, never returned as a
// fatal orchestrator error: the event bus is operational visibility,
// not a correctness dependency (spec §4.11).
func (c *Client) PublishEvent(ctx context.Context, subject string, event any) {
	if !c.IsReady() {
		slog.WarnContext(ctx, "ops event bus not ready, dropping event", "subject", subject)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		slog.WarnContext(ctx, "failed to marshal ops event, dropping", "subject", subject, "error", err)
		return
	}

	if err := c.conn.Publish(subject, data); err != nil {
		slog.WarnContext(ctx, "failed to publish ops event", "subject", subject, "error", err)
	}
}
