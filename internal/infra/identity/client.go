// Package identity implements the identity provider's management API client
// and the verifier for its signed account webhooks.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"evently/config"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/service"
	"evently/internal/errors"

	"github.com/google/uuid"
)

const (
	requestTimeout    = 10 * time.Second
	maxErrorBodyBytes = 1024
)

// client talks to the identity provider's management API.
type client struct {
	httpClient *http.Client
	apiBase    string
	apiKey     string
	logger     *slog.Logger
}

// NewProvider creates the identity provider client from configuration.
func NewProvider(cfg *config.Config, logger *slog.Logger) (service.IdentityProvider, error) {
	if cfg.Identity == nil || strings.TrimSpace(cfg.Identity.APIKey) == "" {
		return nil, domainerrors.ErrConfiguration.WrapMessage("identity API key is required")
	}

	return &client{
		httpClient: &http.Client{Timeout: requestTimeout},
		apiBase:    strings.TrimRight(cfg.Identity.APIBase, "/"),
		apiKey:     cfg.Identity.APIKey,
		logger:     logger,
	}, nil
}

type metadataUpdateRequest struct {
	PublicMetadata map[string]string `json:"public_metadata"`
}

// SetAccountMetadata pushes the internal account id back to the identity
// provider as public metadata, so session tokens issued afterwards carry it.
func (c *client) SetAccountMetadata(ctx context.Context, identityID string, accountID uuid.UUID) error {
	payload, err := json.Marshal(metadataUpdateRequest{
		PublicMetadata: map[string]string{"accountId": accountID.String()},
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal metadata update")
	}

	url := fmt.Sprintf("%s/v1/users/%s/metadata", c.apiBase, identityID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to create metadata update request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "metadata update request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		if c.logger != nil {
			c.logger.LogAttrs(ctx, slog.LevelError, "Identity provider rejected metadata update",
				slog.String("identityID", identityID),
				slog.Int("statusCode", resp.StatusCode),
				slog.String("body", string(body)),
			)
		}

		return errors.New(fmt.Sprintf("identity provider returned status %d", resp.StatusCode))
	}

	return nil
}
