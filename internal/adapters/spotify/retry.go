package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// getJSON performs a GET with exponential-backoff retries on transport
// errors, 429 and 5xx responses, decoding the body into out on success.
// A Retry-After header takes precedence over the computed backoff delay.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("spotify adapter: failed to create request: %w", err))
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("spotify adapter: request failed: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return backoff.Permanent(fmt.Errorf("spotify adapter: decode error: %w", err))
			}
			return nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
			if wait := parseRetryAfter(resp); wait > 0 {
				c.logger.Warn().Dur("retry_after", wait).Int("status", resp.StatusCode).Msg("rate limited, honoring Retry-After")
				if err := sleepWithContext(ctx, wait); err != nil {
					return backoff.Permanent(err)
				}
			}
			return fmt.Errorf("spotify adapter: status %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("spotify adapter: status %d", resp.StatusCode))
		}
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	notify := func(err error, next time.Duration) {
		c.logger.Warn().Err(err).Dur("next_attempt_in", next).Msg("retrying catalog request")
	}
	return backoff.RetryNotify(operation, policy, notify)
}

func parseRetryAfter(resp *http.Response) time.Duration {
	retryAfter := resp.Header.Get("Retry-After")
	if retryAfter == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if when, err := http.ParseTime(retryAfter); err == nil {
		if until := time.Until(when); until > 0 {
			return until
		}
	}
	return 0
}

func sleepWithContext(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("spotify adapter: request canceled: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
