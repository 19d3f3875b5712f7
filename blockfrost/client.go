// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package blockfrost queries account state for a stake address from the Blockfrost API
package blockfrost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/blinklabs-io/stakeconnect/address"
	"github.com/blinklabs-io/stakeconnect/network"
)

const (
	ProjectIdHeader   = "project_id"
	ProjectIdEnvVar   = "BLOCKFROST_PROJECT_ID"
	maxResponseSize   = 1 << 20
	defaultAttempts   = 3
	defaultRetryDelay = 500 * time.Millisecond
)

// Client is a minimal Blockfrost API client
type Client struct {
	baseUrl       string
	projectId     string
	httpClient    *http.Client
	logger        *slog.Logger
	retryAttempts uint
	retryDelay    time.Duration
}

// Account is the state of a stake account. Amounts are in lovelace
type Account struct {
	StakeAddress       string  `json:"stake_address"`
	Active             bool    `json:"active"`
	PoolId             *string `json:"pool_id"`
	ControlledAmount   uint64  `json:"controlled_amount,string"`
	RewardsSum         uint64  `json:"rewards_sum,string"`
	WithdrawableAmount uint64  `json:"withdrawable_amount,string"`
}

// New returns a new Client with the specified options. The preview network's endpoint is used
// unless WithBaseURL or WithNetwork is given
func New(options ...ClientOptionFunc) *Client {
	c := &Client{
		baseUrl:       network.NetworkPreview.BlockfrostUrl,
		retryAttempts: defaultAttempts,
		retryDelay:    defaultRetryDelay,
	}
	for _, option := range options {
		option(c)
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	// retry-go treats 0 attempts as unlimited
	if c.retryAttempts == 0 {
		c.retryAttempts = 1
	}
	c.baseUrl = strings.TrimRight(c.baseUrl, "/")
	return c
}

// BaseURL returns the API base URL requests are sent to
func (c *Client) BaseURL() string {
	return c.baseUrl
}

// Account returns the account state for the given bech32 stake address
func (c *Client) Account(ctx context.Context, stakeAddress string) (*Account, error) {
	addr, err := address.NewAddress(stakeAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStakeAddress, err)
	}
	if !addr.IsStake() {
		return nil, fmt.Errorf(
			"%w: address type %d is not a reward address",
			ErrInvalidStakeAddress,
			addr.Type(),
		)
	}
	reqUrl := c.baseUrl + "/accounts/" + url.PathEscape(stakeAddress)
	return retry.DoWithData(
		func() (*Account, error) {
			var account Account
			if err := c.get(ctx, reqUrl, &account); err != nil {
				return nil, err
			}
			return &account, nil
		},
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Debug(
				"retrying Blockfrost request",
				"url", reqUrl,
				"attempt", n+1,
				"error", err,
			)
		}),
	)
}

func (c *Client) get(ctx context.Context, reqUrl string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.projectId != "" {
		req.Header.Set(ProjectIdHeader, c.projectId)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		apiErr := APIError{StatusCode: resp.StatusCode}
		// The error body is informational only
		_ = json.Unmarshal(body, &apiErr)
		if apiErr.StatusCode == 0 {
			apiErr.StatusCode = resp.StatusCode
		}
		return apiErr
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}

// isRetryable reports whether a request failure may succeed on another attempt
func isRetryable(err error) bool {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests ||
			apiErr.StatusCode >= http.StatusInternalServerError
	}
	// Transport failures are retried, everything else is final
	return !errors.Is(err, ErrInvalidResponse) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}
