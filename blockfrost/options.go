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

package blockfrost

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/blinklabs-io/stakeconnect/network"
)

// ClientOptionFunc is a type that represents functions that modify the Client config
type ClientOptionFunc func(*Client)

// WithBaseURL specifies the API base URL, including the version path
func WithBaseURL(baseUrl string) ClientOptionFunc {
	return func(c *Client) {
		c.baseUrl = baseUrl
	}
}

// WithNetwork uses the Blockfrost endpoint of the specified network
func WithNetwork(net network.Network) ClientOptionFunc {
	return func(c *Client) {
		if net.BlockfrostUrl != "" {
			c.baseUrl = net.BlockfrostUrl
		}
	}
}

// WithProjectId specifies the Blockfrost project ID sent with each request
func WithProjectId(projectId string) ClientOptionFunc {
	return func(c *Client) {
		c.projectId = projectId
	}
}

// WithHTTPClient specifies the HTTP client to use. http.DefaultClient is used if none is provided
func WithHTTPClient(httpClient *http.Client) ClientOptionFunc {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger specifies the logger to use. slog.Default() is used if none is provided
func WithLogger(logger *slog.Logger) ClientOptionFunc {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRetryAttempts specifies how many times a request is attempted in total
func WithRetryAttempts(attempts uint) ClientOptionFunc {
	return func(c *Client) {
		c.retryAttempts = attempts
	}
}

// WithRetryDelay specifies the initial delay between attempts
func WithRetryDelay(delay time.Duration) ClientOptionFunc {
	return func(c *Client) {
		c.retryDelay = delay
	}
}
