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
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrAccountNotFound     = errors.New("stake account not found")
	ErrInvalidStakeAddress = errors.New("invalid stake address")
	ErrInvalidResponse     = errors.New("invalid Blockfrost response")
)

// APIError is a non-success response from the Blockfrost API
type APIError struct {
	StatusCode int    `json:"status_code"`
	ErrorName  string `json:"error"`
	Message    string `json:"message"`
}

func (e APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Blockfrost API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf(
		"Blockfrost API error: status %d: %s",
		e.StatusCode,
		e.Message,
	)
}

func (e APIError) Is(target error) bool {
	return target == ErrAccountNotFound && e.StatusCode == http.StatusNotFound
}
