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

//go:build js && wasm

package jsbridge

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"

	"github.com/blinklabs-io/stakeconnect/provider"
)

// Namespace returns a namespace backed by globalThis.cardano. Every lookup reads the
// global again, since extensions inject themselves after page load
func Namespace() provider.Namespace {
	global := js.Global()
	if !isObject(global) {
		return nil
	}
	return &namespace{global: global}
}

type namespace struct {
	global js.Value
}

func (n *namespace) Lookup(id provider.Id) (provider.Handle, bool) {
	cardano := n.global.Get(NamespaceKey)
	if !isObject(cardano) {
		return nil, false
	}
	wallet := cardano.Get(string(id))
	if !isObject(wallet) {
		return nil, false
	}
	return &handle{id: id, wallet: wallet}, true
}

type handle struct {
	id     provider.Id
	wallet js.Value
}

func (h *handle) Enable(ctx context.Context) (*provider.Session, error) {
	if h.wallet.Get("enable").Type() != js.TypeFunction {
		return nil, fmt.Errorf("provider %s has no enable function", h.id)
	}
	api, err := await(ctx, h.wallet.Call("enable"))
	if err != nil {
		return nil, err
	}
	if !isObject(api) {
		return nil, fmt.Errorf("provider %s returned no API from enable", h.id)
	}
	session := &provider.Session{}
	if api.Get("getNetworkId").Type() == js.TypeFunction {
		session.GetNetworkId = func(ctx context.Context) (int, error) {
			ret, err := await(ctx, api.Call("getNetworkId"))
			if err != nil {
				return 0, err
			}
			if ret.Type() != js.TypeNumber {
				return 0, fmt.Errorf("unexpected network ID type: %s", ret.Type())
			}
			return ret.Int(), nil
		}
	}
	if api.Get("getRewardAddresses").Type() == js.TypeFunction {
		session.GetRewardAddresses = func(ctx context.Context) ([]any, error) {
			ret, err := await(ctx, api.Call("getRewardAddresses"))
			if err != nil {
				return nil, err
			}
			if ret.IsNull() || ret.IsUndefined() {
				return nil, nil
			}
			if !isArray(ret) {
				return nil, fmt.Errorf("unexpected reward addresses type: %s", ret.Type())
			}
			return toGo(ret).([]any), nil
		}
	}
	return session, nil
}

// await blocks until value settles if it is a thenable, and returns it as-is otherwise
func await(ctx context.Context, value js.Value) (js.Value, error) {
	if !isObject(value) || value.Get("then").Type() != js.TypeFunction {
		return value, nil
	}
	resolvedCh := make(chan js.Value, 1)
	rejectedCh := make(chan js.Value, 1)
	var onResolve, onReject js.Func
	// The callbacks are released once the promise settles, even if ctx is done by then
	release := func() {
		onResolve.Release()
		onReject.Release()
	}
	onResolve = js.FuncOf(func(this js.Value, args []js.Value) any {
		resolvedCh <- firstArg(args)
		release()
		return nil
	})
	onReject = js.FuncOf(func(this js.Value, args []js.Value) any {
		rejectedCh <- firstArg(args)
		release()
		return nil
	})
	value.Call("then", onResolve, onReject)
	select {
	case ret := <-resolvedCh:
		return ret, nil
	case reason := <-rejectedCh:
		return js.Undefined(), jsError(reason)
	case <-ctx.Done():
		return js.Undefined(), ctx.Err()
	}
}

func firstArg(args []js.Value) js.Value {
	if len(args) == 0 {
		return js.Undefined()
	}
	return args[0]
}

// jsError converts a promise rejection reason. Wallet API errors carry a numeric code
func jsError(reason js.Value) error {
	if !isObject(reason) {
		if reason.Type() == js.TypeString {
			return errors.New(reason.String())
		}
		return fmt.Errorf("wallet request rejected: %s", reason.Type())
	}
	if code := reason.Get("code"); code.Type() == js.TypeNumber {
		info := reason.Get("info")
		if info.Type() != js.TypeString {
			info = reason.Get("message")
		}
		apiErr := provider.APIError{Code: code.Int()}
		if info.Type() == js.TypeString {
			apiErr.Info = info.String()
		}
		return apiErr
	}
	return js.Error{Value: reason}
}

// toGo converts the values wallets return for addresses
func toGo(value js.Value) any {
	switch value.Type() {
	case js.TypeString:
		return value.String()
	case js.TypeNumber:
		return value.Float()
	case js.TypeNull, js.TypeUndefined:
		return nil
	}
	if value.InstanceOf(js.Global().Get("Uint8Array")) {
		ret := make([]byte, value.Length())
		js.CopyBytesToGo(ret, value)
		return ret
	}
	if isArray(value) {
		ret := make([]any, value.Length())
		for i := range ret {
			ret[i] = toGo(value.Index(i))
		}
		return ret
	}
	return value
}

func isObject(value js.Value) bool {
	t := value.Type()
	return t == js.TypeObject || t == js.TypeFunction
}

func isArray(value js.Value) bool {
	return js.Global().Get("Array").Call("isArray", value).Bool()
}
