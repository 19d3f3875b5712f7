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

// Package jsbridge exposes the wallet providers a browser injects under
// globalThis.cardano as a provider.Namespace.
//
// Only js/wasm builds have a host namespace. Elsewhere Namespace returns nil.
//
// Provider calls block until the wallet's promise settles, so they must run on a
// goroutine of their own and never directly inside a js.FuncOf callback.
package jsbridge

// NamespaceKey is the global property wallets inject themselves under
const NamespaceKey = "cardano"
