// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package wsv - the World State View
//
// mutable store of ledger state: accounts, domains, roles,
// permissions, assets and peers
//
// the same command and query surface runs over two stores: the
// persistent store backed by the storage pools, and a temporary
// copy-on-write overlay used for speculative validation of a
// proposal; the overlay is always discarded, never merged back
//
// every command is all-or-nothing and returns a typed failure from
// the fault package; queries return explicit absence, and degrade to
// absence when the underlying store is unusable
package wsv
