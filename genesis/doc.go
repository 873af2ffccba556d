// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package genesis - bootstrap data for an empty world state
//
// loads the genesis block and the trusted peers list from local JSON
// files; the block is an ordered batch of transactions whose commands
// establish the initial roles, domains, accounts and peers
package genesis
