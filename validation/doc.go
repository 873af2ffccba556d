// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package validation - stateful transaction filter
//
// trial-applies every transaction of a proposal against a temporary
// world state and keeps only the transactions whose commands all
// execute and pass authorization; accepted transactions stay in their
// original order and their effects are visible to the transactions
// validated after them
package validation
