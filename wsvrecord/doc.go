// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package wsvrecord - record types for the world state
//
// entity records held by the world state view together with the
// command, transaction and proposal types that mutate it
//
// records pack to canonical JSON; commands travel inside a tagged
// envelope so that transactions survive a marshal round trip
package wsvrecord
