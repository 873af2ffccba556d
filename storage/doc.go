// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database containing all of the world
// state tables, each one distinguished by a one byte prefix on its
// keys
//
// writes are accumulated into a batch transaction layered with a
// read-through cache so that uncommitted values are visible to reads
// issued through the same transaction
package storage
