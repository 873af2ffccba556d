// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsv

import (
	"sort"

	"github.com/robinrowe/iroha/fault"
	"github.com/robinrowe/iroha/wsvrecord"
)

// overlayEntry - one shadowed record
type overlayEntry struct {
	value   []byte
	deleted bool
}

// overlayStore - copy-on-write shadow over a base store
//
// committed holds the effects of accepted transactions, pending
// holds the open checkpoint of the transaction currently being
// trial-applied; reads see pending, then committed, then the base
type overlayStore struct {
	base         Store
	committed    map[string]overlayEntry
	pending      map[string]overlayEntry
	inCheckpoint bool
}

func newOverlayStore(base Store) *overlayStore {
	return &overlayStore{
		base:      base,
		committed: map[string]overlayEntry{},
	}
}

func overlayKey(pool Pool, key string) string {
	return string(pool) + key
}

func (o *overlayStore) Available() bool {
	return o.base.Available()
}

func (o *overlayStore) Get(pool Pool, key string) ([]byte, bool) {
	k := overlayKey(pool, key)
	if o.inCheckpoint {
		if e, ok := o.pending[k]; ok {
			if e.deleted {
				return nil, false
			}
			return e.value, true
		}
	}
	if e, ok := o.committed[k]; ok {
		if e.deleted {
			return nil, false
		}
		return e.value, true
	}
	return o.base.Get(pool, key)
}

func (o *overlayStore) Has(pool Pool, key string) bool {
	_, found := o.Get(pool, key)
	return found
}

func (o *overlayStore) Put(pool Pool, key string, value []byte) error {
	e := overlayEntry{value: value}
	if o.inCheckpoint {
		o.pending[overlayKey(pool, key)] = e
	} else {
		o.committed[overlayKey(pool, key)] = e
	}
	return nil
}

func (o *overlayStore) Delete(pool Pool, key string) error {
	e := overlayEntry{deleted: true}
	if o.inCheckpoint {
		o.pending[overlayKey(pool, key)] = e
	} else {
		o.committed[overlayKey(pool, key)] = e
	}
	return nil
}

// Range - merge the base records with the shadowed ones, key order
func (o *overlayStore) Range(pool Pool, fn func(key string, value []byte) bool) {

	merged := map[string][]byte{}
	o.base.Range(pool, func(key string, value []byte) bool {
		merged[key] = value
		return true
	})

	prefix := string(pool)
	apply := func(layer map[string]overlayEntry) {
		for k, e := range layer {
			if len(k) < 1 || k[:1] != prefix {
				continue
			}
			if e.deleted {
				delete(merged, k[1:])
			} else {
				merged[k[1:]] = e.value
			}
		}
	}
	apply(o.committed)
	if o.inCheckpoint {
		apply(o.pending)
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !fn(k, merged[k]) {
			return
		}
	}
}

// checkpoint handling

func (o *overlayStore) begin() error {
	if o.inCheckpoint {
		return fault.ErrTransactionAlreadyInUse
	}
	o.pending = map[string]overlayEntry{}
	o.inCheckpoint = true
	return nil
}

func (o *overlayStore) commit() {
	for k, e := range o.pending {
		o.committed[k] = e
	}
	o.pending = nil
	o.inCheckpoint = false
}

func (o *overlayStore) abort() {
	o.pending = nil
	o.inCheckpoint = false
}

func (o *overlayStore) discard() {
	o.committed = map[string]overlayEntry{}
	o.pending = nil
	o.inCheckpoint = false
}

// CheckFunc - post-command validation callback
//
// invoked after each command has been applied, with the query
// interface positioned on the post-command state
type CheckFunc func(cmd wsvrecord.Command, creator string, query Query) bool

// Temporary - speculative world state for trial-applying a proposal
//
// exposes the full command and query surface of the WSV through the
// embedded state; everything written here is discarded at the end of
// validation, there is no commit path to the persistent state
type Temporary struct {
	*WSV
	store *overlayStore
}

// NewTemporary - overlay a disposable world state onto a base store
func NewTemporary(base Store) *Temporary {
	store := newOverlayStore(base)
	return &Temporary{
		WSV:   New(store),
		store: store,
	}
}

// Apply - trial-apply one transaction under a checkpoint
//
// commands are applied in order through this state; after each one
// the check callback runs against the post-command state; any
// command failure or check rejection reverts the whole transaction
// so no partial effect is ever visible to later transactions, while
// an accepted transaction stays visible for the rest of the batch
//
// a storage level failure aborts the checkpoint and is returned as
// an error, distinct from a rejection
func (t *Temporary) Apply(tx *wsvrecord.Transaction, check CheckFunc) (bool, error) {

	if err := t.store.begin(); nil != err {
		return false, err
	}

	for _, cmd := range tx.Commands {
		if err := t.Execute(cmd, tx.Creator); nil != err {
			t.store.abort()
			if fault.IsErrUnavailable(err) {
				return false, err
			}
			return false, nil
		}
		if !check(cmd, tx.Creator, t.WSV) {
			t.store.abort()
			return false, nil
		}
	}

	t.store.commit()
	return true, nil
}

// Discard - drop everything written into this temporary state
func (t *Temporary) Discard() {
	t.store.discard()
}
