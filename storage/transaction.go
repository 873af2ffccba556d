// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
)

// Transaction - batched writes over the storage pools
type Transaction interface {
	Begin() error
	Abort()
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

type transactionData struct {
	sync.Mutex
	dataAccess DataAccess
}

func newTransaction(access DataAccess) Transaction {
	return &transactionData{
		dataAccess: access,
	}
}

func (t *transactionData) Begin() error {
	return t.dataAccess.Begin()
}

func (t *transactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

func (t *transactionData) PutN(handle *PoolHandle, key []byte, value uint64) {
	handle.putN(key, value)
}

func (t *transactionData) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

func (t *transactionData) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (t *transactionData) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

func (t *transactionData) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

func (t *transactionData) Commit() error {
	t.Lock()
	defer t.Unlock()
	return t.dataAccess.Commit()
}

func (t *transactionData) Abort() {
	t.Lock()
	defer t.Unlock()
	t.dataAccess.Abort()
}

func (t *transactionData) InUse() bool {
	return t.dataAccess.InUse()
}
