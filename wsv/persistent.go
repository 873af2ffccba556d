// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsv

import (
	"github.com/robinrowe/iroha/fault"
	"github.com/robinrowe/iroha/storage"
)

// Persistent - Store backed by the storage pools
//
// reads go straight to the pools; writes require a storage
// transaction so that applying a proposal to disk is atomic, the
// read-through transaction cache keeps uncommitted writes visible
//
// a Persistent without a transaction is a read-only view, suitable
// as the base of a temporary overlay
type Persistent struct {
	trx storage.Transaction
}

// NewPersistentStore - read-only view over the storage pools
func NewPersistentStore() *Persistent {
	return &Persistent{}
}

// NewPersistentTransactionStore - writable view inside one storage
// transaction; the caller owns commit and abort
func NewPersistentTransactionStore(trx storage.Transaction) *Persistent {
	return &Persistent{
		trx: trx,
	}
}

// Available - degrade all access when the database is closed
func (p *Persistent) Available() bool {
	return storage.IsInitialised()
}

func (p *Persistent) handle(pool Pool) *storage.PoolHandle {
	switch pool {
	case PoolRoles:
		return storage.Pool.Roles
	case PoolRolePermissions:
		return storage.Pool.RolePermissions
	case PoolDomains:
		return storage.Pool.Domains
	case PoolAccounts:
		return storage.Pool.Accounts
	case PoolAccountRoles:
		return storage.Pool.AccountRoles
	case PoolGrants:
		return storage.Pool.Grants
	case PoolPeers:
		return storage.Pool.Peers
	case PoolAssets:
		return storage.Pool.Assets
	case PoolBalances:
		return storage.Pool.Balances
	case PoolCounters:
		return storage.Pool.Counters
	default:
		return nil
	}
}

func (p *Persistent) Get(pool Pool, key string) ([]byte, bool) {
	value := p.handle(pool).Get([]byte(key))
	if nil == value {
		return nil, false
	}
	return value, true
}

func (p *Persistent) Has(pool Pool, key string) bool {
	return p.handle(pool).Has([]byte(key))
}

func (p *Persistent) Put(pool Pool, key string, value []byte) error {
	if nil == p.trx || !storage.IsInitialised() {
		return fault.ErrStorageUnavailable
	}
	p.trx.Put(p.handle(pool), []byte(key), value)
	return nil
}

func (p *Persistent) Delete(pool Pool, key string) error {
	if nil == p.trx || !storage.IsInitialised() {
		return fault.ErrStorageUnavailable
	}
	p.trx.Delete(p.handle(pool), []byte(key))
	return nil
}

// Range - committed records only, pending batch writes are not seen
func (p *Persistent) Range(pool Pool, fn func(key string, value []byte) bool) {
	p.handle(pool).Range(func(key []byte, value []byte) bool {
		return fn(string(key), value)
	})
}
