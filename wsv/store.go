// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsv

// Pool - selects one world state table
type Pool byte

// world state tables
const (
	PoolRoles           Pool = 'R'
	PoolRolePermissions Pool = 'P'
	PoolDomains         Pool = 'D'
	PoolAccounts        Pool = 'A'
	PoolAccountRoles    Pool = 'L'
	PoolGrants          Pool = 'G'
	PoolPeers           Pool = 'E'
	PoolAssets          Pool = 'S'
	PoolBalances        Pool = 'B'
	PoolCounters        Pool = 'N'
)

// Store - key/value access to the world state tables
//
// Get returns nil,false for an absent key; implementations must
// degrade to absence rather than fail when the backing database is
// unusable
type Store interface {
	Available() bool
	Get(pool Pool, key string) ([]byte, bool)
	Has(pool Pool, key string) bool
	Put(pool Pool, key string, value []byte) error
	Delete(pool Pool, key string) error
	Range(pool Pool, fn func(key string, value []byte) bool)
}

// composite keys use a NUL separator since identifiers are
// printable strings
const keySeparator = "\x00"

func grantKey(grantee string, grantor string, permission string) string {
	return grantee + keySeparator + grantor + keySeparator + permission
}

func balanceKey(accountId string, assetId string) string {
	return accountId + keySeparator + assetId
}

// counter names in the counters pool
const roleCounter = "roles"
