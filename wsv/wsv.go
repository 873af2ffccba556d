// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsv

import (
	"github.com/robinrowe/iroha/wsvrecord"
)

// WSV - command and query surface over one store
type WSV struct {
	store Store
}

// New - wrap a store with the world state interfaces
func New(store Store) *WSV {
	return &WSV{
		store: store,
	}
}

// Query - the read-only interface of the world state
type Query interface {
	GetRoles() []string
	GetRolePermissions(role string) []string
	GetDomain(domainId string) (*wsvrecord.Domain, bool)
	GetAccount(accountId string) (*wsvrecord.Account, bool)
	GetAccountDetail(accountId string) (string, bool)
	GetAccountRoles(accountId string) []string
	HasAccountGrantablePermission(grantee string, grantor string, permission string) bool
	GetAsset(assetId string) (*wsvrecord.Asset, bool)
	GetPeers() []*wsvrecord.Peer
	GetAccountAsset(accountId string, assetId string) (uint64, bool)
}

// Command - the mutating interface of the world state
type Command interface {
	InsertRole(name string) error
	InsertRolePermissions(role string, permissions []string) error
	InsertDomain(domain *wsvrecord.Domain) error
	InsertAccount(account *wsvrecord.Account) error
	SetAccountKV(targetAccount string, grantorAccount string, key string, value string) error
	UpdateAccountQuorum(accountId string, quorum uint32) error
	InsertAccountRole(accountId string, role string) error
	DeleteAccountRole(accountId string, role string) error
	InsertAccountGrantablePermission(grantee string, grantor string, permission string) error
	DeleteAccountGrantablePermission(grantee string, grantor string, permission string) error
	InsertPeer(peer *wsvrecord.Peer) error
	DeletePeer(address string) error
	InsertAsset(asset *wsvrecord.Asset) error
	AddAccountAsset(accountId string, assetId string, amount uint64) error
	SubtractAccountAsset(accountId string, assetId string, amount uint64) error
}

// both interfaces are served by the same type
var _ Query = (*WSV)(nil)
var _ Command = (*WSV)(nil)
