// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsv

import (
	"encoding/binary"
	"encoding/json"

	"github.com/robinrowe/iroha/fault"
	"github.com/robinrowe/iroha/wsvrecord"
)

// InsertRole - register a new role name
//
// role names are immutable once created and keep their insertion
// order via a sequence number stored as the record value
func (w *WSV) InsertRole(name string) error {
	if !w.store.Available() {
		return fault.ErrStorageUnavailable
	}
	if "" == name || len(name) > wsvrecord.MaxRoleNameLength {
		return fault.ErrInvalidRoleName
	}
	if w.store.Has(PoolRoles, name) {
		return fault.ErrRoleAlreadyExists
	}

	seq := w.counter(roleCounter)

	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, seq)
	if err := w.store.Put(PoolRoles, name, buffer); nil != err {
		return err
	}
	return w.putCounter(roleCounter, seq+1)
}

// InsertRolePermissions - set union of permissions onto an existing role
func (w *WSV) InsertRolePermissions(role string, permissions []string) error {
	if !w.store.Available() {
		return fault.ErrStorageUnavailable
	}
	if !w.store.Has(PoolRoles, role) {
		return fault.ErrRoleNotFound
	}

	current := w.stringList(PoolRolePermissions, role)
loop:
	for _, p := range permissions {
		for _, c := range current {
			if c == p {
				continue loop
			}
		}
		current = append(current, p)
	}
	return w.putStringList(PoolRolePermissions, role, current)
}

// InsertDomain - register a new domain
//
// the default role must already exist
func (w *WSV) InsertDomain(domain *wsvrecord.Domain) error {
	if !w.store.Available() {
		return fault.ErrStorageUnavailable
	}
	if !w.store.Has(PoolRoles, domain.DefaultRole) {
		return fault.ErrRoleNotFound
	}
	if w.store.Has(PoolDomains, domain.DomainId) {
		return fault.ErrDomainAlreadyExists
	}

	packed, err := domain.Pack()
	if nil != err {
		return err
	}
	return w.store.Put(PoolDomains, domain.DomainId, packed)
}

// InsertAccount - register a new account
//
// the account's domain must already exist; jsonData is stored
// verbatim
func (w *WSV) InsertAccount(account *wsvrecord.Account) error {
	if !w.store.Available() {
		return fault.ErrStorageUnavailable
	}
	if !w.store.Has(PoolDomains, account.DomainId) {
		return fault.ErrDomainNotFound
	}
	if w.store.Has(PoolAccounts, account.AccountId) {
		return fault.ErrAccountAlreadyExists
	}
	if account.Quorum < 1 {
		return fault.ErrInvalidQuorum
	}

	packed, err := account.Pack()
	if nil != err {
		return err
	}
	return w.store.Put(PoolAccounts, account.AccountId, packed)
}

// SetAccountKV - upsert one key/value under a grantor namespace
//
// all other keys and namespaces are preserved; the grantor is a
// namespacing key only, it is not checked as a foreign key; the
// value is stored as a literal string with no type coercion
func (w *WSV) SetAccountKV(targetAccount string, grantorAccount string, key string, value string) error {
	if !w.store.Available() {
		return fault.ErrStorageUnavailable
	}

	account, found := w.GetAccount(targetAccount)
	if !found {
		return fault.ErrAccountNotFound
	}

	if nil == account.JsonData {
		account.JsonData = map[string]map[string]string{}
	}
	if nil == account.JsonData[grantorAccount] {
		account.JsonData[grantorAccount] = map[string]string{}
	}
	account.JsonData[grantorAccount][key] = value

	packed, err := account.Pack()
	if nil != err {
		return err
	}
	return w.store.Put(PoolAccounts, targetAccount, packed)
}

// UpdateAccountQuorum - change the signature quorum of an account
func (w *WSV) UpdateAccountQuorum(accountId string, quorum uint32) error {
	if !w.store.Available() {
		return fault.ErrStorageUnavailable
	}
	if quorum < 1 {
		return fault.ErrInvalidQuorum
	}

	account, found := w.GetAccount(accountId)
	if !found {
		return fault.ErrAccountNotFound
	}

	account.Quorum = quorum
	packed, err := account.Pack()
	if nil != err {
		return err
	}
	return w.store.Put(PoolAccounts, accountId, packed)
}

// InsertAccountRole - attach an existing role to an existing account
//
// attaching an already attached role is a no-op success
func (w *WSV) InsertAccountRole(accountId string, role string) error {
	if !w.store.Available() {
		return fault.ErrStorageUnavailable
	}
	if !w.store.Has(PoolAccounts, accountId) {
		return fault.ErrAccountNotFound
	}
	if !w.store.Has(PoolRoles, role) {
		return fault.ErrRoleNotFound
	}

	current := w.stringList(PoolAccountRoles, accountId)
	for _, r := range current {
		if r == role {
			return nil
		}
	}
	current = append(current, role)
	return w.putStringList(PoolAccountRoles, accountId, current)
}

// DeleteAccountRole - detach a role from an account
//
// deleting an absent pair is a no-op success
func (w *WSV) DeleteAccountRole(accountId string, role string) error {
	if !w.store.Available() {
		return fault.ErrStorageUnavailable
	}

	current := w.stringList(PoolAccountRoles, accountId)
	for i, r := range current {
		if r == role {
			current = append(current[:i], current[i+1:]...)
			return w.putStringList(PoolAccountRoles, accountId, current)
		}
	}
	return nil
}

// InsertAccountGrantablePermission - record that the grantor allowed
// the grantee a permission over the grantor's account
//
// presence is a boolean fact, repeated inserts are not counted
func (w *WSV) InsertAccountGrantablePermission(grantee string, grantor string, permission string) error {
	if !w.store.Available() {
		return fault.ErrStorageUnavailable
	}
	if !w.store.Has(PoolAccounts, grantee) {
		return fault.ErrAccountNotFound
	}
	if !w.store.Has(PoolAccounts, grantor) {
		return fault.ErrAccountNotFound
	}
	return w.store.Put(PoolGrants, grantKey(grantee, grantor, permission), []byte{})
}

// DeleteAccountGrantablePermission - withdraw a grant, never fails
func (w *WSV) DeleteAccountGrantablePermission(grantee string, grantor string, permission string) error {
	if !w.store.Available() {
		return fault.ErrStorageUnavailable
	}
	return w.store.Delete(PoolGrants, grantKey(grantee, grantor, permission))
}

// InsertPeer - presence-keyed by address, reinsert overwrites
func (w *WSV) InsertPeer(peer *wsvrecord.Peer) error {
	if !w.store.Available() {
		return fault.ErrStorageUnavailable
	}
	packed, err := peer.Pack()
	if nil != err {
		return err
	}
	return w.store.Put(PoolPeers, peer.Address, packed)
}

// DeletePeer - delete of an absent peer succeeds
func (w *WSV) DeletePeer(address string) error {
	if !w.store.Available() {
		return fault.ErrStorageUnavailable
	}
	return w.store.Delete(PoolPeers, address)
}

// InsertAsset - register a new asset
//
// the asset's domain must already exist
func (w *WSV) InsertAsset(asset *wsvrecord.Asset) error {
	if !w.store.Available() {
		return fault.ErrStorageUnavailable
	}
	if !w.store.Has(PoolDomains, asset.DomainId) {
		return fault.ErrDomainNotFound
	}
	if w.store.Has(PoolAssets, asset.AssetId) {
		return fault.ErrAssetAlreadyExists
	}

	packed, err := asset.Pack()
	if nil != err {
		return err
	}
	return w.store.Put(PoolAssets, asset.AssetId, packed)
}

// AddAccountAsset - credit an account balance
func (w *WSV) AddAccountAsset(accountId string, assetId string, amount uint64) error {
	if !w.store.Available() {
		return fault.ErrStorageUnavailable
	}
	if !w.store.Has(PoolAssets, assetId) {
		return fault.ErrAssetNotFound
	}
	if !w.store.Has(PoolAccounts, accountId) {
		return fault.ErrAccountNotFound
	}

	balance, _ := w.GetAccountAsset(accountId, assetId)
	return w.putBalance(accountId, assetId, balance+amount)
}

// SubtractAccountAsset - debit an account balance
func (w *WSV) SubtractAccountAsset(accountId string, assetId string, amount uint64) error {
	if !w.store.Available() {
		return fault.ErrStorageUnavailable
	}
	if !w.store.Has(PoolAssets, assetId) {
		return fault.ErrAssetNotFound
	}
	if !w.store.Has(PoolAccounts, accountId) {
		return fault.ErrAccountNotFound
	}

	balance, _ := w.GetAccountAsset(accountId, assetId)
	if balance < amount {
		return fault.ErrInsufficientBalance
	}
	return w.putBalance(accountId, assetId, balance-amount)
}

// internal helpers

func (w *WSV) counter(name string) uint64 {
	buffer, found := w.store.Get(PoolCounters, name)
	if !found || len(buffer) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(buffer[:8])
}

func (w *WSV) putCounter(name string, value uint64) error {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	return w.store.Put(PoolCounters, name, buffer)
}

func (w *WSV) putBalance(accountId string, assetId string, balance uint64) error {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, balance)
	return w.store.Put(PoolBalances, balanceKey(accountId, assetId), buffer)
}

// read a JSON string array record, absent decodes as empty
func (w *WSV) stringList(pool Pool, key string) []string {
	buffer, found := w.store.Get(pool, key)
	if !found {
		return []string{}
	}
	list := []string{}
	if err := json.Unmarshal(buffer, &list); nil != err {
		return []string{}
	}
	return list
}

func (w *WSV) putStringList(pool Pool, key string, list []string) error {
	packed, err := json.Marshal(list)
	if nil != err {
		return err
	}
	return w.store.Put(pool, key, packed)
}
