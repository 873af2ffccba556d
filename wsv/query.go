// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsv

import (
	"encoding/binary"
	"encoding/json"
	"sort"

	"github.com/robinrowe/iroha/wsvrecord"
)

// GetRoles - all role names in insertion order
func (w *WSV) GetRoles() []string {

	type roleSeq struct {
		name string
		seq  uint64
	}

	roles := []roleSeq{}
	w.store.Range(PoolRoles, func(key string, value []byte) bool {
		seq := uint64(0)
		if len(value) >= 8 {
			seq = binary.BigEndian.Uint64(value[:8])
		}
		roles = append(roles, roleSeq{name: key, seq: seq})
		return true
	})

	sort.Slice(roles, func(i, j int) bool {
		return roles[i].seq < roles[j].seq
	})

	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.name)
	}
	return names
}

// GetRolePermissions - permissions attached to a role
//
// a role with no permissions and a role that was never inserted both
// yield an empty sequence, consistent with the other "no
// associations" queries
func (w *WSV) GetRolePermissions(role string) []string {
	return w.stringList(PoolRolePermissions, role)
}

// GetDomain - absent when not found
func (w *WSV) GetDomain(domainId string) (*wsvrecord.Domain, bool) {
	buffer, found := w.store.Get(PoolDomains, domainId)
	if !found {
		return nil, false
	}
	domain, err := wsvrecord.UnpackDomain(buffer)
	if nil != err {
		return nil, false
	}
	return domain, true
}

// GetAccount - absent when not found
func (w *WSV) GetAccount(accountId string) (*wsvrecord.Account, bool) {
	buffer, found := w.store.Get(PoolAccounts, accountId)
	if !found {
		return nil, false
	}
	account, err := wsvrecord.UnpackAccount(buffer)
	if nil != err {
		return nil, false
	}
	return account, true
}

// GetAccountDetail - canonical JSON serialization of an account's
// jsonData, absent when the account is not found
func (w *WSV) GetAccountDetail(accountId string) (string, bool) {
	account, found := w.GetAccount(accountId)
	if !found {
		return "", false
	}

	data := account.JsonData
	if nil == data {
		data = map[string]map[string]string{}
	}
	packed, err := json.Marshal(data)
	if nil != err {
		return "", false
	}
	return string(packed), true
}

// GetAccountRoles - role names attached to an account, empty when
// none or when the account is absent
func (w *WSV) GetAccountRoles(accountId string) []string {
	return w.stringList(PoolAccountRoles, accountId)
}

// HasAccountGrantablePermission - false in all absence and failure
// cases, never a hard error
func (w *WSV) HasAccountGrantablePermission(grantee string, grantor string, permission string) bool {
	return w.store.Has(PoolGrants, grantKey(grantee, grantor, permission))
}

// GetAsset - absent when not found
func (w *WSV) GetAsset(assetId string) (*wsvrecord.Asset, bool) {
	buffer, found := w.store.Get(PoolAssets, assetId)
	if !found {
		return nil, false
	}
	asset, err := wsvrecord.UnpackAsset(buffer)
	if nil != err {
		return nil, false
	}
	return asset, true
}

// GetPeers - all peers in address order
func (w *WSV) GetPeers() []*wsvrecord.Peer {
	peers := []*wsvrecord.Peer{}
	w.store.Range(PoolPeers, func(key string, value []byte) bool {
		peer, err := wsvrecord.UnpackPeer(value)
		if nil == err {
			peers = append(peers, peer)
		}
		return true
	})
	return peers
}

// GetAccountAsset - balance of one asset on one account
func (w *WSV) GetAccountAsset(accountId string, assetId string) (uint64, bool) {
	buffer, found := w.store.Get(PoolBalances, balanceKey(accountId, assetId))
	if !found || len(buffer) < 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}
