// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsv

import (
	"github.com/robinrowe/iroha/fault"
	"github.com/robinrowe/iroha/wsvrecord"
)

// Execute - apply one command from the given creator to this state
//
// maps a transaction command onto the command interface; the creator
// supplies the grantor namespace for detail writes and the grantor
// account for permission grants
func (w *WSV) Execute(cmd wsvrecord.Command, creator string) error {

	switch c := cmd.(type) {

	case *wsvrecord.CreateRole:
		if err := w.InsertRole(c.RoleName); nil != err {
			return err
		}
		return w.InsertRolePermissions(c.RoleName, c.Permissions)

	case *wsvrecord.CreateDomain:
		return w.InsertDomain(&wsvrecord.Domain{
			DomainId:    c.DomainId,
			DefaultRole: c.DefaultRole,
		})

	case *wsvrecord.CreateAccount:
		quorum := c.Quorum
		if 0 == quorum {
			quorum = 1
		}
		return w.InsertAccount(&wsvrecord.Account{
			AccountId: wsvrecord.AccountID(c.AccountName, c.DomainId),
			DomainId:  c.DomainId,
			Quorum:    quorum,
			JsonData:  map[string]map[string]string{},
		})

	case *wsvrecord.CreateAsset:
		return w.InsertAsset(&wsvrecord.Asset{
			AssetId:   wsvrecord.AssetID(c.AssetName, c.DomainId),
			DomainId:  c.DomainId,
			Precision: c.Precision,
		})

	case *wsvrecord.AppendRole:
		return w.InsertAccountRole(c.AccountId, c.RoleName)

	case *wsvrecord.DetachRole:
		return w.DeleteAccountRole(c.AccountId, c.RoleName)

	case *wsvrecord.GrantPermission:
		return w.InsertAccountGrantablePermission(c.AccountId, creator, c.Permission)

	case *wsvrecord.RevokePermission:
		return w.DeleteAccountGrantablePermission(c.AccountId, creator, c.Permission)

	case *wsvrecord.SetAccountDetail:
		return w.SetAccountKV(c.AccountId, creator, c.Key, c.Value)

	case *wsvrecord.SetAccountQuorum:
		return w.UpdateAccountQuorum(c.AccountId, c.Quorum)

	case *wsvrecord.AddPeer:
		return w.InsertPeer(&wsvrecord.Peer{
			Address:   c.Address,
			PublicKey: c.PublicKey,
		})

	case *wsvrecord.RemovePeer:
		return w.DeletePeer(c.Address)

	case *wsvrecord.AddAssetQuantity:
		return w.AddAccountAsset(c.AccountId, c.AssetId, c.Amount)

	case *wsvrecord.SubtractAssetQuantity:
		return w.SubtractAccountAsset(c.AccountId, c.AssetId, c.Amount)

	default:
		return fault.ErrUnknownCommand
	}
}
