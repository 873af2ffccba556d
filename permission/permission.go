// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package permission

import (
	"github.com/robinrowe/iroha/wsv"
	"github.com/robinrowe/iroha/wsvrecord"
)

// role permission names
const (
	CanCreateRole       = "can_create_role"
	CanCreateDomain     = "can_create_domain"
	CanCreateAccount    = "can_create_account"
	CanCreateAsset      = "can_create_asset"
	CanAppendRole       = "can_append_role"
	CanDetachRole       = "can_detach_role"
	CanGrantPermission  = "can_grant_permission"
	CanRevokePermission = "can_revoke_permission"
	CanSetDetail        = "can_set_detail"
	CanSetQuorum        = "can_set_quorum"
	CanAddPeer          = "can_add_peer"
	CanRemovePeer       = "can_remove_peer"
	CanAddAssetQty      = "can_add_asset_qty"
	CanSubtractAssetQty = "can_subtract_asset_qty"
)

// grantable permission names
//
// these are handed out by the owner of an account to another account
// through grantPermission, and checked against the grants table
// rather than the creator's roles
const (
	CanSetMyAccountDetail = "can_set_my_account_detail"
	CanSetMyQuorum        = "can_set_my_quorum"
)

// required role permission by command kind
var required = map[string]string{
	wsvrecord.CreateRoleTag:            CanCreateRole,
	wsvrecord.CreateDomainTag:          CanCreateDomain,
	wsvrecord.CreateAccountTag:         CanCreateAccount,
	wsvrecord.CreateAssetTag:           CanCreateAsset,
	wsvrecord.AppendRoleTag:            CanAppendRole,
	wsvrecord.DetachRoleTag:            CanDetachRole,
	wsvrecord.GrantPermissionTag:       CanGrantPermission,
	wsvrecord.RevokePermissionTag:      CanRevokePermission,
	wsvrecord.SetAccountDetailTag:      CanSetDetail,
	wsvrecord.SetAccountQuorumTag:      CanSetQuorum,
	wsvrecord.AddPeerTag:               CanAddPeer,
	wsvrecord.RemovePeerTag:            CanRemovePeer,
	wsvrecord.AddAssetQuantityTag:      CanAddAssetQty,
	wsvrecord.SubtractAssetQuantityTag: CanSubtractAssetQty,
}

// Model - authorization decisions over a world state query interface
type Model struct{}

// NewModel - create the authorization model
func NewModel() *Model {
	return &Model{}
}

// Validate - is the creator allowed to run this command
//
// never returns an error: an unknown command kind or any failure to
// resolve the creator's roles is simply unauthorized
func (m *Model) Validate(cmd wsvrecord.Command, creator string, query wsv.Query) bool {

	if "" == creator {
		return true
	}

	// target-owner overrides
	switch c := cmd.(type) {

	case *wsvrecord.SetAccountDetail:
		if creator == c.AccountId {
			return true
		}
		if query.HasAccountGrantablePermission(creator, c.AccountId, CanSetMyAccountDetail) {
			return true
		}

	case *wsvrecord.SetAccountQuorum:
		if creator == c.AccountId {
			return true
		}
		if query.HasAccountGrantablePermission(creator, c.AccountId, CanSetMyQuorum) {
			return true
		}
	}

	permission, known := required[cmd.CommandName()]
	if !known {
		return false
	}

	for _, role := range m.effectiveRoles(creator, query) {
		for _, p := range query.GetRolePermissions(role) {
			if p == permission {
				return true
			}
		}
	}
	return false
}

// the creator's explicit roles plus its domain's default role
func (m *Model) effectiveRoles(creator string, query wsv.Query) []string {

	roles := query.GetAccountRoles(creator)

	account, found := query.GetAccount(creator)
	if !found {
		return roles
	}
	domain, found := query.GetDomain(account.DomainId)
	if !found || "" == domain.DefaultRole {
		return roles
	}
	for _, r := range roles {
		if r == domain.DefaultRole {
			return roles
		}
	}
	return append(roles, domain.DefaultRole)
}
