// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsvrecord

// command envelope tags
// these are encoded in the "command" field of a packed command
const (
	CreateRoleTag            = "createRole"
	CreateDomainTag          = "createDomain"
	CreateAccountTag         = "createAccount"
	CreateAssetTag           = "createAsset"
	AppendRoleTag            = "appendRole"
	DetachRoleTag            = "detachRole"
	GrantPermissionTag       = "grantPermission"
	RevokePermissionTag      = "revokePermission"
	SetAccountDetailTag      = "setAccountDetail"
	SetAccountQuorumTag      = "setAccountQuorum"
	AddPeerTag               = "addPeer"
	RemovePeerTag            = "removePeer"
	AddAssetQuantityTag      = "addAssetQuantity"
	SubtractAssetQuantityTag = "subtractAssetQuantity"
)

// Command - a single state mutating operation inside a transaction
type Command interface {
	CommandName() string
}

// CreateRole - register a new role with its permissions
type CreateRole struct {
	RoleName    string   `json:"roleName"`
	Permissions []string `json:"permissions"`
}

// CreateDomain - register a new domain with its default role
type CreateDomain struct {
	DomainId    string `json:"domainId"`
	DefaultRole string `json:"defaultRole"`
}

// CreateAccount - register account name@domainId
type CreateAccount struct {
	AccountName string `json:"accountName"`
	DomainId    string `json:"domainId"`
	Quorum      uint32 `json:"quorum"`
}

// CreateAsset - register asset assetName#domainId
type CreateAsset struct {
	AssetName string `json:"assetName"`
	DomainId  string `json:"domainId"`
	Precision uint32 `json:"precision"`
}

// AppendRole - attach a role to an account
type AppendRole struct {
	AccountId string `json:"accountId"`
	RoleName  string `json:"roleName"`
}

// DetachRole - remove a role from an account
type DetachRole struct {
	AccountId string `json:"accountId"`
	RoleName  string `json:"roleName"`
}

// GrantPermission - the transaction creator grants AccountId a
// permission over the creator's own account
type GrantPermission struct {
	AccountId  string `json:"accountId"`
	Permission string `json:"permission"`
}

// RevokePermission - withdraw a previously granted permission
type RevokePermission struct {
	AccountId  string `json:"accountId"`
	Permission string `json:"permission"`
}

// SetAccountDetail - write one key/value under the creator's grantor
// namespace on the target account
type SetAccountDetail struct {
	AccountId string `json:"accountId"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

// SetAccountQuorum - change the signature quorum of an account
type SetAccountQuorum struct {
	AccountId string `json:"accountId"`
	Quorum    uint32 `json:"quorum"`
}

// AddPeer - announce a peer to the network
type AddPeer struct {
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"`
}

// RemovePeer - withdraw a peer from the network
type RemovePeer struct {
	Address string `json:"address"`
}

// AddAssetQuantity - credit an account balance
type AddAssetQuantity struct {
	AccountId string `json:"accountId"`
	AssetId   string `json:"assetId"`
	Amount    uint64 `json:"amount"`
}

// SubtractAssetQuantity - debit an account balance
type SubtractAssetQuantity struct {
	AccountId string `json:"accountId"`
	AssetId   string `json:"assetId"`
	Amount    uint64 `json:"amount"`
}

func (c *CreateRole) CommandName() string            { return CreateRoleTag }
func (c *CreateDomain) CommandName() string          { return CreateDomainTag }
func (c *CreateAccount) CommandName() string         { return CreateAccountTag }
func (c *CreateAsset) CommandName() string           { return CreateAssetTag }
func (c *AppendRole) CommandName() string            { return AppendRoleTag }
func (c *DetachRole) CommandName() string            { return DetachRoleTag }
func (c *GrantPermission) CommandName() string       { return GrantPermissionTag }
func (c *RevokePermission) CommandName() string      { return RevokePermissionTag }
func (c *SetAccountDetail) CommandName() string      { return SetAccountDetailTag }
func (c *SetAccountQuorum) CommandName() string      { return SetAccountQuorumTag }
func (c *AddPeer) CommandName() string               { return AddPeerTag }
func (c *RemovePeer) CommandName() string            { return RemovePeerTag }
func (c *AddAssetQuantity) CommandName() string      { return AddAssetQuantityTag }
func (c *SubtractAssetQuantity) CommandName() string { return SubtractAssetQuantityTag }
