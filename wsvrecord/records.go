// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsvrecord

import (
	"encoding/json"
)

// MaxRoleNameLength - longest acceptable role name
const MaxRoleNameLength = 45

// AccountID - compose an account identifier
func AccountID(name string, domainId string) string {
	return name + "@" + domainId
}

// AssetID - compose an asset identifier
func AssetID(name string, domainId string) string {
	return name + "#" + domainId
}

// Domain - a namespace for accounts and assets
type Domain struct {
	DomainId    string `json:"domainId"`
	DefaultRole string `json:"defaultRole"`
}

// Account - an account record
//
// JsonData maps a grantor account id to the key/value details that
// grantor wrote; values are stored verbatim as strings
type Account struct {
	AccountId string                       `json:"accountId"`
	DomainId  string                       `json:"domainId"`
	Quorum    uint32                       `json:"quorum"`
	JsonData  map[string]map[string]string `json:"jsonData"`
}

// Peer - a node in the peer network
type Peer struct {
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"`
}

// Asset - an asset definition
type Asset struct {
	AssetId   string `json:"assetId"`
	DomainId  string `json:"domainId"`
	Precision uint32 `json:"precision"`
}

// Pack - canonical JSON encoding of a domain record
func (d *Domain) Pack() ([]byte, error) { return json.Marshal(d) }

// Pack - canonical JSON encoding of an account record
func (a *Account) Pack() ([]byte, error) { return json.Marshal(a) }

// Pack - canonical JSON encoding of a peer record
func (p *Peer) Pack() ([]byte, error) { return json.Marshal(p) }

// Pack - canonical JSON encoding of an asset record
func (a *Asset) Pack() ([]byte, error) { return json.Marshal(a) }

// UnpackDomain - decode a packed domain record
func UnpackDomain(data []byte) (*Domain, error) {
	d := &Domain{}
	if err := json.Unmarshal(data, d); nil != err {
		return nil, err
	}
	return d, nil
}

// UnpackAccount - decode a packed account record
func UnpackAccount(data []byte) (*Account, error) {
	a := &Account{}
	if err := json.Unmarshal(data, a); nil != err {
		return nil, err
	}
	return a, nil
}

// UnpackPeer - decode a packed peer record
func UnpackPeer(data []byte) (*Peer, error) {
	p := &Peer{}
	if err := json.Unmarshal(data, p); nil != err {
		return nil, err
	}
	return p, nil
}

// UnpackAsset - decode a packed asset record
func UnpackAsset(data []byte) (*Asset, error) {
	a := &Asset{}
	if err := json.Unmarshal(data, a); nil != err {
		return nil, err
	}
	return a, nil
}
