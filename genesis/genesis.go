// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package genesis

import (
	"encoding/json"
	"os"

	"github.com/robinrowe/iroha/fault"
	"github.com/robinrowe/iroha/wsvrecord"
)

// on-disk layout of the genesis block file
type blockFile struct {
	Transactions []*wsvrecord.Transaction `json:"transactions"`
}

// LoadBlock - read the genesis block file into a proposal
//
// transaction order in the file is preserved; a syntactically broken
// file or an unknown command is an InvalidError
func LoadBlock(path string) (*wsvrecord.Proposal, error) {

	data, err := os.ReadFile(path)
	if nil != err {
		return nil, err
	}

	block := blockFile{}
	if err := json.Unmarshal(data, &block); nil != err {
		return nil, fault.ErrInvalidGenesisBlock
	}
	if 0 == len(block.Transactions) {
		return nil, fault.ErrInvalidGenesisBlock
	}

	return &wsvrecord.Proposal{
		Transactions: block.Transactions,
	}, nil
}

// ParseTrustedPeers - read the trusted peers file
//
// the file is a JSON array of peer records; bootstrap cannot proceed
// without at least one trusted peer
func ParseTrustedPeers(path string) ([]wsvrecord.Peer, error) {

	data, err := os.ReadFile(path)
	if nil != err {
		return nil, err
	}

	peers := []wsvrecord.Peer{}
	if err := json.Unmarshal(data, &peers); nil != err {
		return nil, err
	}
	if 0 == len(peers) {
		return nil, fault.ErrNoTrustedPeers
	}
	for _, p := range peers {
		if "" == p.Address {
			return nil, fault.ErrNoTrustedPeers
		}
	}
	return peers, nil
}
