// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsvrecord

import (
	"encoding/json"

	"github.com/robinrowe/iroha/fault"
)

// commandEnvelope - tagged wrapper so commands survive JSON decode
type commandEnvelope struct {
	Command string          `json:"command"`
	Payload json.RawMessage `json:"payload"`
}

// PackCommand - wrap a command into its tagged envelope
func PackCommand(cmd Command) ([]byte, error) {
	payload, err := json.Marshal(cmd)
	if nil != err {
		return nil, err
	}
	return json.Marshal(commandEnvelope{
		Command: cmd.CommandName(),
		Payload: payload,
	})
}

// UnpackCommand - decode a tagged command envelope
func UnpackCommand(data []byte) (Command, error) {
	envelope := commandEnvelope{}
	if err := json.Unmarshal(data, &envelope); nil != err {
		return nil, err
	}

	var cmd Command
	switch envelope.Command {
	case CreateRoleTag:
		cmd = &CreateRole{}
	case CreateDomainTag:
		cmd = &CreateDomain{}
	case CreateAccountTag:
		cmd = &CreateAccount{}
	case CreateAssetTag:
		cmd = &CreateAsset{}
	case AppendRoleTag:
		cmd = &AppendRole{}
	case DetachRoleTag:
		cmd = &DetachRole{}
	case GrantPermissionTag:
		cmd = &GrantPermission{}
	case RevokePermissionTag:
		cmd = &RevokePermission{}
	case SetAccountDetailTag:
		cmd = &SetAccountDetail{}
	case SetAccountQuorumTag:
		cmd = &SetAccountQuorum{}
	case AddPeerTag:
		cmd = &AddPeer{}
	case RemovePeerTag:
		cmd = &RemovePeer{}
	case AddAssetQuantityTag:
		cmd = &AddAssetQuantity{}
	case SubtractAssetQuantityTag:
		cmd = &SubtractAssetQuantity{}
	default:
		return nil, fault.ErrUnknownCommand
	}

	if err := json.Unmarshal(envelope.Payload, cmd); nil != err {
		return nil, err
	}
	return cmd, nil
}

// Transaction - an ordered sequence of commands from one creator
type Transaction struct {
	Creator  string
	Commands []Command
}

type transactionJSON struct {
	Creator  string            `json:"creator"`
	Commands []json.RawMessage `json:"commands"`
}

// MarshalJSON - encode the transaction with enveloped commands
func (tx Transaction) MarshalJSON() ([]byte, error) {
	t := transactionJSON{
		Creator:  tx.Creator,
		Commands: make([]json.RawMessage, 0, len(tx.Commands)),
	}
	for _, cmd := range tx.Commands {
		packed, err := PackCommand(cmd)
		if nil != err {
			return nil, err
		}
		t.Commands = append(t.Commands, packed)
	}
	return json.Marshal(t)
}

// UnmarshalJSON - decode a transaction with enveloped commands
func (tx *Transaction) UnmarshalJSON(data []byte) error {
	t := transactionJSON{}
	if err := json.Unmarshal(data, &t); nil != err {
		return err
	}

	commands := make([]Command, 0, len(t.Commands))
	for _, raw := range t.Commands {
		cmd, err := UnpackCommand(raw)
		if nil != err {
			return err
		}
		commands = append(commands, cmd)
	}

	tx.Creator = t.Creator
	tx.Commands = commands
	return nil
}

// Proposal - an ordered batch of candidate transactions
type Proposal struct {
	Transactions []*Transaction `json:"transactions"`
}
