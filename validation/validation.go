// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package validation

import (
	"github.com/bitmark-inc/logger"

	"github.com/robinrowe/iroha/permission"
	"github.com/robinrowe/iroha/wsv"
	"github.com/robinrowe/iroha/wsvrecord"
)

// Validator - one-pass stateful proposal filter
type Validator struct {
	log   *logger.L
	model *permission.Model
}

// NewValidator - create a validator with its own log channel
func NewValidator() *Validator {
	return &Validator{
		log:   logger.New("validation"),
		model: permission.NewModel(),
	}
}

// Validate - filter a proposal through a temporary world state
//
// each transaction is applied under a checkpoint; a command failure
// or an authorization rejection drops the transaction and reverts its
// effect, everything else is kept in the original order
//
// a storage level failure aborts the whole pass: the caller cannot
// tell a rejected transaction from an unreadable state, so nothing is
// filtered and the error is surfaced instead
func (v *Validator) Validate(proposal *wsvrecord.Proposal, temp *wsv.Temporary) (*wsvrecord.Proposal, error) {

	accepted := make([]*wsvrecord.Transaction, 0, len(proposal.Transactions))

	for i, tx := range proposal.Transactions {
		ok, err := temp.Apply(tx, v.model.Validate)
		if nil != err {
			v.log.Errorf("abort validation at transaction %d: error: %s", i, err)
			return nil, err
		}
		if !ok {
			v.log.Debugf("reject transaction %d creator: %q", i, tx.Creator)
			continue
		}
		accepted = append(accepted, tx)
	}

	v.log.Infof("accepted %d of %d transactions", len(accepted), len(proposal.Transactions))
	return &wsvrecord.Proposal{Transactions: accepted}, nil
}
