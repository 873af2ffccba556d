// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robinrowe/iroha/fault"
	"github.com/robinrowe/iroha/wsv"
	"github.com/robinrowe/iroha/wsvrecord"
)

func acceptAll(cmd wsvrecord.Command, creator string, query wsv.Query) bool {
	return true
}

func TestTemporaryDoesNotTouchBase(t *testing.T) {
	base := newMemStore()
	temp := wsv.NewTemporary(base)

	accepted, err := temp.Apply(&wsvrecord.Transaction{
		Creator: testAccountId,
		Commands: []wsvrecord.Command{
			&wsvrecord.CreateRole{RoleName: testRole},
		},
	}, acceptAll)
	require.Nil(t, err, "apply error: %s", err)
	require.True(t, accepted, "transaction rejected")

	assert.Equal(t, []string{testRole}, temp.GetRoles(), "role missing from temporary state")
	assert.Equal(t, 0, len(wsv.New(base).GetRoles()), "temporary write leaked into base")
}

func TestTemporaryReadsThroughToBase(t *testing.T) {
	base := newMemStore()
	require.Nil(t, wsv.New(base).InsertRole(testRole))

	temp := wsv.NewTemporary(base)
	assert.Equal(t, []string{testRole}, temp.GetRoles(), "base role not visible")
}

func TestTemporaryRevertsFailedTransaction(t *testing.T) {
	temp := wsv.NewTemporary(newMemStore())

	// second command fails: the domain does not exist, so the role
	// created by the first command must be reverted as well
	accepted, err := temp.Apply(&wsvrecord.Transaction{
		Creator: testAccountId,
		Commands: []wsvrecord.Command{
			&wsvrecord.CreateRole{RoleName: testRole},
			&wsvrecord.CreateAccount{
				AccountName: "id",
				DomainId:    "no such domain",
			},
		},
	}, acceptAll)
	require.Nil(t, err, "apply error: %s", err)
	assert.False(t, accepted, "transaction unexpectedly accepted")
	assert.Equal(t, 0, len(temp.GetRoles()), "partial transaction effect leaked")
}

func TestTemporaryRevertsRejectedTransaction(t *testing.T) {
	temp := wsv.NewTemporary(newMemStore())

	calls := 0
	rejectSecond := func(cmd wsvrecord.Command, creator string, query wsv.Query) bool {
		calls += 1
		return calls < 2
	}

	accepted, err := temp.Apply(&wsvrecord.Transaction{
		Creator: testAccountId,
		Commands: []wsvrecord.Command{
			&wsvrecord.CreateRole{RoleName: "first"},
			&wsvrecord.CreateRole{RoleName: "second"},
		},
	}, rejectSecond)
	require.Nil(t, err, "apply error: %s", err)
	assert.False(t, accepted, "transaction unexpectedly accepted")
	assert.Equal(t, 2, calls, "wrong number of check calls")
	assert.Equal(t, 0, len(temp.GetRoles()), "partial transaction effect leaked")
}

func TestTemporaryCheckSeesPostCommandState(t *testing.T) {
	temp := wsv.NewTemporary(newMemStore())

	seen := false
	check := func(cmd wsvrecord.Command, creator string, query wsv.Query) bool {
		roles := query.GetRoles()
		seen = 1 == len(roles) && testRole == roles[0]
		return seen
	}

	accepted, err := temp.Apply(&wsvrecord.Transaction{
		Creator: testAccountId,
		Commands: []wsvrecord.Command{
			&wsvrecord.CreateRole{RoleName: testRole},
		},
	}, check)
	require.Nil(t, err, "apply error: %s", err)
	assert.True(t, accepted, "transaction rejected")
	assert.True(t, seen, "check did not see the command effect")
}

func TestTemporaryAcceptedVisibleToLaterTransactions(t *testing.T) {
	temp := wsv.NewTemporary(newMemStore())

	accepted, err := temp.Apply(&wsvrecord.Transaction{
		Creator: testAccountId,
		Commands: []wsvrecord.Command{
			&wsvrecord.CreateRole{RoleName: testRole},
		},
	}, acceptAll)
	require.Nil(t, err, "apply error: %s", err)
	require.True(t, accepted, "first transaction rejected")

	// the same role again must now collide with the accepted one
	accepted, err = temp.Apply(&wsvrecord.Transaction{
		Creator: testAccountId,
		Commands: []wsvrecord.Command{
			&wsvrecord.CreateRole{RoleName: testRole},
		},
	}, acceptAll)
	require.Nil(t, err, "apply error: %s", err)
	assert.False(t, accepted, "duplicate role unexpectedly accepted")
}

func TestTemporaryRejectedNotVisibleToLaterTransactions(t *testing.T) {
	temp := wsv.NewTemporary(newMemStore())

	rejectAll := func(cmd wsvrecord.Command, creator string, query wsv.Query) bool {
		return false
	}

	accepted, err := temp.Apply(&wsvrecord.Transaction{
		Creator: testAccountId,
		Commands: []wsvrecord.Command{
			&wsvrecord.CreateRole{RoleName: testRole},
		},
	}, rejectAll)
	require.Nil(t, err, "apply error: %s", err)
	require.False(t, accepted, "transaction unexpectedly accepted")

	accepted, err = temp.Apply(&wsvrecord.Transaction{
		Creator: testAccountId,
		Commands: []wsvrecord.Command{
			&wsvrecord.CreateRole{RoleName: testRole},
		},
	}, acceptAll)
	require.Nil(t, err, "apply error: %s", err)
	assert.True(t, accepted, "rejected transaction effect leaked")
}

func TestTemporaryUnavailableBase(t *testing.T) {
	temp := wsv.NewTemporary(&brokenStore{})

	accepted, err := temp.Apply(&wsvrecord.Transaction{
		Creator: testAccountId,
		Commands: []wsvrecord.Command{
			&wsvrecord.CreateRole{RoleName: testRole},
		},
	}, acceptAll)
	assert.False(t, accepted, "transaction unexpectedly accepted")
	require.NotNil(t, err, "expected storage error")
	assert.True(t, fault.IsErrUnavailable(err), "wrong error class: %s", err)
}

func TestTemporaryDiscard(t *testing.T) {
	base := newMemStore()
	require.Nil(t, wsv.New(base).InsertRole("base"))

	temp := wsv.NewTemporary(base)
	accepted, err := temp.Apply(&wsvrecord.Transaction{
		Creator: testAccountId,
		Commands: []wsvrecord.Command{
			&wsvrecord.CreateRole{RoleName: "overlay"},
		},
	}, acceptAll)
	require.Nil(t, err, "apply error: %s", err)
	require.True(t, accepted, "transaction rejected")
	require.Equal(t, 2, len(temp.GetRoles()), "wrong roles before discard")

	temp.Discard()
	assert.Equal(t, []string{"base"}, temp.GetRoles(), "discard did not drop overlay writes")
}

func TestTemporaryDeleteShadowsBase(t *testing.T) {
	base := newMemStore()
	baseState := wsv.New(base)
	require.Nil(t, baseState.InsertPeer(&wsvrecord.Peer{
		Address:   "10.0.0.1:10001",
		PublicKey: "peer-key",
	}))

	temp := wsv.NewTemporary(base)
	accepted, err := temp.Apply(&wsvrecord.Transaction{
		Creator: testAccountId,
		Commands: []wsvrecord.Command{
			&wsvrecord.RemovePeer{Address: "10.0.0.1:10001"},
		},
	}, acceptAll)
	require.Nil(t, err, "apply error: %s", err)
	require.True(t, accepted, "transaction rejected")

	assert.Equal(t, 0, len(temp.GetPeers()), "deleted peer still visible in overlay")
	assert.Equal(t, 1, len(baseState.GetPeers()), "delete leaked into base")
}
