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
)

func TestGetRolesInsertionOrder(t *testing.T) {
	w := wsv.New(newMemStore())

	// deliberately out of lexical order
	require.Nil(t, w.InsertRole("charlie"))
	require.Nil(t, w.InsertRole("alpha"))
	require.Nil(t, w.InsertRole("bravo"))

	assert.Equal(t, []string{"charlie", "alpha", "bravo"}, w.GetRoles(), "roles not in insertion order")
}

func TestGetRolePermissionsWhenNeverInserted(t *testing.T) {
	w := wsv.New(newMemStore())

	// a role that was never inserted reads as an empty sequence
	permissions := w.GetRolePermissions("phantom")
	assert.NotNil(t, permissions, "expected empty sequence, got absence")
	assert.Equal(t, 0, len(permissions), "unexpected permissions")
}

func TestGetAccountWhenNotFound(t *testing.T) {
	w := setupAccount(t)

	_, found := w.GetAccount("invalid account id")
	assert.False(t, found, "unexpected account")
}

func TestGetAccountDetailWhenNotFound(t *testing.T) {
	w := setupAccount(t)

	_, found := w.GetAccountDetail("invalid account id")
	assert.False(t, found, "unexpected account detail")
}

func TestGetAssetWhenNotFound(t *testing.T) {
	w := wsv.New(newMemStore())

	_, found := w.GetAsset("invalid asset")
	assert.False(t, found, "unexpected asset")
}

func TestGetDomainWhenNotFound(t *testing.T) {
	w := wsv.New(newMemStore())

	_, found := w.GetDomain("invalid domain")
	assert.False(t, found, "unexpected domain")
}

// an unusable backing store degrades every query to absence and
// every command to an unavailable failure, never a crash
func TestQueriesDegradeWhenStoreBroken(t *testing.T) {
	w := wsv.New(&brokenStore{})

	_, found := w.GetAccount("some account")
	assert.False(t, found, "unexpected account")

	_, found = w.GetDomain(testDomain)
	assert.False(t, found, "unexpected domain")

	_, found = w.GetAsset("coin#domain")
	assert.False(t, found, "unexpected asset")

	assert.Equal(t, 0, len(w.GetRoles()), "unexpected roles")
	assert.Equal(t, 0, len(w.GetRolePermissions(testRole)), "unexpected permissions")
	assert.Equal(t, 0, len(w.GetAccountRoles(testAccountId)), "unexpected account roles")
	assert.False(t, w.HasAccountGrantablePermission("a", "b", "c"), "unexpected grant")
}

func TestCommandsDegradeWhenStoreBroken(t *testing.T) {
	w := wsv.New(&brokenStore{})

	err := w.InsertRole(testRole)
	assert.Equal(t, fault.ErrStorageUnavailable, err, "wrong error")

	err = w.SetAccountKV(testAccountId, testAccountId, "k", "v")
	assert.Equal(t, fault.ErrStorageUnavailable, err, "wrong error")

	err = w.DeletePeer("10.0.0.1:10001")
	assert.Equal(t, fault.ErrStorageUnavailable, err, "wrong error")
}
