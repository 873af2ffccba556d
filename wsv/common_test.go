// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wsv_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robinrowe/iroha/fault"
	"github.com/robinrowe/iroha/wsv"
	"github.com/robinrowe/iroha/wsvrecord"
)

// memStore - in-memory Store for tests
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{
		data: map[string][]byte{},
	}
}

func (m *memStore) key(pool wsv.Pool, key string) string {
	return string(pool) + key
}

func (m *memStore) Available() bool {
	return true
}

func (m *memStore) Get(pool wsv.Pool, key string) ([]byte, bool) {
	value, found := m.data[m.key(pool, key)]
	return value, found
}

func (m *memStore) Has(pool wsv.Pool, key string) bool {
	_, found := m.data[m.key(pool, key)]
	return found
}

func (m *memStore) Put(pool wsv.Pool, key string, value []byte) error {
	m.data[m.key(pool, key)] = value
	return nil
}

func (m *memStore) Delete(pool wsv.Pool, key string) error {
	delete(m.data, m.key(pool, key))
	return nil
}

func (m *memStore) Range(pool wsv.Pool, fn func(key string, value []byte) bool) {
	prefix := string(pool)
	keys := []string{}
	for k := range m.data {
		if len(k) >= 1 && k[:1] == prefix {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !fn(k[1:], m.data[k]) {
			return
		}
	}
}

// brokenStore - simulates an unusable backing database
type brokenStore struct{}

func (b *brokenStore) Available() bool                                          { return false }
func (b *brokenStore) Get(pool wsv.Pool, key string) ([]byte, bool)             { return nil, false }
func (b *brokenStore) Has(pool wsv.Pool, key string) bool                       { return false }
func (b *brokenStore) Put(pool wsv.Pool, key string, value []byte) error        { return fault.ErrStorageUnavailable }
func (b *brokenStore) Delete(pool wsv.Pool, key string) error                   { return fault.ErrStorageUnavailable }
func (b *brokenStore) Range(pool wsv.Pool, fn func(key string, value []byte) bool) {}

// shared fixture values, mirroring one domain with one account
const (
	testRole       = "role"
	testPermission = "permission"
	testDomain     = "domain"
	testAccountId  = "id@domain"
)

func testAccount() *wsvrecord.Account {
	return &wsvrecord.Account{
		AccountId: testAccountId,
		DomainId:  testDomain,
		Quorum:    1,
		JsonData: map[string]map[string]string{
			testAccountId: {"key": "value"},
		},
	}
}

// a state with role and domain inserted
func setupDomain(t *testing.T) *wsv.WSV {
	w := wsv.New(newMemStore())
	require.Nil(t, w.InsertRole(testRole))
	require.Nil(t, w.InsertDomain(&wsvrecord.Domain{
		DomainId:    testDomain,
		DefaultRole: testRole,
	}))
	return w
}

// a state with role, domain and the fixture account inserted
func setupAccount(t *testing.T) *wsv.WSV {
	w := setupDomain(t)
	require.Nil(t, w.InsertAccount(testAccount()))
	return w
}
