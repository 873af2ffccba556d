// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package permission - command authorization model
//
// decides whether the creator of a transaction is allowed to run a
// particular command, based on the role permissions attached to the
// creator's account and on grantable permissions the target account
// may have handed out
//
// genesis transactions carry an empty creator and are always
// authorized, this is the bootstrap authority
package permission
