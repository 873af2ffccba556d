// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type UnavailableError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyExists    = ExistsError("account already exists")
	ErrAccountNotFound         = NotFoundError("account not found")
	ErrAlreadyInitialised      = ProcessError("already initialised")
	ErrAssetAlreadyExists      = ExistsError("asset already exists")
	ErrAssetNotFound           = NotFoundError("asset not found")
	ErrDomainAlreadyExists     = ExistsError("domain already exists")
	ErrDomainNotFound          = NotFoundError("domain not found")
	ErrGenesisBlockRejected    = ProcessError("genesis block rejected")
	ErrInsufficientBalance     = InvalidError("insufficient balance")
	ErrInvalidChain            = InvalidError("invalid chain")
	ErrInvalidGenesisBlock     = InvalidError("invalid genesis block")
	ErrInvalidLoggerChannel    = ProcessError("invalid logger channel")
	ErrInvalidMode             = InvalidError("invalid mode")
	ErrInvalidQuorum           = InvalidError("quorum must be at least one")
	ErrInvalidRoleName         = InvalidError("role name is invalid")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrNotInitialised          = ProcessError("not initialised")
	ErrNoTrustedPeers          = InvalidError("no trusted peers")
	ErrRoleAlreadyExists       = ExistsError("role already exists")
	ErrRoleNotFound            = NotFoundError("role not found")
	ErrStorageUnavailable      = UnavailableError("storage is unavailable")
	ErrTransactionAlreadyInUse = ProcessError("transaction already in use")
	ErrUnknownCommand          = InvalidError("unknown command")
	ErrWrongDatabaseVersion    = ProcessError("wrong database version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string      { return string(e) }
func (e InvalidError) Error() string     { return string(e) }
func (e NotFoundError) Error() string    { return string(e) }
func (e ProcessError) Error() string     { return string(e) }
func (e UnavailableError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool      { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool     { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool    { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool     { _, ok := e.(ProcessError); return ok }
func IsErrUnavailable(e error) bool { _, ok := e.(UnavailableError); return ok }
