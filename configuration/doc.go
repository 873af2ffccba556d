// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package configuration - daemon settings from a Lua file
//
// the configuration file is a Lua program whose final expression is a
// table; executing it allows computed settings while the decoded
// result is still a plain typed structure
package configuration
