// SPDX-License-Identifier: Apache-2.0
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
package fault
