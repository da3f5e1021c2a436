// SPDX-License-Identifier: MIT

// Package quality declares the closed quality sets recorded on a chord:
// Third, Fifth, Seventh and the derived Triad classification.
//
// Each type's zero value is its "unset" member (NoThird, NoFifth, NoSeventh,
// NoTriad), so a freshly declared value reads as "not yet classified".
// The package is pure data; classification lives in package chord.
package quality
