// SPDX-License-Identifier: Apache-2.0

package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// fieldSeparator joins business fields before hashing. A non-printable
// separator keeps adjacent fields from bleeding into each other
// ("ab"+"c" vs "a"+"bc").
const fieldSeparator = "\x1f"

// fingerprintFields computes the content fingerprint of a record from its
// ordered business fields: a hex-encoded SHA-256 over the fields joined with
// fieldSeparator.
//
// The result depends on nothing but the field values and their fixed order,
// so two records with identical business content always fingerprint
// identically regardless of id, timestamp, or sync status. Missing optional
// fields must be passed as empty strings so absence serializes consistently.
func fingerprintFields(fields []string) string {
	sum := sha256.Sum256([]byte(strings.Join(fields, fieldSeparator)))
	return hex.EncodeToString(sum[:])
}
