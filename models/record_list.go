// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FailedRecord names a stored record that could not be opened.
type FailedRecord struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// RecordList is the result of loading every record of an account. Records
// that failed to open are listed in Failed and never block the rest.
type RecordList struct {
	Records []DecryptedRecord `json:"records"`
	Failed  []FailedRecord    `json:"failed,omitempty"`
}
