// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedBlob is one AES-GCM sealed clinical case as served by the blob
// store. Nonce and Ciphertext are lowercase hex; the ciphertext carries the
// 16-byte authentication tag as its suffix.
type EncryptedBlob struct {
	// ID is the reference the blob was fetched by. It is not part of the
	// stored payload.
	ID string `json:"-"`

	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// BlobList is the response body of GET /list_blobs.
type BlobList struct {
	Blobs []string `json:"blobs"`
}

// FetchBlobResponse is the response body of GET /fetch_blob/{id}.
type FetchBlobResponse struct {
	EncBlob EncryptedBlob `json:"enc_blob"`
}

// StoreBlobRequest is the request body of POST /store_blob.
type StoreBlobRequest struct {
	Hospital string        `json:"hospital"`
	CaseID   string        `json:"case_id"`
	EncBlob  EncryptedBlob `json:"enc_blob"`
}

// BlobName returns the identifier a stored blob is listed under.
func (r StoreBlobRequest) BlobName() string {
	return r.Hospital + "__" + r.CaseID
}

// StoreBlobResponse is the response body of POST /store_blob.
type StoreBlobResponse struct {
	Status   string `json:"status"`
	Storage  string `json:"storage"`
	Hospital string `json:"hospital"`
	CaseID   string `json:"case_id"`
}

// DecryptedDocument is any JSON value recovered from a blob. Object is set
// when the value is a JSON object; arrays, strings, numbers, booleans and
// null are kept in Value.
type DecryptedDocument struct {
	Object DecryptedRecord
	Value  any
}

// IsObject reports whether the document is a JSON object.
func (d DecryptedDocument) IsObject() bool {
	return d.Object != nil
}

// DecryptedRecord is a JSON object recovered from a blob. Numbers are
// kept as json.Number so that integers survive a round trip unchanged.
type DecryptedRecord map[string]any
