// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-case-vault/models"

type caseDecrypter struct{}

// NewCaseDecrypter returns the file based [CaseDecrypter].
func NewCaseDecrypter() CaseDecrypter {
	return caseDecrypter{}
}

func (caseDecrypter) DecryptBlob(keyPath string, blob models.EncryptedBlob) (models.DecryptedDocument, error) {
	h, err := ReadKeyFile(keyPath)
	if err != nil {
		return models.DecryptedDocument{}, err
	}
	defer h.Destroy()

	return DecryptBlob(h, blob)
}
