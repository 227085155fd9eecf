// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/awnumar/memguard"
)

// maxKeyFileSize bounds how much of a selected file is read. Anything larger
// is not a raw AES key and is rejected by ImportKey on length alone.
const maxKeyFileSize = 4096

// ReadKeyFile reads the whole file at path into locked memory, imports it
// with [ImportKey] and destroys the buffer before returning.
func ReadKeyFile(path string) (*KeyHandle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open key file: %w", err)
	}
	defer f.Close()

	buf, err := memguard.NewBufferFromEntireReader(io.LimitReader(f, maxKeyFileSize+1))
	if buf != nil {
		defer buf.Destroy()
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	return ImportKey(buf.Bytes())
}

// GenerateKeyFile writes 32 random bytes to a new file at path with mode
// 0600. It refuses to overwrite an existing file.
func GenerateKeyFile(path string) error {
	buf := memguard.NewBufferRandom(32)
	defer buf.Destroy()

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("create key file: %w", err)
	}

	if _, err = f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write key file: %w", err)
	}

	return f.Close()
}
