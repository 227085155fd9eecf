// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-case-vault/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestIdentityCtxKey(t *testing.T) {
	if IdentityCtxKey.String() != "identity" {
		t.Errorf("expected 'identity', got '%s'", IdentityCtxKey.String())
	}
}

func TestGetIdentityFromContext_Success(t *testing.T) {
	want := models.Identity{Subject: "dr.smith", Role: models.RoleClinician}
	ctx := WithIdentity(context.Background(), want)

	got, ok := GetIdentityFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	got, ok := GetIdentityFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing identity")
	}
	if got != (models.Identity{}) {
		t.Errorf("expected zero identity, got %+v", got)
	}
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "dr.smith")

	if _, ok := GetIdentityFromContext(ctx); ok {
		t.Error("expected ok=false for wrong type")
	}
}

func TestGetIdentityFromContext_PlainStringKeyDoesNotCollide(t *testing.T) {
	//nolint:staticcheck // проверяем, что строковый ключ не пересекается с contextKey
	ctx := context.WithValue(context.Background(), "identity", models.Identity{Subject: "x"})

	if _, ok := GetIdentityFromContext(ctx); ok {
		t.Error("expected plain string key not to collide with contextKey")
	}
}
