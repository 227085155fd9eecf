// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/mock"
	"github.com/MKhiriev/go-case-vault/internal/store"
	"github.com/MKhiriev/go-case-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingAudit собирает записи аудита в памяти.
type recordingAudit struct {
	mu      sync.Mutex
	entries []models.AuditEntry
}

func (r *recordingAudit) Record(_ context.Context, entry models.AuditEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

var (
	admin     = models.Identity{Subject: "agent-1", Role: models.RoleAdmin}
	clinician = models.Identity{Subject: "dr.smith", Role: models.RoleClinician}
)

func newTestBlobService(t *testing.T) (BlobService, *mock.MockBlobRepository, *recordingAudit) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBlobRepository(ctrl)
	audit := &recordingAudit{}
	return NewBlobService(repo, audit, logger.Nop()), repo, audit
}

// ─────────────────────────────────────────────
// ListBlobs / FetchBlob / StoreBlob
// ─────────────────────────────────────────────

func TestBlobService_ListBlobs(t *testing.T) {
	svc, repo, audit := newTestBlobService(t)
	repo.EXPECT().List(gomock.Any()).Return([]string{"A__1", "B__2"}, nil)

	names, err := svc.ListBlobs(context.Background(), clinician)

	require.NoError(t, err)
	assert.Equal(t, []string{"A__1", "B__2"}, names)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, models.AuditEntry{Actor: "dr.smith", Role: "clinician", Action: ActionListBlobs}, audit.entries[0])
}

func TestBlobService_ListBlobs_RepositoryError_NotAudited(t *testing.T) {
	svc, repo, audit := newTestBlobService(t)
	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("disk gone"))

	_, err := svc.ListBlobs(context.Background(), clinician)

	require.Error(t, err)
	assert.Empty(t, audit.entries)
}

func TestBlobService_FetchBlob(t *testing.T) {
	svc, repo, audit := newTestBlobService(t)
	blob := models.EncryptedBlob{Nonce: "aa", Ciphertext: "bb"}
	repo.EXPECT().Get(gomock.Any(), "A__1").Return(blob, nil)

	got, err := svc.FetchBlob(context.Background(), clinician, "A__1")

	require.NoError(t, err)
	assert.Equal(t, blob, got)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, ActionFetchBlob, audit.entries[0].Action)
	assert.Equal(t, "A__1", audit.entries[0].Filename)
}

func TestBlobService_FetchBlob_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "not found", repoErr: fmt.Errorf("%w: A__9", store.ErrBlobNotFound), wantErr: ErrBlobNotFound},
		{name: "invalid name", repoErr: store.ErrInvalidBlobName, wantErr: ErrInvalidBlobID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, audit := newTestBlobService(t)
			repo.EXPECT().Get(gomock.Any(), "A__9").Return(models.EncryptedBlob{}, tt.repoErr)

			_, err := svc.FetchBlob(context.Background(), clinician, "A__9")

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, audit.entries)
		})
	}
}

func TestBlobService_StoreBlob(t *testing.T) {
	svc, repo, audit := newTestBlobService(t)
	req := models.StoreBlobRequest{
		Hospital: "General",
		CaseID:   "case-001",
		EncBlob:  models.EncryptedBlob{Nonce: "aa", Ciphertext: "bb"},
	}
	repo.EXPECT().Put(gomock.Any(), "General__case-001", req.EncBlob).Return(nil)

	resp, err := svc.StoreBlob(context.Background(), admin, req)

	require.NoError(t, err)
	assert.Equal(t, models.StoreBlobResponse{Status: "ok", Storage: "filesystem", Hospital: "General", CaseID: "case-001"}, resp)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, models.AuditEntry{Actor: "agent-1", Role: "admin", Action: ActionStoreBlob, Filename: "General__case-001"}, audit.entries[0])
}

func TestBlobService_NilAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBlobRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return([]string{}, nil)

	svc := NewBlobService(repo, nil, logger.Nop())

	_, err := svc.ListBlobs(context.Background(), clinician)
	assert.NoError(t, err)
}

// ─────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────

func TestBlobService_Search(t *testing.T) {
	names := []string{"General__1", "General__2", "North__1", "North__2", "South__1", "South__2", "South__3"}

	tests := []struct {
		name string
		req  models.SearchRequest
		want []models.SearchResult
	}{
		{
			name: "substring match",
			req:  models.SearchRequest{Query: "north", K: 5},
			want: []models.SearchResult{{ID: "North__1", Score: 1}, {ID: "North__2", Score: 0.95}},
		},
		{
			name: "no match falls back to all, default k",
			req:  models.SearchRequest{Query: "fever"},
			want: []models.SearchResult{
				{ID: "General__1", Score: 1}, {ID: "General__2", Score: 0.95}, {ID: "North__1", Score: 0.9},
				{ID: "North__2", Score: 0.85}, {ID: "South__1", Score: 0.8},
			},
		},
		{
			name: "k limits results",
			req:  models.SearchRequest{Query: "south", K: 2},
			want: []models.SearchResult{{ID: "South__1", Score: 1}, {ID: "South__2", Score: 0.95}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, audit := newTestBlobService(t)
			repo.EXPECT().List(gomock.Any()).Return(names, nil)

			got, err := svc.Search(context.Background(), clinician, tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.Len(t, audit.entries, 1)
			assert.Equal(t, ActionSearch, audit.entries[0].Action)
		})
	}
}

func TestBlobService_Search_EmptyStore(t *testing.T) {
	svc, repo, _ := newTestBlobService(t)
	repo.EXPECT().List(gomock.Any()).Return(nil, nil)

	got, err := svc.Search(context.Background(), clinician, models.SearchRequest{Query: "x"})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRankScore(t *testing.T) {
	assert.Equal(t, 1.0, rankScore(0))
	assert.Equal(t, 0.95, rankScore(1))
	assert.Equal(t, 0.05, rankScore(19))
	assert.Equal(t, 0.0, rankScore(20))
	assert.Equal(t, 0.0, rankScore(99))
}

// ─────────────────────────────────────────────
// BlobValidationService
// ─────────────────────────────────────────────

func TestBlobValidationService(t *testing.T) {
	validBlob := models.EncryptedBlob{
		Nonce:      strings.Repeat("ab", 12),
		Ciphertext: strings.Repeat("cd", 20),
	}

	t.Run("store rejects malformed request before repository", func(t *testing.T) {
		inner, _, audit := newTestBlobService(t)
		svc := NewBlobValidationService().Wrap(inner)

		_, err := svc.StoreBlob(context.Background(), admin, models.StoreBlobRequest{Hospital: "General", CaseID: "../x", EncBlob: validBlob})

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.Empty(t, audit.entries)
	})

	t.Run("store passes valid request", func(t *testing.T) {
		inner, repo, _ := newTestBlobService(t)
		svc := NewBlobValidationService().Wrap(inner)
		repo.EXPECT().Put(gomock.Any(), "General__1", validBlob).Return(nil)

		_, err := svc.StoreBlob(context.Background(), admin, models.StoreBlobRequest{Hospital: "General", CaseID: "1", EncBlob: validBlob})

		assert.NoError(t, err)
	})

	t.Run("fetch rejects traversal", func(t *testing.T) {
		inner, _, _ := newTestBlobService(t)
		svc := NewBlobValidationService().Wrap(inner)

		_, err := svc.FetchBlob(context.Background(), clinician, "../etc/passwd")

		assert.ErrorIs(t, err, ErrInvalidBlobID)
	})

	t.Run("search rejects negative k", func(t *testing.T) {
		inner, _, _ := newTestBlobService(t)
		svc := NewBlobValidationService().Wrap(inner)

		_, err := svc.Search(context.Background(), clinician, models.SearchRequest{Query: "x", K: -1})

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("list passes through", func(t *testing.T) {
		inner, repo, _ := newTestBlobService(t)
		svc := NewBlobValidationService().Wrap(inner)
		repo.EXPECT().List(gomock.Any()).Return([]string{"A__1"}, nil)

		names, err := svc.ListBlobs(context.Background(), clinician)

		require.NoError(t, err)
		assert.Equal(t, []string{"A__1"}, names)
	})
}
