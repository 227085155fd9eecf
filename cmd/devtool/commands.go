// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-case-vault/internal/adapter"
	"github.com/MKhiriev/go-case-vault/internal/config"
	"github.com/MKhiriev/go-case-vault/internal/crypto"
	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/session"
	"github.com/MKhiriev/go-case-vault/internal/utils"
	"github.com/MKhiriev/go-case-vault/internal/validators"
	"github.com/MKhiriev/go-case-vault/models"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errMissingFlag    = errors.New("missing required flag")
	errUnknownRole    = errors.New("unknown role")
)

// maxCaseFileSize bounds case JSON read by seal.
const maxCaseFileSize = 16 << 20

type devtoolEnv struct {
	cfg *config.DevToolConfig
	out io.Writer
	in  io.Reader

	logger *logger.Logger
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, args []string, env *devtoolEnv) error
}

var commands = []command{
	{"token", "mint a signed session token", runToken},
	{"keygen", "write a new AES-256 key file (mode 0600)", runKeygen},
	{"seal", "encrypt a case JSON file, optionally upload it", runSeal},
	{"session", "print a fresh session scope for this shell", runSession},
	{"audit", "summarize the audit trail", runAudit},
}

func dispatch(ctx context.Context, args []string, env *devtoolEnv) error {
	if len(args) == 0 {
		printUsage(env.out)
		return fmt.Errorf("%w: none given", errUnknownCommand)
	}

	for _, c := range commands {
		if c.name == args[0] {
			return c.run(ctx, args[1:], env)
		}
	}

	printUsage(env.out)
	return fmt.Errorf("%w: %q", errUnknownCommand, args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: devtool <command> [flags]")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}
}

func newFlagSet(name string, env *devtoolEnv) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.out)
	return fs
}

// ---- token ----

func runToken(_ context.Context, args []string, env *devtoolEnv) error {
	fs := newFlagSet("token", env)
	sub := fs.String("sub", "test-user", "token subject")
	role := fs.String("role", models.RoleClinician, "role: "+strings.Join(models.KnownRoles, ", "))
	exp := fs.Duration("exp", env.cfg.TokenDuration, "token lifetime")
	signKey := fs.String("key", env.cfg.TokenSignKey, "signing key (default $APP_TOKEN_SIGN_KEY)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !models.IsKnownRole(*role) {
		return fmt.Errorf("%w: %q", errUnknownRole, *role)
	}
	if *signKey == "" {
		return fmt.Errorf("%w: -key or APP_TOKEN_SIGN_KEY", errMissingFlag)
	}

	token, err := utils.GenerateSessionToken(*sub, *role, *exp, *signKey)
	if err != nil {
		return fmt.Errorf("mint token: %w", err)
	}

	env.logger.Info().Str("sub", *sub).Str("role", *role).Dur("exp", *exp).Msg("token minted")
	_, err = fmt.Fprintln(env.out, token)
	return err
}

// ---- keygen ----

func runKeygen(_ context.Context, args []string, env *devtoolEnv) error {
	fs := newFlagSet("keygen", env)
	out := fs.String("out", "", "key file to create")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("%w: -out", errMissingFlag)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o700); err != nil {
		return fmt.Errorf("create key directory: %w", err)
	}
	if err := crypto.GenerateKeyFile(*out); err != nil {
		return err
	}

	env.logger.Info().Str("path", *out).Msg("key written")
	_, err := fmt.Fprintln(env.out, "Wrote key:", *out)
	return err
}

// ---- seal ----

// staticToken serves one bearer token to the adapter.
type staticToken string

func (t staticToken) Token() (string, error) {
	return string(t), nil
}

func runSeal(ctx context.Context, args []string, env *devtoolEnv) error {
	fs := newFlagSet("seal", env)
	keyPath := fs.String("key", "", "raw AES key file")
	inPath := fs.String("in", "-", "case JSON file, - for stdin")
	hospital := fs.String("hospital", "", "hospital name")
	caseID := fs.String("case-id", "", "case id")
	upload := fs.Bool("upload", false, "upload with POST /store_blob instead of printing")
	token := fs.String("token", "", "bearer token for -upload (admin or researcher)")
	addr := fs.String("addr", env.cfg.AdapterAddress, "blob store address for -upload")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *keyPath == "" {
		return fmt.Errorf("%w: -key", errMissingFlag)
	}
	if *upload && *token == "" {
		return fmt.Errorf("%w: -token", errMissingFlag)
	}

	record, err := readCaseRecord(*inPath, env.in)
	if err != nil {
		return err
	}

	blob, err := sealWithKeyFile(*keyPath, record)
	if err != nil {
		return err
	}

	req := models.StoreBlobRequest{Hospital: *hospital, CaseID: *caseID, EncBlob: blob}
	if err = validators.NewBlobValidator().Validate(ctx, req); err != nil {
		return fmt.Errorf("invalid case: %w", err)
	}

	if !*upload {
		enc := json.NewEncoder(env.out)
		enc.SetIndent("", "  ")
		return enc.Encode(req)
	}

	blobStore, err := adapter.NewHTTPBlobStoreAdapter(config.ClientAdapter{
		HTTPAddress:    *addr,
		RequestTimeout: env.cfg.RequestTimeout,
	}, staticToken(*token), env.logger)
	if err != nil {
		return err
	}

	resp, err := blobStore.StoreBlob(ctx, req)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	env.logger.Info().Str("blob_id", req.BlobName()).Msg("case uploaded")
	_, err = fmt.Fprintf(env.out, "Stored %s (%s, %s)\n", req.BlobName(), resp.Status, resp.Storage)
	return err
}

func readCaseRecord(path string, stdin io.Reader) (models.DecryptedRecord, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open case file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var record models.DecryptedRecord
	dec := json.NewDecoder(io.LimitReader(r, maxCaseFileSize))
	dec.UseNumber()
	if err := dec.Decode(&record); err != nil {
		return nil, fmt.Errorf("case file must be a JSON object: %w", err)
	}
	if record == nil {
		return nil, errors.New("case file must be a JSON object")
	}
	return record, nil
}

// sealWithKeyFile keeps the raw key in locked memory for the duration of the
// seal.
func sealWithKeyFile(path string, record models.DecryptedRecord) (models.EncryptedBlob, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("open key file: %w", err)
	}
	defer f.Close()

	buf, err := memguard.NewBufferFromEntireReader(io.LimitReader(f, 4096))
	if buf != nil {
		defer buf.Destroy()
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return models.EncryptedBlob{}, fmt.Errorf("read key file: %w", err)
	}

	return crypto.SealRecord(buf.Bytes(), record)
}

// ---- session ----

func runSession(_ context.Context, args []string, env *devtoolEnv) error {
	fs := newFlagSet("session", env)
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, err := fmt.Fprintf(env.out, "export %s=%s\n", session.ScopeEnv, utils.NewUUIDGenerator().Generate())
	return err
}

// ---- audit ----

type auditLine struct {
	TS string `json:"ts"`
	models.AuditEntry
}

func runAudit(_ context.Context, args []string, env *devtoolEnv) error {
	fs := newFlagSet("audit", env)
	path := fs.String("log", filepath.Join(config.DefaultBlobDir, "audit.log"), "audit log file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := os.Open(*path)
	if errors.Is(err, os.ErrNotExist) {
		_, err = fmt.Fprintln(env.out, "No audit log found.")
		return err
	}
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	entries, err := readAuditLines(f)
	if err != nil {
		return err
	}

	return writeAuditReport(env.out, entries)
}

func readAuditLines(r io.Reader) ([]auditLine, error) {
	var entries []auditLine
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var e auditLine
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			return nil, fmt.Errorf("audit log line %d: %w", n, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read audit log: %w", err)
	}
	return entries, nil
}

func writeAuditReport(w io.Writer, entries []auditLine) error {
	users := map[string]int{}
	roles := map[string]int{}
	for _, e := range entries {
		users[e.Actor]++
		roles[e.Role]++
	}

	var b strings.Builder
	b.WriteString("=== AUDIT SUMMARY ===\n")
	b.WriteString("Users: " + formatCounts(users) + "\n")
	b.WriteString("Roles: " + formatCounts(roles) + "\n")
	b.WriteString("\n=== TIMELINE ===\n")
	for _, e := range entries {
		ts := e.TS
		if parsed, err := time.Parse(time.RFC3339Nano, e.TS); err == nil {
			ts = parsed.UTC().Format(time.RFC3339)
		}
		line := fmt.Sprintf("%s → %s (%s) %s %s", ts, e.Actor, e.Role, e.Action, e.Filename)
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// formatCounts renders counts by descending count, then name.
func formatCounts(counts map[string]int) string {
	names := slices.SortedFunc(maps.Keys(counts), func(a, b string) int {
		return cmp.Or(cmp.Compare(counts[b], counts[a]), cmp.Compare(a, b))
	})

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%d", name, counts[name]))
	}
	return strings.Join(parts, " ")
}
