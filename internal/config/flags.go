// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a dev server listen address in format [host]:[port]
//	-s blob store address used by the client
//	-d session database path
//	-driver session database driver (sqlite, bolt)
//	-f blob directory of the dev server
//	-audit-log audit trail file of the dev server
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-session-id session scope override
//	-key-file default key file path
//	-k default number of search results
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var adapterAddress string
	var sessionDSN, sessionDriver string
	var blobDir, auditLog string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var sessionID string
	var keyFile string
	var searchK int

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&adapterAddress, "s", "", "Blob store address")
	flag.StringVar(&sessionDSN, "d", "", "Session database path")
	flag.StringVar(&sessionDriver, "driver", "", "Session database driver (sqlite, bolt)")
	flag.StringVar(&blobDir, "f", "", "Blob directory")
	flag.StringVar(&auditLog, "audit-log", "", "Audit log path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&sessionID, "session-id", "", "Session scope override")
	flag.StringVar(&keyFile, "key-file", "", "Default key file path")
	flag.IntVar(&searchK, "k", 0, "Default number of search results")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
			SessionID:     sessionID,
			KeyFile:       keyFile,
			SearchK:       searchK,
		},
		Storage: Storage{
			Session: Session{
				Driver: sessionDriver,
				DSN:    sessionDSN,
			},
			Files: Files{
				BlobDir:  blobDir,
				AuditLog: auditLog,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
