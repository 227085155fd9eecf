// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-case-vault/models"
)

const expiryLayout = "2006-01-02 15:04 MST"

// header is the identity line shown above every signed-in screen.
func (m appModel) header() string {
	var b strings.Builder
	b.WriteString("Signed in as ")
	b.WriteString(describeIdentity(m.identity))

	switch {
	case m.expiresAt.IsZero():
		b.WriteString(" · no expiry")
	case !m.now().Before(m.expiresAt):
		b.WriteString(" · ")
		b.WriteString(expiredStyle.Render("EXPIRED"))
	default:
		b.WriteString(" · expires ")
		b.WriteString(m.expiresAt.Local().Format(expiryLayout))
	}

	if m.storeStatus != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.storeStatus))
	}

	return b.String()
}

func describeIdentity(identity models.Identity) string {
	return fmt.Sprintf("%s (%s)", identity.Subject, identity.Role)
}

func storeStatusLine(msg StoreStatusMsg) string {
	if msg.Err != nil {
		return "blob store: offline"
	}
	name := msg.Status.Service
	if name == "" {
		name = "blob store"
	}
	return fmt.Sprintf("%s: %s (checked %s)", name, msg.Status.Status, time.Now().Format("15:04:05"))
}
