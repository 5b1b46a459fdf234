// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

/*
Package history records translation outcomes per user.

Every resolved translation — accepted or degraded — is appended to the
requesting user's history. Recording is wired behind the translation
handler as a best-effort sink: a history failure never affects the
translation response itself.
*/
package history

import "time"

// Entry is one recorded translation outcome.
type Entry struct {
	ID         string    `json:"id"`
	UserEmail  string    `json:"-"`
	Text       string    `json:"text"`
	Translated string    `json:"translated"`
	Source     string    `json:"source"`
	Target     string    `json:"target"`
	Provider   string    `json:"api"`
	Success    bool      `json:"success"`
	CreatedAt  time.Time `json:"createdAt"`
}
