// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package langtag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glossabay/glossa/pkg/langtag"
)

/*
TestDisplay verifies the best-effort name resolution and the raw-tag fallback.
*/
func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{"english", "en", "English"},
		{"french", "fr", "French"},
		{"empty_passthrough", "", ""},
		{"garbage_passthrough", "!!not-a-tag!!", "!!not-a-tag!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, langtag.Display(tt.tag))
		})
	}
}
