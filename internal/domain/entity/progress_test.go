package entity

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressValidate(t *testing.T) {
	tests := []struct {
		name      string
		progress  *Progress
		wantField string
	}{
		{"valid mid position", NewProgress("u1", "n1", "c1", 0.42), ""},
		{"lower bound inclusive", NewProgress("u1", "n1", "c1", 0.0), ""},
		{"upper bound inclusive", NewProgress("u1", "n1", "c1", 1.0), ""},
		{"below range", NewProgress("u1", "n1", "c1", -0.01), "position"},
		{"above range", NewProgress("u1", "n1", "c1", 1.01), "position"},
		{"missing user id", NewProgress("", "n1", "c1", 0.5), "user_id"},
		{"missing novel id", NewProgress("u1", "", "c1", 0.5), "novel_id"},
		{"missing chapter id", NewProgress("u1", "n1", "", 0.5), "chapter_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.progress.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs, tt.wantField)
		})
	}
}

func TestProgressIsFinished(t *testing.T) {
	assert.True(t, NewProgress("u1", "n1", "c1", 1.0).IsFinished())
	assert.False(t, NewProgress("u1", "n1", "c1", 0.99).IsFinished())
}
