package entity

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChapterValidate(t *testing.T) {
	tests := []struct {
		name      string
		chapter   *Chapter
		wantField string
	}{
		{"valid", NewChapter("novel-1", 1, "Docking", "Content."), ""},
		{"high index valid", NewChapter("novel-1", 42, "Later", "Content."), ""},
		{"zero index", NewChapter("novel-1", 0, "Docking", "Content."), "index"},
		{"negative index", NewChapter("novel-1", -3, "Docking", "Content."), "index"},
		{"missing novel id", NewChapter("", 1, "Docking", "Content."), "novel_id"},
		{"missing title", NewChapter("novel-1", 1, "", "Content."), "title"},
		{"missing content", NewChapter("novel-1", 1, "Docking", ""), "content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.chapter.Validate()
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

func TestChapterWordCount(t *testing.T) {
	c := NewChapter("novel-1", 1, "t", "霓虹下的码头")
	assert.Equal(t, 6, c.WordCount())
}
