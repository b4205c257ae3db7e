package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{name: "plain slug", slug: "talk-1", wantErr: false},
		{name: "empty", slug: "", wantErr: true},
		{name: "whitespace only", slug: "  ", wantErr: true},
		{name: "contains slash", slug: "talks/1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlug(tt.slug)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSlug)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTalk_SpeakerNames(t *testing.T) {
	talk := Talk{Speakers: []Speaker{{Name: "Ada"}, {Name: "Grace", Bio: "Admiral"}}}
	assert.Equal(t, []string{"Ada", "Grace"}, talk.SpeakerNames())
	assert.Empty(t, Talk{}.SpeakerNames())
}

func TestTalk_HasTranscriptLanguage(t *testing.T) {
	talk := Talk{Languages: []string{"en", "pt-br", "iw"}}

	assert.True(t, talk.HasTranscriptLanguage("en"))
	assert.True(t, talk.HasTranscriptLanguage("EN"))
	assert.True(t, talk.HasTranscriptLanguage("pt-BR"))
	assert.True(t, talk.HasTranscriptLanguage("iw"))
	assert.False(t, talk.HasTranscriptLanguage("he"))
	assert.False(t, talk.HasTranscriptLanguage("fr"))
	assert.False(t, talk.HasTranscriptLanguage(""))
}

func TestTalk_Clone(t *testing.T) {
	original := Talk{
		ID:        7,
		Slug:      "talk-1",
		Speakers:  []Speaker{{Name: "Ada"}},
		Languages: []string{"en"},
		Tags:      []string{"go"},
	}

	clone := original.Clone()
	clone.Speakers[0].Name = "Changed"
	clone.Languages[0] = "fr"
	clone.Tags = append(clone.Tags, "more")

	assert.Equal(t, "Ada", original.Speakers[0].Name)
	assert.Equal(t, []string{"en"}, original.Languages)
	assert.Equal(t, []string{"go"}, original.Tags)
	assert.Equal(t, int64(7), clone.ID)
}

func TestTranscriptFormat_Validate(t *testing.T) {
	for _, f := range KnownFormats {
		assert.NoError(t, f.Validate(), "format %s", f)
	}

	assert.NoError(t, TranscriptFormat("json").Validate())
	assert.ErrorIs(t, TranscriptFormat("").Validate(), ErrInvalidFormat)
	assert.ErrorIs(t, TranscriptFormat("txt/../x").Validate(), ErrInvalidFormat)
}
