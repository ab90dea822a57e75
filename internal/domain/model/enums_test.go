package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRequestType(t *testing.T) {
	tests := []struct {
		input    string
		expected RequestType
		wantErr  bool
	}{
		{input: "INVITE", expected: RequestTypeInvite},
		{input: "invite", expected: RequestTypeInvite},
		{input: "JOIN_REQUEST", expected: RequestTypeJoinRequest},
		{input: "FRIEND", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRequestType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewTagSet(t *testing.T) {
	assert.Equal(t, TagSet("BACKEND,DESIGN"), NewTagSet([]string{"backend", " design "}))
	assert.Equal(t, TagSet(""), NewTagSet(nil))
	assert.Equal(t, TagSet("AI"), NewTagSet([]string{"", "ai", "  "}))
}

func TestTagSet_Tags(t *testing.T) {
	assert.Equal(t, []string{"BACKEND", "DESIGN"}, TagSet("BACKEND,DESIGN").Tags())
	assert.Nil(t, TagSet("").Tags())
}

func TestTagSet_Contains(t *testing.T) {
	set := NewTagSet([]string{"backend", "design"})
	assert.True(t, set.Contains("BACKEND"))
	assert.True(t, set.Contains("design"))
	assert.False(t, set.Contains("pm"))
	assert.False(t, TagSet("").Contains("backend"))
}

func TestTagSet_Overlap(t *testing.T) {
	a := NewTagSet([]string{"backend", "design", "ai"})
	b := NewTagSet([]string{"design", "ai", "pm"})
	assert.Equal(t, 2, a.Overlap(b))
	assert.Equal(t, 0, a.Overlap(TagSet("")))
	assert.Equal(t, 0, TagSet("").Overlap(b))
}
