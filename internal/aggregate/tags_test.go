package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTags(t *testing.T) {
	assert.Equal(t, []string{"setup", "meeting"},
		ExtractTags("worked on #setup and #meeting stuff"))
	assert.Empty(t, ExtractTags(""))
	assert.Empty(t, ExtractTags("no tags here"))
	assert.Equal(t, []string{"a", "b", "a"}, ExtractTags("#a #b #a"))
	assert.Equal(t, []string{"deploy_v2"}, ExtractTags("shipping #deploy_v2 today"))
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "worked on and stuff",
		StripTags("worked on #setup and #meeting stuff"))
	assert.Equal(t, "", StripTags("#only #tags"))
	assert.Equal(t, "plain comment", StripTags("plain comment"))
	assert.Equal(t, "", StripTags(""))
}
