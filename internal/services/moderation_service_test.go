package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFilterOnlyService() *ModerationService {
	// nil db is fine for the pattern-only paths
	return NewModerationService(nil)
}

func TestFilterContentCleanText(t *testing.T) {
	ms := newFilterOnlyService()

	ok, reason := ms.FilterContent("Selling a barely used road bike, great condition.")
	assert.True(t, ok)
	assert.Empty(t, reason)

	ok, _ = ms.FilterContent("")
	assert.True(t, ok, "empty text passes the filter")
}

func TestFilterContentBannedWords(t *testing.T) {
	ms := newFilterOnlyService()

	ok, reason := ms.FilterContent("this is such a scam")
	assert.False(t, ok)
	assert.Equal(t, "inappropriate_language", reason)

	// Substrings inside longer words are not matched.
	ok, _ = ms.FilterContent("I love scampi pasta")
	assert.True(t, ok)
}

func TestFilterContentURLs(t *testing.T) {
	ms := newFilterOnlyService()

	ok, reason := ms.FilterContent("check out https://example.com/deal")
	assert.False(t, ok)
	assert.Equal(t, "url_not_allowed", reason)

	ok, reason = ms.FilterContent("visit www.example.com now")
	assert.False(t, ok)
	assert.Equal(t, "url_not_allowed", reason)
}

func TestFilterContentContactInfo(t *testing.T) {
	ms := newFilterOnlyService()

	ok, reason := ms.FilterContent("email me at someone@example.org")
	assert.False(t, ok)
	assert.Equal(t, "contact_info_not_allowed", reason)

	ok, reason = ms.FilterContent("call 555-123-4567 anytime")
	assert.False(t, ok)
	assert.Equal(t, "contact_info_not_allowed", reason)
}

func TestFilterContentSpamPatterns(t *testing.T) {
	ms := newFilterOnlyService()

	ok, reason := ms.FilterContent("soooooo good")
	assert.False(t, ok)
	assert.Equal(t, "spam_detected", reason)

	ok, reason = ms.FilterContent("AMAZING OFFER TODAY HURRY LIMITED STOCK")
	assert.False(t, ok)
	assert.Equal(t, "excessive_caps", reason)
}

func TestGetRejectionMessage(t *testing.T) {
	ms := newFilterOnlyService()

	assert.Equal(t, "URLs and web links are not allowed.", ms.GetRejectionMessage("url_not_allowed"))
	assert.Equal(t, "Your post does not meet our community guidelines.", ms.GetRejectionMessage("unknown_reason"))
}

func TestContainsProfanity(t *testing.T) {
	ms := newFilterOnlyService()

	assert.True(t, ms.ContainsProfanity("what a scam"))
	assert.False(t, ms.ContainsProfanity("what a bargain"))
}
