package api

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entitled/models"
)

// stuckReader returns the same error on every read, like a dropped
// connection mid-body.
type stuckReader struct{}

func (stuckReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestReadPartsStopsOnPersistentError(t *testing.T) {
	email := models.Email{ID: "42"}
	readParts(&email, stuckReader{}, "frontier")

	assert.Empty(t, email.Content)
	assert.False(t, email.HasAttachments)
}

func TestReadPartsCollectsTextAndAttachments(t *testing.T) {
	body := strings.Join([]string{
		"--frontier",
		"Content-Type: text/plain",
		"",
		"Closing scheduled for Friday.",
		"--frontier",
		"Content-Type: application/pdf",
		`Content-Disposition: attachment; filename="deed.pdf"`,
		"",
		"%PDF-1.4",
		"--frontier--",
		"",
	}, "\r\n")

	email := models.Email{ID: "7"}
	readParts(&email, strings.NewReader(body), "frontier")

	assert.Equal(t, "Closing scheduled for Friday.", email.Content)
	require.True(t, email.HasAttachments)
	require.Len(t, email.Attachments, 1)
	assert.Equal(t, "deed.pdf", email.Attachments[0].Name)
	assert.Equal(t, "7-1", email.Attachments[0].ID)
}
