package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	docDate := time.Date(2024, 11, 3, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 11, 3, 9, 15, 27, 987654321, time.UTC)

	token := EncodeToken(docDate, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDocDate, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, docDate, decodedDocDate, "Document date should survive the round trip")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at should survive the round trip")

	// Zero times are valid cursor values too.
	zero := time.Time{}
	decodedZeroDate, decodedZeroCreated, err := DecodeToken(EncodeToken(zero, zero))
	assert.NoError(t, err)
	assert.Equal(t, zero, decodedZeroDate)
	assert.Equal(t, zero, decodedZeroCreated)

	now := time.Now().UTC()
	decodedNowDate, decodedNowCreated, err := DecodeToken(EncodeToken(now, now))
	assert.NoError(t, err)
	assert.True(t, now.Equal(decodedNowDate))
	assert.True(t, now.Equal(decodedNowCreated))
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	// Valid base64 but no separator between the two timestamps.
	noSeparator := base64.StdEncoding.EncodeToString([]byte("2024-11-03T00:00:00Z"))
	_, _, err = DecodeToken(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Separator present but the first field is not a timestamp.
	badDate := base64.StdEncoding.EncodeToString([]byte("notadate|2024-11-03T09:15:27.987654321Z"))
	_, _, err = DecodeToken(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "document date parse")
}

func TestEncodeDecodeDateBasedToken(t *testing.T) {
	createdAt := time.Date(2024, 11, 3, 9, 15, 27, 0, time.UTC)

	decoded, err := DecodeDateBasedToken(EncodeDateBasedToken(createdAt))
	assert.NoError(t, err)
	assert.Equal(t, createdAt, decoded)

	now := time.Now().UTC()
	decodedNow, err := DecodeDateBasedToken(EncodeDateBasedToken(now))
	assert.NoError(t, err)
	assert.True(t, now.Equal(decodedNow))
}

func TestDecodeDateBasedTokenError(t *testing.T) {
	_, err := DecodeDateBasedToken("%%% not base64 %%%")
	assert.Error(t, err)

	notADate := base64.StdEncoding.EncodeToString([]byte("yesterday"))
	_, err = DecodeDateBasedToken(notADate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")
}
