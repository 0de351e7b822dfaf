package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/wpppc/checkout-client-api/models"
)

// Signer builds and verifies the HMAC-SHA256 authentication envelope for a
// single proxy server. The message is the timestamp, the operation-specific
// value fields in their fixed order, then the api key; the field order is
// part of the wire contract and must not be altered on one side only.
type Signer struct {
	Server *models.ProxyServer
}

// Sign produces an envelope for the current time
func (s Signer) Sign(fields ...string) models.Signature {
	return s.SignAt(time.Now().Unix(), fields...)
}

// SignAt produces an envelope for the supplied unix timestamp. Signing is
// deterministic: fixed inputs always yield the same hash.
func (s Signer) SignAt(timestamp int64, fields ...string) models.Signature {
	mac := hmac.New(sha256.New, []byte(s.Server.APISecret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	for _, field := range fields {
		mac.Write([]byte(field))
	}
	mac.Write([]byte(s.Server.APIKey))

	return models.Signature{
		Timestamp: timestamp,
		Hash:      hex.EncodeToString(mac.Sum(nil)),
	}
}

// Verify recomputes the hash for the supplied timestamp and fields and
// compares it to the presented hash in constant time. Any mismatch fails
// closed; the payload must not be trusted in part.
func (s Signer) Verify(presented string, timestamp int64, fields ...string) bool {
	expected := s.SignAt(timestamp, fields...).Hash
	return hmac.Equal([]byte(expected), []byte(presented))
}
