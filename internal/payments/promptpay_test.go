package payments

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRC16KnownVector(t *testing.T) {
	// CRC-16/CCITT-FALSE check value.
	assert.Equal(t, uint16(0x29B1), crc16("123456789"))
}

func TestFormatTargetPhone(t *testing.T) {
	assert.Equal(t, "0066812345678", formatTarget("0812345678"))
}

func TestFormatTargetNationalID(t *testing.T) {
	assert.Equal(t, "1234567890123", formatTarget("1234567890123"))
}

func TestSanitizeTarget(t *testing.T) {
	assert.Equal(t, "0812345678", sanitizeTarget("081-234-5678"))
}

func TestTargetType(t *testing.T) {
	assert.Equal(t, targetTypePhone, targetType("0812345678"))
	assert.Equal(t, targetTypeNationalID, targetType("1234567890123"))
	assert.Equal(t, targetTypeEWallet, targetType("123456789012345"))
}

func TestBuildPayloadStructure(t *testing.T) {
	payload := BuildPayload("0812345678", 150.50)

	assert.True(t, strings.HasPrefix(payload, "000201"), "payload format indicator first")
	assert.Contains(t, payload, "010212", "dynamic POI method for amount payloads")
	assert.Contains(t, payload, promptPayGUID)
	assert.Contains(t, payload, "0066812345678")
	assert.Contains(t, payload, "5802TH")
	assert.Contains(t, payload, "5303764")
	assert.Contains(t, payload, "5406150.50")

	// CRC is the final field: id 63, length 04, four hex digits.
	require.GreaterOrEqual(t, len(payload), 8)
	tail := payload[len(payload)-8:]
	assert.Equal(t, "6304", tail[:4])

	var crc uint16
	_, err := fmt.Sscanf(tail[4:], "%04X", &crc)
	require.NoError(t, err)
	assert.Equal(t, crc16(payload[:len(payload)-4]), crc)
}

func TestBuildPayloadStaticWithoutAmount(t *testing.T) {
	payload := BuildPayload("0812345678", 0)

	assert.Contains(t, payload, "010211", "static POI method when no amount")
	assert.NotRegexp(t, `54\d{2}`, payload[:len(payload)-8], "no amount field")
}

func TestBuildPayloadAmountFormatting(t *testing.T) {
	payload := BuildPayload("0812345678", 100)
	assert.Contains(t, payload, "5406100.00")
}
