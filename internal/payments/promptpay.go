package payments

import (
	"fmt"
	"strings"
)

// PromptPay merchant-presented QR payloads, per the EMVCo QRCPS spec and the
// Bank of Thailand PromptPay profile. A payload is a sequence of
// id(2)+len(2)+value fields ending in a CRC-16 checksum over everything
// before it.

const (
	idPayloadFormat       = "00"
	idPOIMethod           = "01"
	idMerchantInfo        = "29"
	idCountryCode         = "58"
	idTransactionCurrency = "53"
	idTransactionAmount   = "54"
	idCRC                 = "63"

	payloadFormatEMVQR = "01"
	poiMethodStatic    = "11"
	poiMethodDynamic   = "12"

	merchantInfoTemplateIDGUID = "00"
	promptPayGUID              = "A000000677010111"

	targetTypePhone      = "01"
	targetTypeNationalID = "02"
	targetTypeEWallet    = "03"

	countryCodeTH   = "TH"
	currencyCodeTHB = "764"
)

// BuildPayload assembles a PromptPay payload for the given merchant target
// (phone number, national id or e-wallet id) and amount in THB. A zero
// amount produces a static (amount-less) payload.
func BuildPayload(target string, amount float64) string {
	sanitized := sanitizeTarget(target)

	var fields []string
	fields = append(fields, field(idPayloadFormat, payloadFormatEMVQR))
	if amount > 0 {
		fields = append(fields, field(idPOIMethod, poiMethodDynamic))
	} else {
		fields = append(fields, field(idPOIMethod, poiMethodStatic))
	}
	fields = append(fields, field(idMerchantInfo,
		field(merchantInfoTemplateIDGUID, promptPayGUID)+
			field(targetType(sanitized), formatTarget(sanitized)),
	))
	fields = append(fields, field(idCountryCode, countryCodeTH))
	fields = append(fields, field(idTransactionCurrency, currencyCodeTHB))
	if amount > 0 {
		fields = append(fields, field(idTransactionAmount, fmt.Sprintf("%.2f", amount)))
	}

	payload := strings.Join(fields, "")
	toChecksum := payload + idCRC + "04"
	return payload + field(idCRC, fmt.Sprintf("%04X", crc16(toChecksum)))
}

func field(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

func sanitizeTarget(target string) string {
	var b strings.Builder
	for _, r := range target {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func targetType(sanitized string) string {
	switch {
	case len(sanitized) >= 15:
		return targetTypeEWallet
	case len(sanitized) >= 13:
		return targetTypeNationalID
	default:
		return targetTypePhone
	}
}

// formatTarget converts a local phone number into the 13-digit
// country-prefixed form ("0812345678" -> "0066812345678"). National ids and
// e-wallet ids are already long enough and pass through unchanged.
func formatTarget(sanitized string) string {
	if len(sanitized) >= 13 {
		return sanitized
	}
	withCountry := sanitized
	if strings.HasPrefix(withCountry, "0") {
		withCountry = "66" + withCountry[1:]
	}
	padded := "0000000000000" + withCountry
	return padded[len(padded)-13:]
}

// crc16 computes CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF) over data.
func crc16(data string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
