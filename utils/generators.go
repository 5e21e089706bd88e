package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateReceiptNumber generates an official receipt number, e.g. OR-2026-0048291057
func GenerateReceiptNumber() string {
	return fmt.Sprintf("%s-%d-%s", ReceiptNumberPrefix, time.Now().Year(),
		generateRandomString(NumberCharset, NumberLength))
}

// GenerateStudentNumber generates a student reference number
func GenerateStudentNumber() string {
	return fmt.Sprintf("%s-%s", StudentNumberPrefix,
		generateRandomString(NumberCharset, NumberLength))
}

// generateRandomString generates a random string with given charset and length
func generateRandomString(charset string, length int) string {
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
