package middleware

import (
	"fmt"
	"strings"
)

// Input validation for the two proxy endpoints

// maxImageBytes caps the decoded-equivalent size of an uploaded image payload.
// Base64 inflates by 4/3, so this is checked against the encoded length.
const maxImageBytes = 8 << 20

// maxMessageLen caps a chat message.
const maxMessageLen = 4000

// ValidateImageData checks that the payload is a data URI carrying a
// supported image type and is not unreasonably large.
func ValidateImageData(imageData string) error {
	if imageData == "" {
		return fmt.Errorf("imageData is required")
	}

	rest, ok := strings.CutPrefix(imageData, "data:")
	if !ok {
		return fmt.Errorf("imageData must be a data URI")
	}

	mime, _, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return fmt.Errorf("imageData must be base64-encoded")
	}

	if !isSupportedImageMIME(mime) {
		return fmt.Errorf("unsupported image type: %s (allowed: jpeg, png, webp)", mime)
	}

	if len(imageData) > maxImageBytes*4/3 {
		return fmt.Errorf("image too large (max %d bytes)", maxImageBytes)
	}

	return nil
}

func isSupportedImageMIME(m string) bool {
	switch strings.ToLower(strings.TrimSpace(m)) {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		return true
	}
	return false
}

// ValidateChatMessage checks the free-text question.
func ValidateChatMessage(msg string) error {
	if strings.TrimSpace(msg) == "" {
		return fmt.Errorf("userMessage is required")
	}
	if len(msg) > maxMessageLen {
		return fmt.Errorf("userMessage too long (max %d characters)", maxMessageLen)
	}
	return nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}
