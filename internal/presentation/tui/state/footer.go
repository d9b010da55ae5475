package state

import (
	"fmt"
	"strings"
)

// Tagline closes the footer under the copyright line.
const Tagline = "Generate QR codes for URLs, text, contact info, and more."

// FooterText returns the footer content: status, help, the copyright line
// and the tagline.
func FooterText(statusMessage, helpText string, year int) string {
	lines := make([]string, 0, 4)
	if status := strings.TrimSpace(statusMessage); status != "" {
		lines = append(lines, status)
	}
	if helpText != "" {
		lines = append(lines, helpText)
	}
	lines = append(lines, fmt.Sprintf("© %d QR Code Generator. All rights reserved.", year), Tagline)
	return strings.Join(lines, "\n")
}
