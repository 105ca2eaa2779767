// Package web embeds the static pages served by the HTTP surface.
package web

import (
	_ "embed"
)

// verifiedPage is the landing page the verification link redirects to.
// It reads the outcome from its query string client-side.
//
//go:embed static/verified.html
var verifiedPage []byte

// VerifiedPage returns the embedded verification landing page.
func VerifiedPage() []byte {
	return verifiedPage
}
