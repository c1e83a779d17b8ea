package server

import (
	"fmt"
	"strings"

	"prode-service/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving
// from the instance when not explicitly configured. Used across server
// wiring and the provider factory so metrics/logs name providers
// consistently.
func normalizeProviderName(raw string, provider providers.FixtureProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
