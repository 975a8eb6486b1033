//go:build !unix && !windows

package filesystem

import "github.com/desertwitch/bestls/internal/schema"

const notAvailable = "N/A"

func formatPermissions(*schema.Metadata) string {
	return notAvailable
}

func (*Handler) resolveOwnership(*schema.Metadata) (string, string) {
	return notAvailable, notAvailable
}
