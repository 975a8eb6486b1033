//go:build windows

package filesystem

import "github.com/desertwitch/bestls/internal/schema"

func formatPermissions(meta *schema.Metadata) string {
	if meta.ReadOnly {
		return "r--"
	}

	return "rw-"
}

func (*Handler) resolveOwnership(*schema.Metadata) (string, string) {
	return "Owner", "Group"
}
