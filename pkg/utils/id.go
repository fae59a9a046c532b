package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a short collision-resistant identifier. IDs carry no
// ordering semantics; uniqueness comes from the underlying UUID.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
