package domain

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Fingerprint returns a stable 16 hex digit digest of the plan.
// Structurally identical plans always produce the same fingerprint because
// encoding/json writes struct fields in declaration order and map keys sorted.
func Fingerprint(plan *BuildPlan) (string, error) {
	data, err := json.Marshal(plan)
	if err != nil {
		return "", zerr.Wrap(err, ErrFingerprintFailed.Error())
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}
