package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricFieldKeysAreStable(t *testing.T) {
	for _, key := range []string{AttrMethod, AttrPath, AttrStatus, AttrSource, AttrErrorKind} {
		assert.NotEmpty(t, key)
	}
}
