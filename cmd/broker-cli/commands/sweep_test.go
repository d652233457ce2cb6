package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/afterquery/assessment-broker/shared"
	"github.com/stretchr/testify/assert"
)

func TestPrintSweepResult(t *testing.T) {
	t.Run("should render the counters as a table", func(t *testing.T) {
		var out bytes.Buffer
		printSweepResult(&out, shared.SweepResult{Due: 3, Expired: 2, Archived: 1, Repaired: 4}, 1500*time.Millisecond)

		assert.Contains(t, out.String(), "EXPIRED")
		assert.Contains(t, out.String(), "1.5s")
		assert.Contains(t, out.String(), "REPAIRED TOKENS")
	})
}
