package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	defer func() { Version, Commit, Date = oldVersion, oldCommit, oldDate }()

	Version, Commit, Date = "1.2.0", "abc123", "2024-05-01"
	assert.Equal(t, "mineflake 1.2.0 (abc123, 2024-05-01)", String())
}
