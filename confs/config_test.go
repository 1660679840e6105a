package confs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerAddressDefault(t *testing.T) {
	t.Setenv("PORT", "")
	assert.Equal(t, "0.0.0.0:5000", ServerAddress())
}

func TestServerAddressFromEnv(t *testing.T) {
	t.Setenv("PORT", "3536")
	assert.Equal(t, "0.0.0.0:3536", ServerAddress())
}
