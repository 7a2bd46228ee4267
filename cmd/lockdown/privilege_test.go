package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireRoot(t *testing.T) {
	orig := euid
	defer func() { euid = orig }()

	euid = func() int { return 0 }
	assert.NoError(t, requireRoot())

	euid = func() int { return 1000 }
	err := requireRoot()
	assert.ErrorContains(t, err, "must run as root")
	assert.ErrorContains(t, err, "1000")
}
