package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automatalab/regexfsm/internal/config"
)

func TestShouldFailOnMismatch(t *testing.T) {
	assert.False(t, shouldFailOnMismatch(nil), "a missing config should not turn warnings into failures")
	assert.False(t, shouldFailOnMismatch(config.Default()), "default config is non-strict")
	assert.True(t, shouldFailOnMismatch(&config.Config{StrictEquivalence: true}))
}
