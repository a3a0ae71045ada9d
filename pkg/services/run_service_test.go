package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRunID(t *testing.T) {
	id := NewRunID("period_merge")
	assert.Regexp(t, regexp.MustCompile(`^period_merge_[0-9a-f]{12}$`), id)
	assert.NotEqual(t, id, NewRunID("period_merge"))
}

func TestNewClusterID(t *testing.T) {
	id := NewClusterID()
	assert.Regexp(t, regexp.MustCompile(`^halfday_[0-9a-f]{8}$`), id)
	assert.NotEqual(t, id, NewClusterID())
}
