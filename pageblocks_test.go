package pageblocks_test

import (
	"testing"

	"github.com/mjaros/pageblocks"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pageblocks.Errorf(pageblocks.ENOTFOUND, "document %q not found", "test")

	assert.Equal(t, pageblocks.ENOTFOUND, pageblocks.ErrorCode(err))
	assert.Equal(t, "document \"test\" not found", pageblocks.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pageblocks.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pageblocks.ErrorMessage(nil))
}
