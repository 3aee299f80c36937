package page

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Lifecycle(t *testing.T) {
	s := NewLoading[[]string]()
	assert.True(t, s.Loading())
	assert.False(t, s.Settled())

	ready := s.Resolve([]string{"a"}, nil)
	assert.Equal(t, Ready, ready.Phase)
	assert.Equal(t, []string{"a"}, ready.Data)
	assert.NoError(t, ready.Err)
	assert.True(t, ready.Settled())

	boom := errors.New("boom")
	failed := s.Resolve([]string{"partial"}, boom)
	assert.Equal(t, Failed, failed.Phase)
	assert.Equal(t, []string{"partial"}, failed.Data)
	assert.ErrorIs(t, failed.Err, boom)
	assert.True(t, failed.Settled())
}

func TestForm_Lifecycle(t *testing.T) {
	type values struct{ Name string }

	f := NewForm(values{Name: "Acme"})
	assert.Equal(t, FormIdle, f.Phase)
	assert.True(t, f.Editable())

	f = f.Submit()
	assert.Equal(t, FormSubmitting, f.Phase)
	assert.False(t, f.Editable())

	failed := f.Finish(errors.New("rejected"))
	assert.Equal(t, FormFailed, failed.Phase)
	assert.Equal(t, "Acme", failed.Values.Name)
	assert.True(t, failed.Editable())

	ok := f.Finish(nil)
	assert.Equal(t, FormSucceeded, ok.Phase)
}

func TestPhaseStrings(t *testing.T) {
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "submitting", FormSubmitting.String())
}
