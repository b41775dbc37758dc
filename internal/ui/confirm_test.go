package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPurpose: Verify the delete gate only releases a confirmed target
// Scope: ui.DeleteConfirmation
// Expected Result: Confirm returns the pending id exactly once; Cancel
// clears the gate without releasing anything
// Test Case ID: DRM-14
func TestDeleteConfirmation_ConfirmReleasesTarget(t *testing.T) {
	var d DeleteConfirmation

	d.Request("t-1")
	assert.True(t, d.Open())
	assert.Equal(t, "t-1", d.PendingID())

	id, ok := d.Confirm()
	assert.True(t, ok)
	assert.Equal(t, "t-1", id)
	assert.False(t, d.Open())

	id, ok = d.Confirm()
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestDeleteConfirmation_CancelClearsPending(t *testing.T) {
	var d DeleteConfirmation

	d.Request("t-1")
	d.Cancel()

	assert.False(t, d.Open())
	assert.Empty(t, d.PendingID())

	id, ok := d.Confirm()
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestDeleteConfirmation_SecondRequestReplacesTarget(t *testing.T) {
	var d DeleteConfirmation

	d.Request("t-1")
	d.Request("t-2")

	id, ok := d.Confirm()
	assert.True(t, ok)
	assert.Equal(t, "t-2", id)
}

func TestDeleteConfirmation_PendingIDHiddenWhenClosed(t *testing.T) {
	var d DeleteConfirmation
	d.pendingID = "stale"

	assert.Empty(t, d.PendingID())
}
