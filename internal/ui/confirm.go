package ui

// DeleteConfirmation is the modal gate in front of tenant removal. A delete
// intent parks exactly one pending target id; only a confirmation releases it
// for the actual removal, and cancelling clears the gate without removing
// anything.
type DeleteConfirmation struct {
	pendingID string
	open      bool
}

// Request records a delete intent and opens the dialog. A second request
// replaces the pending target.
func (d *DeleteConfirmation) Request(id string) {
	d.pendingID = id
	d.open = true
}

// Open reports whether the dialog is showing.
func (d *DeleteConfirmation) Open() bool {
	return d.open
}

// PendingID returns the parked target id, or "" when the gate is closed.
func (d *DeleteConfirmation) PendingID() string {
	if !d.open {
		return ""
	}
	return d.pendingID
}

// Confirm closes the dialog and hands back the target id to delete. The
// second return is false when nothing was pending.
func (d *DeleteConfirmation) Confirm() (string, bool) {
	if !d.open || d.pendingID == "" {
		d.Cancel()
		return "", false
	}
	id := d.pendingID
	d.Cancel()
	return id, true
}

// Cancel dismisses the dialog without removing anything.
func (d *DeleteConfirmation) Cancel() {
	d.pendingID = ""
	d.open = false
}
