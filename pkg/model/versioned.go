package model

// VersionedAddressBook is an address book with an undo/redo history of
// committed snapshots.
//
// Invariant: 0 <= current < len(history). Committing truncates any
// redoable snapshots past the current pointer before appending, so a
// commit after an undo discards the redo branch.
type VersionedAddressBook struct {
	*AddressBook
	history []*AddressBook
	current int
}

// NewVersionedAddressBook starts a history with a copy of the initial
// state.
func NewVersionedAddressBook(initial *AddressBook) *VersionedAddressBook {
	return &VersionedAddressBook{
		AddressBook: initial.Copy(),
		history:     []*AddressBook{initial.Copy()},
		current:     0,
	}
}

// Commit snapshots the live state onto the history. Call it once per
// successful externally-visible command so undo stays command-grained.
func (v *VersionedAddressBook) Commit() {
	v.history = append(v.history[:v.current+1], v.AddressBook.Copy())
	v.current++
}

// Undo restores the previous committed snapshot.
func (v *VersionedAddressBook) Undo() error {
	if !v.CanUndo() {
		return ErrNoUndoableState
	}
	v.current--
	v.AddressBook.ResetData(v.history[v.current])
	return nil
}

// Redo restores the next committed snapshot.
func (v *VersionedAddressBook) Redo() error {
	if !v.CanRedo() {
		return ErrNoRedoableState
	}
	v.current++
	v.AddressBook.ResetData(v.history[v.current])
	return nil
}

// CanUndo reports whether an earlier snapshot exists.
func (v *VersionedAddressBook) CanUndo() bool { return v.current > 0 }

// CanRedo reports whether a later snapshot exists.
func (v *VersionedAddressBook) CanRedo() bool { return v.current < len(v.history)-1 }
