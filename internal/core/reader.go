package core

// Reader defines the interface the presentation layer drives.
type Reader interface {
	// Session control
	Start(text string) bool
	Resume() bool
	Stop()
	Reset()

	// Rate control
	SetRate(wpm int) error

	// State queries
	Snapshot() Snapshot
	Subscribe() (<-chan Snapshot, func())
}
