package notes

// longPressMsg fires when a pressed row has been held long enough to drag.
type longPressMsg struct {
	Seq   uint64
	Epoch uint64
}

// GetEpoch implements plugin.EpochMessage.
func (m longPressMsg) GetEpoch() uint64 { return m.Epoch }

// undoExpiredMsg dismisses the undo prompt for deletion Seq.
type undoExpiredMsg struct {
	Seq   uint64
	Epoch uint64
}

// GetEpoch implements plugin.EpochMessage.
func (m undoExpiredMsg) GetEpoch() uint64 { return m.Epoch }
