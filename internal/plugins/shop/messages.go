package shop

// bannerTickMsg advances the carousel. Seq is bumped on every manual slide
// change so a tick scheduled before it is dropped.
type bannerTickMsg struct {
	Seq   uint64
	Epoch uint64
}

// GetEpoch implements plugin.EpochMessage.
func (m bannerTickMsg) GetEpoch() uint64 { return m.Epoch }
