package model

// ScanCheckpoint records how far event scanning has progressed and what it found.
type ScanCheckpoint struct {
	LastScannedBlock uint64      `json:"lastScannedBlock"`
	Scanned          bool        `json:"scanned,omitempty"`
	Addresses        *AddressSet `json:"addresses"`
}

// NewScanCheckpoint returns an empty checkpoint.
func NewScanCheckpoint() ScanCheckpoint {
	return ScanCheckpoint{Addresses: NewAddressSet()}
}

// Clone returns a deep copy so callers can advance it without aliasing.
func (c ScanCheckpoint) Clone() ScanCheckpoint {
	return ScanCheckpoint{
		LastScannedBlock: c.LastScannedBlock,
		Scanned:          c.Scanned,
		Addresses:        c.Addresses.Clone(),
	}
}

// Advance records that blocks through height were scanned. Lower heights are ignored.
func (c *ScanCheckpoint) Advance(height uint64) {
	c.Scanned = true
	if height > c.LastScannedBlock {
		c.LastScannedBlock = height
	}
}

// NextBlock returns the first block still to scan, never below startBlock.
// Checkpoints stored without the scanned flag count as scanned when their
// height is non-zero.
func (c ScanCheckpoint) NextBlock(startBlock uint64) uint64 {
	if !c.Scanned && c.LastScannedBlock == 0 {
		return startBlock
	}
	if next := c.LastScannedBlock + 1; next > startBlock {
		return next
	}
	return startBlock
}
