package constvars

const (
	SlotCacheKeyFormat           = "slots:%s:%s:%d:%d:%d:%d"
	SlotCacheGenerationKeyFormat = "slots:gen:%s"
	SlotWorkerLeaderLockKey      = "slotgen:leader"
	SlotSnapshotObjectFormat     = "snapshots/%s.json"
)

const (
	EventAvailabilityChanged = "availability.changed"
	EventSlotsComputed       = "slots.computed"
	EventSnapshotGenerated   = "slots.snapshot_generated"
)
