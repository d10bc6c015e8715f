package constvars

const (
	MongoCollectionAvailabilityBlocks = "availability_blocks"
)
