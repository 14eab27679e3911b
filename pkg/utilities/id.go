package utilities

import (
	"github.com/bwmarrin/snowflake"
	"github.com/segmentio/ksuid"
)

// NewKSUID generates a new globally unique KSUID string. Used as the
// primary key for accounts and service-order records.
func NewKSUID() string {
	return ksuid.New().String()
}

// NewSnowflakeID generates a snowflake ID string using the provided node ID.
// If the node cannot be initialized, it falls back to a KSUID string so a
// unique ID is always returned. Used for per-request correlation ids.
func NewSnowflakeID(nodeID int64) string {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return NewKSUID()
	}
	return node.Generate().String()
}
