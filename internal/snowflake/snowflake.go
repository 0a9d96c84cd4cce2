// Package snowflake issues the IDs used for notification history rows.
package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

// Init initializes the generator node. The console normally runs as a
// single instance, so node ID 0 is fine; give each instance its own ID
// (0-1023) if that ever changes.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	node = n
	return nil
}

// NextID generates a new unique snowflake ID.
func NextID() int64 {
	return node.Generate().Int64()
}
