package redis

import "fmt"

// Key prefix for all journal data
const keyPrefix = "match3"

// sessionKey returns the Redis key for a session header HASH
func sessionKey(id string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// swipesKey returns the Redis key for the LIST of swipes of a session
func swipesKey(id string) string {
	return fmt.Sprintf("%s:swipes:%s", keyPrefix, id)
}

// recentIndexKey returns the Redis key for the ZSET of session IDs by start order
func recentIndexKey() string {
	return fmt.Sprintf("%s:idx:recent", keyPrefix)
}

// sessionSeqKey returns the Redis key for the session start counter
func sessionSeqKey() string {
	return fmt.Sprintf("%s:seq:session", keyPrefix)
}
