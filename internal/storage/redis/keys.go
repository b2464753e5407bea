package redis

import "fmt"

// Key prefix for all account data
const keyPrefix = "accounts"

// userKey returns the Redis key for a User record
func userKey(username string) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, username)
}
