package services

import (
	"time"

	"skyzone-backend/internal/database"
)

const denylistPrefix = "denylist:"

// AddToDenylist revokes a token until it would have expired. Without Redis
// there is nowhere to record the revocation; the token simply runs out on
// its own exp claim.
func AddToDenylist(tokenString string, expiration time.Duration) error {
	if database.RedisClient == nil {
		return nil
	}
	key := denylistPrefix + tokenString
	return database.RedisClient.Set(database.Ctx, key, 1, expiration).Err()
}

func IsDenylisted(tokenString string) (bool, error) {
	if database.RedisClient == nil {
		return false, nil
	}
	key := denylistPrefix + tokenString
	val, err := database.RedisClient.Get(database.Ctx, key).Result()
	if err != nil {
		if err.Error() == "redis: nil" { // key does not exist
			return false, nil
		}
		return false, err
	}
	return val != "", nil
}
