package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

func (r repo) executePipe(ctx context.Context, pipe redis.Pipeliner) error {
	cmds, err := pipe.Exec(ctx)
	if err != nil {
		for _, cmd := range cmds {
			if err := cmd.Err(); err != nil {
				return err
			}
		}

		return err
	}

	return nil
}

func (r repo) fieldToBool(field string) bool {
	return field == "1"
}

// fieldToOptionalBool distinguishes an absent hash field from a stored
// false.
func (r repo) fieldToOptionalBool(fields map[string]string, key string) *bool {
	field, ok := fields[key]
	if !ok {
		return nil
	}

	value := r.fieldToBool(field)

	return &value
}
