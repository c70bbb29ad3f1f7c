package input

import (
	"context"

	"watcher/internal/domain/entity"
)

type Moderator interface {
	Moderate(ctx context.Context, url string) entity.Outcome
}
