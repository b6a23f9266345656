package ai

import "context"

type Client interface {
	Summarize(ctx context.Context, reportJSON string) (string, error)
}
