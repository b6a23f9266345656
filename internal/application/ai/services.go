package ai

import (
	"context"
	"encoding/json"

	"github.com/jmazoveracode/veracode-target-urls/internal/domain/ai"
	domain "github.com/jmazoveracode/veracode-target-urls/internal/domain/targets"
)

type Service struct {
	client ai.Client
}

func NewService(client ai.Client) *Service {
	return &Service{client: client}
}

// SummarizeRecords asks the AI client for a coverage summary of the
// extracted target records.
func (s *Service) SummarizeRecords(ctx context.Context, recs []domain.TargetRecord) (string, error) {
	b, err := json.Marshal(recs)
	if err != nil {
		return "", err
	}
	return s.client.Summarize(ctx, string(b))
}
