package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"language-assistant/internal/qna"
)

// Ask queries the knowledge base, serving repeated questions from the cache.
func (uc *implUseCase) Ask(ctx context.Context, input qna.AskInput) (qna.AskOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return qna.AskOutput{}, qna.ErrEmptyQuestion
	}

	key := cacheKey(question)
	if uc.cache != nil {
		if answers, ok := uc.cache.Get(key); ok {
			uc.l.Debugf(ctx, "Ask: cache hit for %q", question)
			return qna.AskOutput{Question: question, Answers: slices.Clone(answers), Cached: true}, nil
		}
	}

	candidates, err := uc.answerer.GetAnswers(ctx, question)
	if err != nil {
		uc.l.Errorf(ctx, "Ask: knowledge base query failed: %v", err)
		return qna.AskOutput{}, fmt.Errorf("failed to get answers: %w", err)
	}

	answers := make([]qna.Answer, 0, len(candidates))
	for _, c := range candidates {
		answers = append(answers, qna.Answer{
			Answer:     c.Answer,
			Confidence: c.Confidence,
			Source:     c.Source,
		})
	}
	uc.l.Infof(ctx, "Ask: %d answer(s) for %q", len(answers), question)

	if uc.cache != nil {
		uc.cache.Add(key, slices.Clone(answers))
	}

	return qna.AskOutput{Question: question, Answers: answers}, nil
}

// cacheKey folds case and internal whitespace so trivially different spellings share an entry.
func cacheKey(question string) string {
	return strings.ToLower(strings.Join(strings.Fields(question), " "))
}
