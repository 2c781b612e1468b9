package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/roboco-io/galaxymsbt/internal/ir"
)

// TranslateDocument translates every non-empty message of doc with p and
// returns a new document. Labels and attributes are kept. Each result is
// checked with CheckTags; the first failure aborts.
func TranslateDocument(ctx context.Context, p Provider, doc *ir.Document, opts TranslateOptions, logger *slog.Logger) (*ir.Document, TokenUsage, error) {
	var usage TokenUsage
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	out := ir.NewDocument(doc.Charset, doc.Tables)
	out.Version = doc.Version
	for _, m := range doc.Messages {
		translated := *m
		if m.Attributes != nil {
			a := *m.Attributes
			translated.Attributes = &a
		}

		if strings.TrimSpace(m.Text) != "" {
			if err := ctx.Err(); err != nil {
				return nil, usage, err
			}
			res, err := p.Translate(ctx, m.Text, opts)
			if err != nil {
				return nil, usage, fmt.Errorf("message %s: %w", m.Label, err)
			}
			usage.Add(res.Usage)

			text := strings.TrimSpace(res.Text)
			if err := CheckTags(m.Text, text); err != nil {
				return nil, usage, fmt.Errorf("message %s: %w", m.Label, err)
			}
			translated.Text = text
			logger.Debug("translated message",
				"label", m.Label,
				"model", res.Model,
				"output_tokens", res.Usage.OutputTokens,
			)
		}
		out.Messages = append(out.Messages, &translated)
	}
	return out, usage, nil
}
