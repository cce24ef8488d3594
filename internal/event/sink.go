package event

import (
	"context"

	"github.com/ArnoutVos/Firedrive/internal/model"
	"github.com/sirupsen/logrus"
)

// Sink receives delete lifecycle notifications. BeforeDelete may veto by
// returning an error; AfterDelete cannot.
type Sink interface {
	BeforeDelete(ctx context.Context, evctx string, doc *model.Document) error
	AfterDelete(ctx context.Context, evctx string, doc *model.Document)
}

var _ Sink = (Sinks)(nil)

// Sinks fans notifications out in order. The first veto wins and the
// remaining sinks are not asked.
type Sinks []Sink

func (s Sinks) BeforeDelete(ctx context.Context, evctx string, doc *model.Document) error {
	for _, sink := range s {
		if err := sink.BeforeDelete(ctx, evctx, doc); err != nil {
			return err
		}
	}

	return nil
}

func (s Sinks) AfterDelete(ctx context.Context, evctx string, doc *model.Document) {
	for _, sink := range s {
		sink.AfterDelete(ctx, evctx, doc)
	}
}

var _ Sink = (*LogSink)(nil)

// LogSink records delete notifications without ever vetoing.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (l *LogSink) BeforeDelete(ctx context.Context, evctx string, doc *model.Document) error {
	logrus.Infof("%s: deleting document %d (%s)", evctx, doc.ID, doc.Title)
	return nil
}

func (l *LogSink) AfterDelete(ctx context.Context, evctx string, doc *model.Document) {
	logrus.Infof("%s: deleted document %d", evctx, doc.ID)
}
