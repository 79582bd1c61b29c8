package notify

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"liyu1981.xyz/altitude-guard/pkg/altitude"
	"liyu1981.xyz/altitude-guard/pkg/common"
)

// LogNotifier writes every alert to the structured log. It is the fallback
// when no broker is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, title string, body string, urgent bool) error {
	logger := common.GetCategoryLogger(common.LoggerNameAltitudeCore, common.LoggerCategoryNotify)
	if urgent {
		logger.Warn("Alert", zap.String("title", title), zap.String("body", body), zap.Bool("urgent", urgent))
	} else {
		logger.Info("Alert", zap.String("title", title), zap.String("body", body), zap.Bool("urgent", urgent))
	}
	return nil
}

// Fanout delivers to every notifier and joins their errors.
type Fanout []altitude.Notifier

func (f Fanout) Notify(ctx context.Context, title string, body string, urgent bool) error {
	var errs []error
	for _, n := range f {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, title, body, urgent); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
