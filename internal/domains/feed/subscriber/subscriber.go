package subscriber

import (
	"context"
	"fmt"

	"quickcourt/internal/domains/feed/model"
	"quickcourt/internal/domains/feed/service"
	notificationModel "quickcourt/internal/domains/notification/model"
	notificationService "quickcourt/internal/domains/notification/service"

	"github.com/rs/zerolog/log"
)

const TitleNewFacility = "New facility available"

type notifier struct {
	center notificationService.Center
}

// NewNotifier raises one info notification per facility a refresh added.
func NewNotifier(center notificationService.Center) service.Subscriber {
	return &notifier{center: center}
}

func (n *notifier) Name() string {
	return "notifier"
}

func (n *notifier) OnDiff(ctx context.Context, diff model.Diff) {
	for _, facility := range diff.AddedFacilities {
		n.center.Push(ctx, notificationModel.Draft{
			Type:    notificationModel.TypeInfo,
			Title:   TitleNewFacility,
			Message: fmt.Sprintf("%s in %s", facility.Name, facility.Location),
		})
	}
}

type logger struct{}

// NewLogger records every diff, including empty ones.
func NewLogger() service.Subscriber {
	return logger{}
}

func (logger) Name() string {
	return "logger"
}

func (logger) OnDiff(_ context.Context, diff model.Diff) {
	log.Info().
		Strs("added", diff.Added).
		Strs("removed", diff.Removed).
		Bool("changed", !diff.IsEmpty()).
		Msg("catalog refreshed")
}
