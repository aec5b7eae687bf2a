package tasks

import (
	"context"
	"time"

	"cuidarte/services/notification"
	"cuidarte/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueDispatcher enqueues booking summaries on the asynq broker. When
// the broker is unreachable it degrades to a direct post in a
// goroutine, so the sideband still runs best effort.
type QueueDispatcher struct {
	Client   *asynq.Client
	Notifier *notification.SlackNotifier
}

func (d *QueueDispatcher) Dispatch(event notification.TestimonialBooked) {
	logger := utils.GetLogger()

	task, opts, err := NewTestimonialNotifyTask(event)
	if err != nil {
		logger.Error("Failed to build notify task", zap.Error(err))
		return
	}

	if d.Client != nil {
		_, err := d.Client.Enqueue(task, opts...)
		if err == nil {
			return
		}
		logger.Warn("Failed to enqueue notify task, posting directly", zap.Error(err))
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := d.Notifier.NotifyTestimonialBooked(ctx, event); err != nil {
			logger.Warn("Slack notification failed",
				zap.String("client", event.ClientName), zap.Error(err))
		}
	}()
}
