package tasks

import (
	"context"
	"encoding/json"

	"cuidarte/services/notification"
	"cuidarte/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeTestimonialNotify = "testimonial:notify"

const notifyQueue = "notifications"

// NewTestimonialNotifyTask wraps a booking summary in an asynq task.
// The sideband never retries: a failed delivery is logged by the
// handler and dropped.
func NewTestimonialNotifyTask(event notification.TestimonialBooked) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(event)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeTestimonialNotify, b)
	opts := []asynq.Option{asynq.MaxRetry(0), asynq.Queue(notifyQueue)}

	return task, opts, nil
}

// HandleTestimonialNotifyTask delivers the Slack message for a queued
// booking summary. All failures end here: logged and swallowed.
func HandleTestimonialNotifyTask(notifier *notification.SlackNotifier) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		logger := utils.GetLogger()

		var event notification.TestimonialBooked
		if err := json.Unmarshal(t.Payload(), &event); err != nil {
			logger.Error("Failed to decode notify task payload", zap.Error(err))
			return nil
		}

		if err := notifier.NotifyTestimonialBooked(ctx, event); err != nil {
			logger.Warn("Slack notification failed",
				zap.String("client", event.ClientName), zap.Error(err))
		}
		return nil
	}
}

// StartWorker runs the in-process asynq server draining the
// notifications queue.
func StartWorker(redisOpt asynq.RedisClientOpt, notifier *notification.SlackNotifier) *asynq.Server {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 2,
		Queues:      map[string]int{notifyQueue: 1},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeTestimonialNotify, HandleTestimonialNotifyTask(notifier))

	go func() {
		if err := srv.Run(mux); err != nil {
			utils.GetLogger().Error("Notification worker stopped", zap.Error(err))
		}
	}()
	return srv
}
