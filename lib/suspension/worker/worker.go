package suspensionworker

import (
	"context"
	"time"

	suspensionhandler "hr-evaluation-backend/lib/suspension"
	baseworker "hr-evaluation-backend/lib/utils/base-worker"
)

const workerName = "SuspensionExpiryWorker"

func StartWorker(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	w := baseworker.NewInstance(workerName, 30*time.Second, interval)
	go w.Run(ctx, func(ctx context.Context) error {
		moved, err := suspensionhandler.Instance.ProcessExpired()
		if err != nil {
			return err
		}
		if moved != 0 {
			w.GetLogger().WithField("moved", moved).Info("отстранения переведены на рассмотрение")
		}
		return nil
	})
}
