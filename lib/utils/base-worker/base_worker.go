package baseworker

import (
	"context"
	"runtime/debug"
	"time"

	log "github.com/sirupsen/logrus"
	"hr-evaluation-backend/lib/utils/helpers"
)

type JobFunc func(ctx context.Context) error

type BaseImpl struct {
	WorkerName    string
	firstRunDelay time.Duration
	runInterval   time.Duration
}

func NewInstance(workerName string, firstRunDelay, runInterval time.Duration) *BaseImpl {
	return &BaseImpl{
		WorkerName:    workerName,
		firstRunDelay: firstRunDelay,
		runInterval:   runInterval,
	}
}

func (i BaseImpl) GetLogger() *log.Entry {
	return log.WithField("worker_name", i.WorkerName)
}

// Run выполняет задачу периодически до завершения контекста.
// Паника в задаче не останавливает воркер.
func (i BaseImpl) Run(ctx context.Context, jobFunc JobFunc) {
	logger := i.GetLogger()
	timer := time.NewTimer(i.firstRunDelay)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Задача остановлена")
			return
		case <-timer.C:
			i.runOnce(ctx, jobFunc)
			timer.Reset(i.runInterval)
		}
	}
}

func (i BaseImpl) runOnce(ctx context.Context, jobFunc JobFunc) {
	if helpers.IsContextDone(ctx) {
		return
	}
	logger := i.GetLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	start := time.Now()
	if err := jobFunc(ctx); err != nil {
		logger.WithError(err).Error("ошибка выполнения задачи")
		return
	}
	logger.WithField("duration", time.Since(start).String()).Debug("Задача выполнена")
}
