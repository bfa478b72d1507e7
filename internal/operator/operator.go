package operator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/morningmoney/internal/logging"
	"github.com/carson-networks/morningmoney/internal/operator/actions"
	"github.com/carson-networks/morningmoney/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
}

func NewOperator(s *storage.Storage, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) error {
	actionName := fmt.Sprintf("%T", item.action)
	endTimer := logging.GetLogData(item.ctx).AddToExistingTiming("operatorDuration")
	defer endTimer()

	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		return err
	}

	if err = item.action.Perform(item.ctx, writer); err != nil {
		if rbErr := writer.Rollback(); rbErr != nil {
			logrus.WithError(rbErr).WithField("action", actionName).Error("Operator.Rollback")
		}
		logrus.WithError(err).WithField("action", actionName).Debug("Operator.Perform.Error")
		return err
	}

	if err = writer.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", actionName, err)
	}

	logrus.WithField("action", actionName).Debug("Operator.Perform.Complete")
	return nil
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
