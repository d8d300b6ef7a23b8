package logger

import (
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
)

// fromWorkflow returns the global logger annotated with workflow identity
// fields so saga log lines can be correlated with a Temporal execution
func fromWorkflow(ctx workflow.Context) *zap.Logger {
	info := workflow.GetInfo(ctx)
	if info == nil {
		return log
	}
	return log.With(
		zap.String("workflow_type", info.WorkflowType.Name),
		zap.String("workflow_id", info.WorkflowExecution.ID),
		zap.String("run_id", info.WorkflowExecution.RunID),
	)
}

// InfoWf logs an info message with workflow context
func InfoWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	fromWorkflow(ctx).Info(msg, fields...)
}

// WarnWf logs a warning message with workflow context
func WarnWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	fromWorkflow(ctx).Warn(msg, fields...)
}

// ErrorWf logs an error message with workflow context
func ErrorWf(ctx workflow.Context, err error, fields ...zap.Field) {
	if err != nil {
		fromWorkflow(ctx).Error(err.Error(), fields...)
	} else {
		fromWorkflow(ctx).Error("error occurred", fields...)
	}
}

// DebugWf logs a debug message with workflow context
func DebugWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	fromWorkflow(ctx).Debug(msg, fields...)
}
