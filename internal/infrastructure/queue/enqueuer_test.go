package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-storefront/internal/config"
	"bookstore-storefront/internal/shared"
)

type recordingClient struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (r *recordingClient) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.tasks = append(r.tasks, task)
	r.opts = append(r.opts, opts)
	return &asynq.TaskInfo{ID: "t-1", Type: task.Type()}, nil
}

func optionValue(opts []asynq.Option, typ asynq.OptionType) interface{} {
	for _, o := range opts {
		if o.Type() == typ {
			return o.Value()
		}
	}
	return nil
}

func TestEnqueuer_ScheduleSettleCheck(t *testing.T) {
	client := &recordingClient{}
	e := NewEnqueuer(client, config.PaymentConfig{RecheckDelay: 2 * time.Minute, RecheckMaxTry: 7})

	require.NoError(t, e.ScheduleSettleCheck(context.Background(), "sess-1", "ORD-9"))
	require.Len(t, client.tasks, 1)
	assert.Equal(t, shared.TypePaymentSettleCheck, client.tasks[0].Type())

	var payload shared.SettleCheckPayload
	require.NoError(t, json.Unmarshal(client.tasks[0].Payload(), &payload))
	assert.Equal(t, shared.SettleCheckPayload{SessionID: "sess-1", OrderCode: "ORD-9"}, payload)

	opts := client.opts[0]
	assert.Equal(t, 2*time.Minute, optionValue(opts, asynq.ProcessInOpt))
	assert.Equal(t, 7, optionValue(opts, asynq.MaxRetryOpt))
	assert.Equal(t, "settle:ORD-9", optionValue(opts, asynq.TaskIDOpt))
}

func TestEnqueuer_DuplicateIsNoop(t *testing.T) {
	e := NewEnqueuer(&recordingClient{err: asynq.ErrTaskIDConflict}, config.PaymentConfig{})
	assert.NoError(t, e.ScheduleSettleCheck(context.Background(), "sess-1", "ORD-9"))
}
