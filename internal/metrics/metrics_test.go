package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-eshop-backend/internal/mocks"
)

func TestOrderCreated_PublishesDatapoints(t *testing.T) {
	cw := &mocks.CloudWatch{}
	p := NewPublisher(cw, zap.NewNop())

	p.OrderCreated(context.Background(), 35.0)

	calls := cw.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, namespace, *calls[0].Namespace)
	require.Len(t, calls[0].MetricData, 2)
	require.Equal(t, "OrdersCreated", *calls[0].MetricData[0].MetricName)
	require.Equal(t, 1.0, *calls[0].MetricData[0].Value)
	require.Equal(t, 35.0, *calls[0].MetricData[1].Value)
}
