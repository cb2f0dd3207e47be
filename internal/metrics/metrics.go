package metrics

import (
	"context"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-eshop-backend/internal/aws"
)

const namespace = "EShop/Orders"

// Publisher pushes order datapoints to CloudWatch. Publishing is
// best effort; a failed put is logged and dropped.
type Publisher struct {
	client aws.CloudWatchAPI
	log    *zap.Logger
}

func NewPublisher(client aws.CloudWatchAPI, log *zap.Logger) *Publisher {
	return &Publisher{client: client, log: log}
}

// OrderCreated records one created order and its total price.
func (p *Publisher) OrderCreated(ctx context.Context, totalPrice float64) {
	now := time.Now()
	_, err := p.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: sdkaws.String(namespace),
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: sdkaws.String("OrdersCreated"),
				Timestamp:  &now,
				Unit:       cwtypes.StandardUnitCount,
				Value:      sdkaws.Float64(1),
			},
			{
				MetricName: sdkaws.String("OrderTotalPrice"),
				Timestamp:  &now,
				Unit:       cwtypes.StandardUnitNone,
				Value:      sdkaws.Float64(totalPrice),
			},
		},
	})
	if err != nil {
		p.log.Warn("put metric data failed", zap.Error(err))
	}
}
