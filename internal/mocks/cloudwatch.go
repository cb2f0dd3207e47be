package mocks

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
)

// CloudWatch records every PutMetricData call.
type CloudWatch struct {
	mu     sync.Mutex
	Inputs []*cloudwatch.PutMetricDataInput
}

func (m *CloudWatch) PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Inputs = append(m.Inputs, params)
	return &cloudwatch.PutMetricDataOutput{}, nil
}

// Calls returns a snapshot of the recorded inputs.
func (m *CloudWatch) Calls() []*cloudwatch.PutMetricDataInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*cloudwatch.PutMetricDataInput, len(m.Inputs))
	copy(out, m.Inputs)
	return out
}
