package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/imrishuroy/go-eshop-backend/internal/aws"
)

const userIndex = "user-index"

// Store encapsulates operations on the orders table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new orders Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

func (s *Store) Put(ctx context.Context, order Order) error {
	if order.DateOrdered.IsZero() {
		order.DateOrdered = s.nowFunc()
	}
	item, err := attributevalue.MarshalMap(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put order: %w", err)
	}
	return nil
}

// Get fetches an order by order_id. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, orderID string) (*Order, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var o Order
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}

// UpdateStatus sets the status on an existing order and returns the updated
// record. Returns ErrOrderNotFound when the id does not resolve; nothing but
// status (and nothing else) is touched.
func (s *Store) UpdateStatus(ctx context.Context, orderID, newStatus string) (*Order, error) {
	updateExpr := "SET #s = :new"
	condExpr := "attribute_exists(order_id)"
	out, err := s.client.UpdateItem(ctx, &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		UpdateExpression:         &updateExpr,
		ConditionExpression:      &condExpr,
		ExpressionAttributeNames: map[string]string{"#s": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new": &types.AttributeValueMemberS{Value: newStatus},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if aws.IsConditionalCheckFailed(err) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}
	var o Order
	if err := attributevalue.UnmarshalMap(out.Attributes, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}

// Delete removes an order and returns the removed record so the caller can
// cascade to its items. Returns (nil, nil) when no such order existed.
func (s *Store) Delete(ctx context.Context, orderID string) (*Order, error) {
	out, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, fmt.Errorf("delete order: %w", err)
	}
	if len(out.Attributes) == 0 {
		return nil, nil
	}
	var o Order
	if err := attributevalue.UnmarshalMap(out.Attributes, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}

// ListAll returns every order, unordered. Callers sort.
func (s *Store) ListAll(ctx context.Context) ([]Order, error) {
	orderList := []Order{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan orders: %w", err)
		}
		var page []Order
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal orders: %w", err)
		}
		orderList = append(orderList, page...)
		if out.LastEvaluatedKey == nil {
			return orderList, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// ListByUser returns the orders belonging to one user via the user GSI.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	index := userIndex
	keyCond := "user_id = :u"
	orderList := []Order{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Query(ctx, &dyn.QueryInput{
			TableName:              &s.tableName,
			IndexName:              &index,
			KeyConditionExpression: &keyCond,
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":u": &types.AttributeValueMemberS{Value: userID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("query orders by user: %w", err)
		}
		var page []Order
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal orders: %w", err)
		}
		orderList = append(orderList, page...)
		if out.LastEvaluatedKey == nil {
			return orderList, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Count returns the number of orders without fetching them.
func (s *Store) Count(ctx context.Context) (int, error) {
	count := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, fmt.Errorf("count orders: %w", err)
		}
		count += int(out.Count)
		if out.LastEvaluatedKey == nil {
			return count, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// TotalSales sums total_price across all orders. Zero orders sums to 0.
func (s *Store) TotalSales(ctx context.Context) (float64, error) {
	projection := "total_price"
	var total float64
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:            &s.tableName,
			ProjectionExpression: &projection,
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return 0, fmt.Errorf("scan order totals: %w", err)
		}
		for _, item := range out.Items {
			var row struct {
				TotalPrice float64 `dynamodbav:"total_price"`
			}
			if err := attributevalue.UnmarshalMap(item, &row); err != nil {
				return 0, fmt.Errorf("unmarshal order total: %w", err)
			}
			total += row.TotalPrice
		}
		if out.LastEvaluatedKey == nil {
			return total, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
