package orders

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/imrishuroy/go-eshop-backend/internal/aws"
)

// ItemStore encapsulates operations on the order-items table. Items are
// created during order assembly and removed only by the cascading delete.
type ItemStore struct {
	client    aws.DynamoDBAPI
	tableName string
}

func NewItemStore(client aws.DynamoDBAPI, tableName string) *ItemStore {
	return &ItemStore{client: client, tableName: tableName}
}

func (s *ItemStore) Put(ctx context.Context, item OrderItem) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal order item: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("put order item: %w", err)
	}
	return nil
}

// Get fetches an order item by id. Returns (nil, nil) if not found.
func (s *ItemStore) Get(ctx context.Context, id string) (*OrderItem, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_item_id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get order item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var item OrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("unmarshal order item: %w", err)
	}
	return &item, nil
}

func (s *ItemStore) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_item_id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	return nil
}
