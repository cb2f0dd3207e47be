package catalog

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/imrishuroy/go-eshop-backend/internal/aws"
)

// CategoryStore encapsulates operations on the categories table.
type CategoryStore struct {
	client    aws.DynamoDBAPI
	tableName string
}

func NewCategoryStore(client aws.DynamoDBAPI, tableName string) *CategoryStore {
	return &CategoryStore{client: client, tableName: tableName}
}

func (s *CategoryStore) Put(ctx context.Context, cat Category) error {
	item, err := attributevalue.MarshalMap(cat)
	if err != nil {
		return fmt.Errorf("marshal category: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put category: %w", err)
	}
	return nil
}

// Get fetches a category by id. Returns (nil, nil) if not found.
func (s *CategoryStore) Get(ctx context.Context, id string) (*Category, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"category_id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var cat Category
	if err := attributevalue.UnmarshalMap(out.Item, &cat); err != nil {
		return nil, fmt.Errorf("unmarshal category: %w", err)
	}
	return &cat, nil
}

func (s *CategoryStore) List(ctx context.Context) ([]Category, error) {
	cats := []Category{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan categories: %w", err)
		}
		var page []Category
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal categories: %w", err)
		}
		cats = append(cats, page...)
		if out.LastEvaluatedKey == nil {
			return cats, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Delete removes a category. Returns (false, nil) when no such category existed.
func (s *CategoryStore) Delete(ctx context.Context, id string) (bool, error) {
	out, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"category_id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	return len(out.Attributes) > 0, nil
}
