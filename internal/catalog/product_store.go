package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/imrishuroy/go-eshop-backend/internal/aws"
)

// ProductStore encapsulates operations on the products table. It also serves
// the order pipeline as its price source.
type ProductStore struct {
	client    aws.DynamoDBAPI
	tableName string
}

func NewProductStore(client aws.DynamoDBAPI, tableName string) *ProductStore {
	return &ProductStore{client: client, tableName: tableName}
}

func (s *ProductStore) Put(ctx context.Context, p Product) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put product: %w", err)
	}
	return nil
}

// GetProduct fetches a product by id. Returns (nil, nil) if not found.
func (s *ProductStore) GetProduct(ctx context.Context, id string) (*Product, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var p Product
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &p, nil
}

// List returns all products, optionally restricted to a set of category ids.
func (s *ProductStore) List(ctx context.Context, categoryIDs []string) ([]Product, error) {
	input := &dyn.ScanInput{TableName: &s.tableName}

	if len(categoryIDs) > 0 {
		names := make([]string, 0, len(categoryIDs))
		values := map[string]types.AttributeValue{}
		for i, id := range categoryIDs {
			key := fmt.Sprintf(":c%d", i)
			names = append(names, key)
			values[key] = &types.AttributeValueMemberS{Value: id}
		}
		filter := fmt.Sprintf("category_id IN (%s)", strings.Join(names, ", "))
		input.FilterExpression = &filter
		input.ExpressionAttributeValues = values
	}

	products := []Product{}
	for {
		out, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("scan products: %w", err)
		}
		var page []Product
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal products: %w", err)
		}
		products = append(products, page...)
		if out.LastEvaluatedKey == nil {
			return products, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// Featured returns featured products, up to limit when limit > 0.
func (s *ProductStore) Featured(ctx context.Context, limit int) ([]Product, error) {
	filter := "is_featured = :t"
	input := &dyn.ScanInput{
		TableName:        &s.tableName,
		FilterExpression: &filter,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberBOOL{Value: true},
		},
	}

	products := []Product{}
	for {
		out, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("scan featured products: %w", err)
		}
		var page []Product
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal products: %w", err)
		}
		products = append(products, page...)
		if limit > 0 && len(products) >= limit {
			return products[:limit], nil
		}
		if out.LastEvaluatedKey == nil {
			return products, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// Count returns the number of products without fetching them.
func (s *ProductStore) Count(ctx context.Context) (int, error) {
	count := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, fmt.Errorf("count products: %w", err)
		}
		count += int(out.Count)
		if out.LastEvaluatedKey == nil {
			return count, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Delete removes a product. Returns (false, nil) when no such product existed.
func (s *ProductStore) Delete(ctx context.Context, id string) (bool, error) {
	out, err := s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return len(out.Attributes) > 0, nil
}

// UpdateImages replaces the gallery image list on an existing product.
func (s *ProductStore) UpdateImages(ctx context.Context, id string, images []string) (*Product, error) {
	values, err := attributevalue.MarshalList(images)
	if err != nil {
		return nil, fmt.Errorf("marshal images: %w", err)
	}
	updateExpr := "SET images = :imgs"
	condExpr := "attribute_exists(product_id)"
	out, err := s.client.UpdateItem(ctx, &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          &updateExpr,
		ConditionExpression:       &condExpr,
		ExpressionAttributeValues: map[string]types.AttributeValue{":imgs": &types.AttributeValueMemberL{Value: values}},
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, fmt.Errorf("update product images: %w", err)
	}
	var p Product
	if err := attributevalue.UnmarshalMap(out.Attributes, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &p, nil
}
