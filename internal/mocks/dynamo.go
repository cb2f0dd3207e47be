// Package mocks holds in-memory test doubles shared across package tests.
package mocks

import (
	"context"
	"errors"
	"strings"
	"sync"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// pkAttrs lists known partition-key attributes, most specific first, so an
// item carrying several of them (an order has both order_id and user_id)
// resolves to the right key.
var pkAttrs = []string{"order_item_id", "order_id", "product_id", "category_id", "user_id"}

// DynamoDB is an in-memory double for the narrow DynamoDB interface the
// stores use. Items are stored per table as pk -> attribute map. Expression
// handling is deliberately naive: it understands exactly the expressions the
// stores issue.
type DynamoDB struct {
	mu     sync.Mutex
	Tables map[string]map[string]map[string]types.AttributeValue

	// PutErr, when set, can fail writes to selected tables.
	PutErr func(table string) error
	// DeleteErr, when set, can fail deletes of selected keys.
	DeleteErr func(table, pk string) error
}

func NewDynamoDB() *DynamoDB {
	return &DynamoDB{Tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (m *DynamoDB) ensureTable(tbl string) map[string]map[string]types.AttributeValue {
	if _, ok := m.Tables[tbl]; !ok {
		m.Tables[tbl] = map[string]map[string]types.AttributeValue{}
	}
	return m.Tables[tbl]
}

func pkOf(item map[string]types.AttributeValue) (string, error) {
	for _, attr := range pkAttrs {
		if v, ok := item[attr]; ok {
			if s, ok := v.(*types.AttributeValueMemberS); ok {
				return s.Value, nil
			}
		}
	}
	return "", errors.New("no known primary key attribute")
}

func (m *DynamoDB) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	table := *params.TableName
	if m.PutErr != nil {
		if err := m.PutErr(table); err != nil {
			return nil, err
		}
	}
	pk, err := pkOf(params.Item)
	if err != nil {
		return nil, err
	}
	m.ensureTable(table)[pk] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *DynamoDB) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pk, err := pkOf(params.Key)
	if err != nil {
		return nil, err
	}
	item, ok := m.ensureTable(*params.TableName)[pk]
	if !ok {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (m *DynamoDB) UpdateItem(ctx context.Context, params *dyn.UpdateItemInput, optFns ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pk, err := pkOf(params.Key)
	if err != nil {
		return nil, err
	}
	table := m.ensureTable(*params.TableName)
	item, exists := table[pk]

	if params.ConditionExpression != nil && strings.HasPrefix(*params.ConditionExpression, "attribute_exists(") {
		if !exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	if !exists {
		item = map[string]types.AttributeValue{}
		for k, v := range params.Key {
			item[k] = v
		}
	}

	// Apply "SET a = :x, b = :y" with #name aliases.
	expr := strings.TrimPrefix(*params.UpdateExpression, "SET ")
	for _, clause := range strings.Split(expr, ",") {
		parts := strings.SplitN(strings.TrimSpace(clause), " = ", 2)
		if len(parts) != 2 {
			return nil, errors.New("unsupported update expression: " + *params.UpdateExpression)
		}
		name := parts[0]
		if alias, ok := params.ExpressionAttributeNames[name]; ok {
			name = alias
		}
		item[name] = params.ExpressionAttributeValues[strings.TrimSpace(parts[1])]
	}
	table[pk] = item
	return &dyn.UpdateItemOutput{Attributes: item}, nil
}

func (m *DynamoDB) DeleteItem(ctx context.Context, params *dyn.DeleteItemInput, optFns ...func(*dyn.Options)) (*dyn.DeleteItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pk, err := pkOf(params.Key)
	if err != nil {
		return nil, err
	}
	tableName := *params.TableName
	if m.DeleteErr != nil {
		if err := m.DeleteErr(tableName, pk); err != nil {
			return nil, err
		}
	}
	table := m.ensureTable(tableName)
	old, existed := table[pk]
	delete(table, pk)

	out := &dyn.DeleteItemOutput{}
	if existed && params.ReturnValues == types.ReturnValueAllOld {
		out.Attributes = old
	}
	return out, nil
}

func (m *DynamoDB) Scan(ctx context.Context, params *dyn.ScanInput, optFns ...func(*dyn.Options)) (*dyn.ScanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var items []map[string]types.AttributeValue
	for _, item := range m.ensureTable(*params.TableName) {
		if params.FilterExpression != nil && !matchFilter(*params.FilterExpression, params.ExpressionAttributeValues, item) {
			continue
		}
		items = append(items, item)
	}

	out := &dyn.ScanOutput{Count: int32(len(items))}
	if params.Select != types.SelectCount {
		out.Items = items
	}
	return out, nil
}

func (m *DynamoDB) Query(ctx context.Context, params *dyn.QueryInput, optFns ...func(*dyn.Options)) (*dyn.QueryOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if params.KeyConditionExpression == nil {
		return nil, errors.New("missing key condition expression")
	}
	var items []map[string]types.AttributeValue
	for _, item := range m.ensureTable(*params.TableName) {
		if matchFilter(*params.KeyConditionExpression, params.ExpressionAttributeValues, item) {
			items = append(items, item)
		}
	}
	return &dyn.QueryOutput{Items: items, Count: int32(len(items))}, nil
}

// matchFilter evaluates "attr = :v" and "attr IN (:a, :b)" expressions.
func matchFilter(expr string, values map[string]types.AttributeValue, item map[string]types.AttributeValue) bool {
	if idx := strings.Index(expr, " IN ("); idx >= 0 {
		attr := strings.TrimSpace(expr[:idx])
		list := strings.TrimSuffix(expr[idx+len(" IN ("):], ")")
		for _, token := range strings.Split(list, ",") {
			if equalAttr(item[attr], values[strings.TrimSpace(token)]) {
				return true
			}
		}
		return false
	}

	parts := strings.SplitN(expr, " = ", 2)
	if len(parts) != 2 {
		return false
	}
	return equalAttr(item[strings.TrimSpace(parts[0])], values[strings.TrimSpace(parts[1])])
}

func equalAttr(a, b types.AttributeValue) bool {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberBOOL:
		bv, ok := b.(*types.AttributeValueMemberBOOL)
		return ok && av.Value == bv.Value
	}
	return false
}
