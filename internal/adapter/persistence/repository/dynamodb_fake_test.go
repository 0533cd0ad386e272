package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo answers each call through an optional hook and records what it saw.
type fakeDynamo struct {
	getItem      func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItem      func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	updateItem   func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	query        func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scan         func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	batchGetItem func(in *dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error)
	transact     func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error)

	gets      []*dynamodb.GetItemInput
	puts      []*dynamodb.PutItemInput
	queries   []*dynamodb.QueryInput
	scans     []*dynamodb.ScanInput
	batchGets []*dynamodb.BatchGetItemInput
	transacts []*dynamodb.TransactWriteItemsInput
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.gets = append(f.gets, in)
	if f.getItem == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getItem(in)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	if f.putItem == nil {
		return &dynamodb.PutItemOutput{}, nil
	}
	return f.putItem(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if f.updateItem == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return f.updateItem(in)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if f.query == nil {
		return &dynamodb.QueryOutput{}, nil
	}
	return f.query(in)
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scans = append(f.scans, in)
	if f.scan == nil {
		return &dynamodb.ScanOutput{}, nil
	}
	return f.scan(in)
}

func (f *fakeDynamo) BatchGetItem(_ context.Context, in *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	f.batchGets = append(f.batchGets, in)
	if f.batchGetItem == nil {
		return &dynamodb.BatchGetItemOutput{}, nil
	}
	return f.batchGetItem(in)
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transacts = append(f.transacts, in)
	if f.transact == nil {
		return &dynamodb.TransactWriteItemsOutput{}, nil
	}
	return f.transact(in)
}

func testTables() TableNames {
	return TableNames{
		Packages:      "packages",
		Categories:    "categories",
		SubCategories: "subcategories",
		InstallPhases: "install_phases",
		Estimates:     "estimates",
		EstimateItems: "estimate_items",
		Builders:      "builders",
		Sequences:     "estimate_sequences",
	}
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func stringAttr(av types.AttributeValue) string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	}
	return ""
}
