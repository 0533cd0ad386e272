package repository

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

// DynamoAPI is the subset of *dynamodb.Client the stores call.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// TableNames lists every DynamoDB table the stores touch.
type TableNames struct {
	Packages      string
	Categories    string
	SubCategories string
	InstallPhases string
	Estimates     string
	EstimateItems string
	Builders      string
	Sequences     string
}

func TableNamesFromEnv() TableNames {
	return TableNames{
		Packages:      getenvDefault("PACKAGES_TABLE", "packages"),
		Categories:    getenvDefault("CATEGORIES_TABLE", "categories"),
		SubCategories: getenvDefault("SUBCATEGORIES_TABLE", "subcategories"),
		InstallPhases: getenvDefault("INSTALL_PHASES_TABLE", "install_phases"),
		Estimates:     getenvDefault("ESTIMATES_TABLE", "estimates"),
		EstimateItems: getenvDefault("ESTIMATE_ITEMS_TABLE", "estimate_items"),
		Builders:      getenvDefault("BUILDERS_TABLE", "builders"),
		Sequences:     getenvDefault("SEQUENCES_TABLE", "estimate_sequences"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// Money is stored as a decimal string so DynamoDB never rounds it through a float.
func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
