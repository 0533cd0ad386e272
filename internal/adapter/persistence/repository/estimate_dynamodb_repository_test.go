package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"builder_estimates/internal/domain/entities"
	"builder_estimates/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func testDraft(year int, guest *entities.Builder, itemCount int) entities.EstimateDraft {
	created := time.Date(year, 6, 1, 12, 0, 0, 0, time.UTC)
	d := entities.EstimateDraft{
		Estimate: entities.Estimate{
			ID:        "est-1",
			TotalLow:  decimal.RequireFromString("250"),
			TotalHigh: decimal.RequireFromString("380"),
			Status:    entities.EstimateStatusPending,
			CreatedAt: created,
			UpdatedAt: created,
		},
		Guest: guest,
	}
	if guest == nil {
		d.Estimate.BuilderID = "builder-1"
	}
	for i := 0; i < itemCount; i++ {
		id := int64(i + 1)
		d.Items = append(d.Items, entities.EstimateItem{
			ID:                  "item-" + strconv.Itoa(i+1),
			PackageID:           &id,
			PriceLowSnapshot:    decimal.RequireFromString("100"),
			PriceHighSnapshot:   decimal.RequireFromString("150"),
			PackageNameSnapshot: "Package " + strconv.Itoa(i+1),
			QuantitySnapshot:    1,
		})
	}
	return d
}

// sequenceTable keeps per-year counters and applies the counter writes of each
// committed transaction, like the real table would.
type sequenceTable struct {
	last map[string]string
}

func (s *sequenceTable) get(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
	if aws.ToString(in.TableName) != "estimate_sequences" {
		return &dynamodb.GetItemOutput{}, nil
	}
	year := stringAttr(in.Key["year"])
	last, ok := s.last[year]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
		"year":          &types.AttributeValueMemberN{Value: year},
		"last_sequence": &types.AttributeValueMemberN{Value: last},
	}}, nil
}

func (s *sequenceTable) commit(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
	for _, op := range in.TransactItems {
		switch {
		case op.Put != nil && aws.ToString(op.Put.TableName) == "estimate_sequences":
			s.last[stringAttr(op.Put.Item["year"])] = stringAttr(op.Put.Item["last_sequence"])
		case op.Update != nil && aws.ToString(op.Update.TableName) == "estimate_sequences":
			s.last[stringAttr(op.Update.Key["year"])] = stringAttr(op.Update.ExpressionAttributeValues[":next"])
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func TestEstimateDynamoRepository_CreateWithItems(t *testing.T) {
	ctx := context.Background()

	t.Run("first estimate of the year for a new guest", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewEstimateDynamoRepository(ddb, testTables())

		guest := &entities.Builder{ID: "guest-id", Email: "jo@acme.example", CompanyName: "Acme", ContactPerson: "Jo", Phone: "555"}
		e, err := repo.CreateWithItems(ctx, testDraft(2024, guest, 2))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.EstimateNumber != "EST-2024-001" || e.BuilderID != "guest-id" {
			t.Fatalf("unexpected estimate: %+v", e)
		}
		if len(e.Items) != 2 || e.Items[0].EstimateID != "est-1" {
			t.Fatalf("unexpected items: %+v", e.Items)
		}

		if len(ddb.transacts) != 1 {
			t.Fatalf("expected one transaction, got %d", len(ddb.transacts))
		}
		ops := ddb.transacts[0].TransactItems
		if len(ops) != 5 {
			t.Fatalf("expected builder, counter, estimate and 2 items, got %d ops", len(ops))
		}
		builder := ops[0].Update
		if builder == nil || aws.ToString(builder.TableName) != "builders" || aws.ToString(builder.ConditionExpression) != "attribute_not_exists(#email)" {
			t.Fatalf("unexpected builder op: %+v", ops[0])
		}
		if stringAttr(builder.ExpressionAttributeValues[":phone"]) != "555" {
			t.Fatalf("expected phone written")
		}
		counter := ops[1].Put
		if counter == nil || stringAttr(counter.Item["last_sequence"]) != "1" {
			t.Fatalf("unexpected counter op: %+v", ops[1])
		}
		estimate := ops[2].Put
		if estimate == nil || stringAttr(estimate.Item["estimate_number"]) != "EST-2024-001" || stringAttr(estimate.Item["total_low"]) != "250.00" {
			t.Fatalf("unexpected estimate op: %+v", ops[2])
		}
		if stringAttr(ops[4].Put.Item["position"]) != "1" || stringAttr(ops[4].Put.Item["package_id"]) != "2" {
			t.Fatalf("unexpected item op: %+v", ops[4].Put.Item)
		}
	})

	t.Run("consecutive numbers restart each year", func(t *testing.T) {
		seq := &sequenceTable{last: map[string]string{}}
		ddb := &fakeDynamo{getItem: seq.get, transact: seq.commit}
		repo := NewEstimateDynamoRepository(ddb, testTables())

		var got []string
		for _, year := range []int{2024, 2024, 2024, 2025} {
			e, err := repo.CreateWithItems(ctx, testDraft(year, nil, 1))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got = append(got, e.EstimateNumber)
		}
		want := []string{"EST-2024-001", "EST-2024-002", "EST-2024-003", "EST-2025-001"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	})

	t.Run("sequence grows past 999", func(t *testing.T) {
		seq := &sequenceTable{last: map[string]string{"2024": "999"}}
		ddb := &fakeDynamo{getItem: seq.get, transact: seq.commit}
		repo := NewEstimateDynamoRepository(ddb, testTables())

		e, err := repo.CreateWithItems(ctx, testDraft(2024, nil, 1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.EstimateNumber != "EST-2024-1000" {
			t.Fatalf("expected EST-2024-1000, got %s", e.EstimateNumber)
		}
		update := ddb.transacts[0].TransactItems[0].Update
		if update == nil || aws.ToString(update.ConditionExpression) != "#last_sequence = :last" || stringAttr(update.ExpressionAttributeValues[":last"]) != "999" {
			t.Fatalf("expected a conditional counter update, got %+v", ddb.transacts[0].TransactItems[0])
		}
	})

	t.Run("existing guest keeps id and phone", func(t *testing.T) {
		ddb := &fakeDynamo{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			if aws.ToString(in.TableName) != "builders" {
				return &dynamodb.GetItemOutput{}, nil
			}
			return &dynamodb.GetItemOutput{Item: mustMarshal(t, builderRecord{Email: "jo@acme.example", ID: "builder-old", Phone: "555"})}, nil
		}}
		repo := NewEstimateDynamoRepository(ddb, testTables())

		guest := &entities.Builder{ID: "guest-new", Email: "jo@acme.example", CompanyName: "Acme 2", ContactPerson: "Jo"}
		e, err := repo.CreateWithItems(ctx, testDraft(2024, guest, 1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.BuilderID != "builder-old" {
			t.Fatalf("expected existing builder id, got %s", e.BuilderID)
		}
		update := ddb.transacts[0].TransactItems[0].Update
		if !strings.Contains(aws.ToString(update.UpdateExpression), "if_not_exists(#phone, :empty)") {
			t.Fatalf("blank phone must not overwrite: %s", aws.ToString(update.UpdateExpression))
		}
		if !strings.Contains(aws.ToString(update.ConditionExpression), "#id = :id") || stringAttr(update.ExpressionAttributeValues[":id"]) != "builder-old" {
			t.Fatalf("unexpected condition: %+v", update)
		}
	})

	t.Run("cancelled transaction is a write conflict", func(t *testing.T) {
		ddb := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, &types.TransactionCanceledException{
				Message: aws.String("Transaction cancelled"),
				CancellationReasons: []types.CancellationReason{
					{Code: aws.String("None")},
					{Code: aws.String("ConditionalCheckFailed")},
				},
			}
		}}
		repo := NewEstimateDynamoRepository(ddb, testTables())

		_, err := repo.CreateWithItems(ctx, testDraft(2024, nil, 1))
		if !errors.Is(err, interfaces.ErrWriteConflict) {
			t.Fatalf("expected ErrWriteConflict, got %v", err)
		}
	})

	t.Run("other failures pass through", func(t *testing.T) {
		ddb := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, errors.New("throttled")
		}}
		repo := NewEstimateDynamoRepository(ddb, testTables())

		_, err := repo.CreateWithItems(ctx, testDraft(2024, nil, 1))
		if err == nil || errors.Is(err, interfaces.ErrWriteConflict) || !strings.Contains(err.Error(), "throttled") {
			t.Fatalf("expected throttled error, got %v", err)
		}
	})

	t.Run("too many items", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewEstimateDynamoRepository(ddb, testTables())

		_, err := repo.CreateWithItems(ctx, testDraft(2024, nil, 98))
		if !errors.Is(err, interfaces.ErrCheckoutTooLarge) {
			t.Fatalf("expected ErrCheckoutTooLarge, got %v", err)
		}
		if len(ddb.gets) != 0 || len(ddb.transacts) != 0 {
			t.Fatalf("expected no calls")
		}
	})

	t.Run("missing builder", func(t *testing.T) {
		repo := NewEstimateDynamoRepository(&fakeDynamo{}, testTables())
		d := testDraft(2024, nil, 1)
		d.Estimate.BuilderID = ""
		if _, err := repo.CreateWithItems(ctx, d); !errors.Is(err, interfaces.ErrBuilderNotFound) {
			t.Fatalf("expected ErrBuilderNotFound, got %v", err)
		}
	})
}

func TestEstimateDynamoRepository_GetByNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		repo := NewEstimateDynamoRepository(&fakeDynamo{}, testTables())
		e, err := repo.GetByNumber(ctx, "EST-2024-001")
		if err != nil || e.ID != "" {
			t.Fatalf("expected zero estimate, got %+v %v", e, err)
		}
	})

	t.Run("loads items in position order", func(t *testing.T) {
		ddb := &fakeDynamo{
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				return &dynamodb.GetItemOutput{Item: mustMarshal(t, estimateRecord{
					EstimateNumber: "EST-2024-001", ID: "est-1", BuilderID: "b1", TotalLow: "250.00", TotalHigh: "380.00", Status: "pending",
				})}, nil
			},
			query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				if aws.ToString(in.TableName) != "estimate_items" {
					t.Fatalf("unexpected table %s", aws.ToString(in.TableName))
				}
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
					mustMarshal(t, estimateItemRecord{EstimateNumber: "EST-2024-001", Position: 1, ID: "i2", PackageNameSnapshot: "B", PriceLowSnapshot: "50.00"}),
					mustMarshal(t, estimateItemRecord{EstimateNumber: "EST-2024-001", Position: 0, ID: "i1", PackageNameSnapshot: "A", PriceLowSnapshot: "100.00"}),
				}}, nil
			},
		}
		repo := NewEstimateDynamoRepository(ddb, testTables())

		e, err := repo.GetByNumber(ctx, "EST-2024-001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !e.TotalHigh.Equal(decimal.RequireFromString("380")) || e.Status != entities.EstimateStatusPending {
			t.Fatalf("unexpected estimate: %+v", e)
		}
		if len(e.Items) != 2 || e.Items[0].ID != "i1" || e.Items[1].PackageID != nil {
			t.Fatalf("unexpected items: %+v", e.Items)
		}
	})
}

func TestEstimateDynamoRepository_ListByBuilder(t *testing.T) {
	older := estimateRecord{EstimateNumber: "EST-2024-001", ID: "e1", BuilderID: "b1", CreatedAt: "2024-01-01T00:00:00Z"}
	newer := estimateRecord{EstimateNumber: "EST-2024-002", ID: "e2", BuilderID: "b1", CreatedAt: "2024-02-01T00:00:00Z"}

	ddb := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		if aws.ToString(in.TableName) == "estimate_items" {
			return &dynamodb.QueryOutput{}, nil
		}
		if aws.ToString(in.IndexName) != estimatesBuilderIDIndex {
			t.Fatalf("expected GSI query, got %+v", in)
		}
		if in.ExclusiveStartKey == nil {
			return &dynamodb.QueryOutput{
				Items:            []map[string]types.AttributeValue{mustMarshal(t, older)},
				LastEvaluatedKey: map[string]types.AttributeValue{"estimate_number": &types.AttributeValueMemberS{Value: "EST-2024-001"}},
			}, nil
		}
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{mustMarshal(t, newer)}}, nil
	}}
	repo := NewEstimateDynamoRepository(ddb, testTables())

	list, err := repo.ListByBuilder(context.Background(), "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].ID != "e2" || list[1].ID != "e1" {
		t.Fatalf("expected newest first, got %+v", list)
	}
}

func TestEstimateDynamoRepository_UpdateStatusByNumber(t *testing.T) {
	t.Run("missing estimate", func(t *testing.T) {
		ddb := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		}}
		repo := NewEstimateDynamoRepository(ddb, testTables())

		e, err := repo.UpdateStatusByNumber(context.Background(), "EST-2024-009", entities.EstimateStatusArchived)
		if err != nil || e.ID != "" {
			t.Fatalf("expected zero estimate, got %+v %v", e, err)
		}
	})

	t.Run("updates", func(t *testing.T) {
		ddb := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if stringAttr(in.ExpressionAttributeValues[":status"]) != "contacted" {
				t.Fatalf("unexpected values: %+v", in.ExpressionAttributeValues)
			}
			if in.ExpressionAttributeNames["#estimate_number"] != "estimate_number" {
				t.Fatalf("expected merged names, got %+v", in.ExpressionAttributeNames)
			}
			return &dynamodb.UpdateItemOutput{Attributes: mustMarshal(t, estimateRecord{EstimateNumber: "EST-2024-001", ID: "e1", Status: "contacted"})}, nil
		}}
		repo := NewEstimateDynamoRepository(ddb, testTables())

		e, err := repo.UpdateStatusByNumber(context.Background(), "EST-2024-001", entities.EstimateStatusContacted)
		if err != nil || e.Status != entities.EstimateStatusContacted {
			t.Fatalf("unexpected result: %+v %v", e, err)
		}
		if len(ddb.queries) != 1 {
			t.Fatalf("expected items reloaded")
		}
	})
}
