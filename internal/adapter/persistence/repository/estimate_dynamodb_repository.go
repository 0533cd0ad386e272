package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"builder_estimates/internal/domain/entities"
	"builder_estimates/internal/domain/numbering"
	"builder_estimates/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	estimatesBuilderIDIndex = "builder_id-index"

	// TransactWriteItems accepts at most 100 actions: builder, counter and estimate
	// take three of them.
	maxTransactItems = 100
	fixedCheckoutOps = 3
)

type estimateRecord struct {
	EstimateNumber string `dynamodbav:"estimate_number"`
	ID             string `dynamodbav:"id"`
	BuilderID      string `dynamodbav:"builder_id"`
	ClientName     string `dynamodbav:"client_name"`
	ClientEmail    string `dynamodbav:"client_email"`
	TotalLow       string `dynamodbav:"total_low"`
	TotalHigh      string `dynamodbav:"total_high"`
	Status         string `dynamodbav:"status"`
	Notes          string `dynamodbav:"notes"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

type estimateItemRecord struct {
	EstimateNumber      string `dynamodbav:"estimate_number"`
	Position            int    `dynamodbav:"position"`
	ID                  string `dynamodbav:"id"`
	EstimateID          string `dynamodbav:"estimate_id"`
	PackageID           *int64 `dynamodbav:"package_id,omitempty"`
	PriceLowSnapshot    string `dynamodbav:"price_low_snapshot"`
	PriceHighSnapshot   string `dynamodbav:"price_high_snapshot"`
	PackageNameSnapshot string `dynamodbav:"package_name_snapshot"`
	QuantitySnapshot    int    `dynamodbav:"quantity_snapshot"`
}

type builderRecord struct {
	Email         string `dynamodbav:"email"`
	ID            string `dynamodbav:"id"`
	CompanyName   string `dynamodbav:"company_name"`
	ContactPerson string `dynamodbav:"contact_person"`
	Phone         string `dynamodbav:"phone"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type sequenceRecord struct {
	Year         int    `dynamodbav:"year"`
	LastSequence int    `dynamodbav:"last_sequence"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists estimates, their items, guest builders and the
// per-year numbering counters in DynamoDB.
//
// Table requirements:
//   - estimates: PK estimate_number (string); GSI builder_id-index on builder_id
//   - estimate_items: PK estimate_number (string), SK position (number)
//   - builders: PK email (string)
//   - estimate_sequences: PK year (number)
//
// A checkout is one TransactWriteItems call. The counter and the builder are
// written under conditions on the values read just before, so a concurrent
// checkout cancels the transaction instead of reusing a number.

type EstimateDynamoRepository struct {
	ddb    DynamoAPI
	tables TableNames
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoAPI, tables TableNames) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{ddb: ddb, tables: tables}
}

func (r *EstimateDynamoRepository) CreateWithItems(ctx context.Context, draft entities.EstimateDraft) (entities.Estimate, error) {
	if len(draft.Items)+fixedCheckoutOps > maxTransactItems {
		return entities.Estimate{}, interfaces.ErrCheckoutTooLarge
	}

	e := draft.Estimate
	ops := make([]types.TransactWriteItem, 0, len(draft.Items)+fixedCheckoutOps)

	if draft.Guest != nil {
		builderID, op, err := r.guestUpsert(ctx, *draft.Guest, e.UpdatedAt)
		if err != nil {
			return entities.Estimate{}, err
		}
		e.BuilderID = builderID
		ops = append(ops, op)
	}
	if e.BuilderID == "" {
		return entities.Estimate{}, interfaces.ErrBuilderNotFound
	}

	year := e.CreatedAt.UTC().Year()
	seq, op, err := r.nextSequence(ctx, year, e.CreatedAt)
	if err != nil {
		return entities.Estimate{}, err
	}
	ops = append(ops, op)
	e.EstimateNumber = numbering.Format(year, seq)

	av, err := attributevalue.MarshalMap(toEstimateRecord(e))
	if err != nil {
		return entities.Estimate{}, err
	}
	ops = append(ops, types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.tables.Estimates),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#estimate_number)"),
		ExpressionAttributeNames: map[string]string{"#estimate_number": "estimate_number"},
	}})

	items := make([]entities.EstimateItem, 0, len(draft.Items))
	for i, it := range draft.Items {
		it.EstimateID = e.ID
		items = append(items, it)

		av, err := attributevalue.MarshalMap(toEstimateItemRecord(e.EstimateNumber, i, it))
		if err != nil {
			return entities.Estimate{}, err
		}
		ops = append(ops, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.tables.EstimateItems),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#estimate_number)"),
			ExpressionAttributeNames: map[string]string{"#estimate_number": "estimate_number"},
		}})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: ops})
	if err != nil {
		if isWriteConflict(err) {
			return entities.Estimate{}, fmt.Errorf("create estimate %s: %w", e.EstimateNumber, interfaces.ErrWriteConflict)
		}
		return entities.Estimate{}, fmt.Errorf("create estimate %s: %w", e.EstimateNumber, err)
	}

	e.Items = items
	return e, nil
}

// guestUpsert resolves the builder by email. Company and contact are overwritten;
// phone only when a new one is given.
func (r *EstimateDynamoRepository) guestUpsert(ctx context.Context, guest entities.Builder, now time.Time) (string, types.TransactWriteItem, error) {
	key := map[string]types.AttributeValue{"email": &types.AttributeValueMemberS{Value: guest.Email}}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Builders),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", types.TransactWriteItem{}, err
	}

	builderID := guest.ID
	var condition string
	if len(out.Item) > 0 {
		var existing builderRecord
		if err := attributevalue.UnmarshalMap(out.Item, &existing); err != nil {
			return "", types.TransactWriteItem{}, err
		}
		builderID = existing.ID
		condition = "attribute_exists(#email) AND #id = :id"
	} else {
		condition = "attribute_not_exists(#email)"
	}

	if now.IsZero() {
		now = time.Now()
	}
	ts := formatTime(now)

	expr := "SET #id = if_not_exists(#id, :id), #company_name = :company_name, #contact_person = :contact_person, " +
		"#created_at = if_not_exists(#created_at, :now), #updated_at = :now"
	values := map[string]types.AttributeValue{
		":id":             &types.AttributeValueMemberS{Value: builderID},
		":company_name":   &types.AttributeValueMemberS{Value: guest.CompanyName},
		":contact_person": &types.AttributeValueMemberS{Value: guest.ContactPerson},
		":now":            &types.AttributeValueMemberS{Value: ts},
	}
	if guest.Phone != "" {
		expr += ", #phone = :phone"
		values[":phone"] = &types.AttributeValueMemberS{Value: guest.Phone}
	} else {
		expr += ", #phone = if_not_exists(#phone, :empty)"
		values[":empty"] = &types.AttributeValueMemberS{Value: ""}
	}

	return builderID, types.TransactWriteItem{Update: &types.Update{
		TableName:           aws.String(r.tables.Builders),
		Key:                 key,
		UpdateExpression:    aws.String(expr),
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#email":          "email",
			"#company_name":   "company_name",
			"#contact_person": "contact_person",
			"#phone":          "phone",
			"#created_at":     "created_at",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: values,
	}}, nil
}

// nextSequence reads the year's counter and returns the write that claims the
// following number, conditioned on the counter still holding what was read.
func (r *EstimateDynamoRepository) nextSequence(ctx context.Context, year int, now time.Time) (int, types.TransactWriteItem, error) {
	key := map[string]types.AttributeValue{"year": &types.AttributeValueMemberN{Value: strconv.Itoa(year)}}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Sequences),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, types.TransactWriteItem{}, err
	}

	if len(out.Item) == 0 {
		av, err := attributevalue.MarshalMap(sequenceRecord{Year: year, LastSequence: 1, UpdatedAt: formatTime(now)})
		if err != nil {
			return 0, types.TransactWriteItem{}, err
		}
		return 1, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.tables.Sequences),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#year)"),
			ExpressionAttributeNames: map[string]string{"#year": "year"},
		}}, nil
	}

	var rec sequenceRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return 0, types.TransactWriteItem{}, err
	}
	next := numbering.Next(rec.LastSequence)
	return next, types.TransactWriteItem{Update: &types.Update{
		TableName:           aws.String(r.tables.Sequences),
		Key:                 key,
		UpdateExpression:    aws.String("SET #last_sequence = :next, #updated_at = :now"),
		ConditionExpression: aws.String("#last_sequence = :last"),
		ExpressionAttributeNames: map[string]string{
			"#last_sequence": "last_sequence",
			"#updated_at":    "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":next": &types.AttributeValueMemberN{Value: strconv.Itoa(next)},
			":last": &types.AttributeValueMemberN{Value: strconv.Itoa(rec.LastSequence)},
			":now":  &types.AttributeValueMemberS{Value: formatTime(now)},
		},
	}}, nil
}

func isWriteConflict(err error) bool {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			switch aws.ToString(reason.Code) {
			case "ConditionalCheckFailed", "TransactionConflict":
				return true
			}
		}
		return false
	}
	var tcf *types.TransactionConflictException
	return errors.As(err, &tcf)
}

func (r *EstimateDynamoRepository) GetByNumber(ctx context.Context, estimateNumber string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Estimates),
		Key: map[string]types.AttributeValue{
			"estimate_number": &types.AttributeValueMemberS{Value: estimateNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var rec estimateRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Estimate{}, err
	}
	e := fromEstimateRecord(rec)
	if e.Items, err = r.listItems(ctx, e.EstimateNumber); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

// ListByBuilder returns the builder's estimates newest first, items included.
func (r *EstimateDynamoRepository) ListByBuilder(ctx context.Context, builderID string) ([]entities.Estimate, error) {
	var records []estimateRecord
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tables.Estimates),
			IndexName:              aws.String(estimatesBuilderIDIndex),
			KeyConditionExpression: aws.String("builder_id = :bid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":bid": &types.AttributeValueMemberS{Value: builderID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []estimateRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		records = append(records, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	res := make([]entities.Estimate, 0, len(records))
	for _, rec := range records {
		e := fromEstimateRecord(rec)
		items, err := r.listItems(ctx, e.EstimateNumber)
		if err != nil {
			return nil, err
		}
		e.Items = items
		res = append(res, e)
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

func (r *EstimateDynamoRepository) UpdateStatusByNumber(ctx context.Context, estimateNumber string, status entities.EstimateStatus) (entities.Estimate, error) {
	e, err := r.update(ctx, estimateNumber, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil || e.ID == "" {
		return e, err
	}
	if e.Items, err = r.listItems(ctx, e.EstimateNumber); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	estimateNumber string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Estimate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tables.Estimates),
		Key: map[string]types.AttributeValue{
			"estimate_number": &types.AttributeValueMemberS{Value: estimateNumber},
		},
		ConditionExpression:       aws.String("attribute_exists(#estimate_number)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#estimate_number": "estimate_number"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var rec estimateRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateRecord(rec), nil
}

func (r *EstimateDynamoRepository) listItems(ctx context.Context, estimateNumber string) ([]entities.EstimateItem, error) {
	var records []estimateItemRecord
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tables.EstimateItems),
			KeyConditionExpression: aws.String("estimate_number = :n"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":n": &types.AttributeValueMemberS{Value: estimateNumber},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []estimateItemRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		records = append(records, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(records, func(i, j int) bool { return records[i].Position < records[j].Position })
	items := make([]entities.EstimateItem, 0, len(records))
	for _, rec := range records {
		items = append(items, entities.EstimateItem{
			ID:                  rec.ID,
			EstimateID:          rec.EstimateID,
			PackageID:           rec.PackageID,
			PriceLowSnapshot:    parseDecimal(rec.PriceLowSnapshot),
			PriceHighSnapshot:   parseDecimal(rec.PriceHighSnapshot),
			PackageNameSnapshot: rec.PackageNameSnapshot,
			QuantitySnapshot:    rec.QuantitySnapshot,
		})
	}
	return items, nil
}

func toEstimateRecord(e entities.Estimate) estimateRecord {
	return estimateRecord{
		EstimateNumber: e.EstimateNumber,
		ID:             e.ID,
		BuilderID:      e.BuilderID,
		ClientName:     e.ClientName,
		ClientEmail:    e.ClientEmail,
		TotalLow:       e.TotalLow.StringFixed(2),
		TotalHigh:      e.TotalHigh.StringFixed(2),
		Status:         string(e.Status),
		Notes:          e.Notes,
		CreatedAt:      formatTime(e.CreatedAt),
		UpdatedAt:      formatTime(e.UpdatedAt),
	}
}

func fromEstimateRecord(rec estimateRecord) entities.Estimate {
	return entities.Estimate{
		ID:             rec.ID,
		EstimateNumber: rec.EstimateNumber,
		BuilderID:      rec.BuilderID,
		ClientName:     rec.ClientName,
		ClientEmail:    rec.ClientEmail,
		TotalLow:       parseDecimal(rec.TotalLow),
		TotalHigh:      parseDecimal(rec.TotalHigh),
		Status:         entities.EstimateStatus(rec.Status),
		Notes:          rec.Notes,
		CreatedAt:      parseTime(rec.CreatedAt),
		UpdatedAt:      parseTime(rec.UpdatedAt),
	}
}

func toEstimateItemRecord(estimateNumber string, position int, it entities.EstimateItem) estimateItemRecord {
	return estimateItemRecord{
		EstimateNumber:      estimateNumber,
		Position:            position,
		ID:                  it.ID,
		EstimateID:          it.EstimateID,
		PackageID:           it.PackageID,
		PriceLowSnapshot:    it.PriceLowSnapshot.StringFixed(2),
		PriceHighSnapshot:   it.PriceHighSnapshot.StringFixed(2),
		PackageNameSnapshot: it.PackageNameSnapshot,
		QuantitySnapshot:    it.QuantitySnapshot,
	}
}
