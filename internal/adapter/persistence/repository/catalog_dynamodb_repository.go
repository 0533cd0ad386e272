package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"builder_estimates/internal/domain/entities"
	"builder_estimates/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	batchGetLimit       = 100
	batchGetMaxAttempts = 5
)

type packageRecord struct {
	ID                       int64   `dynamodbav:"id"`
	Name                     string  `dynamodbav:"name"`
	CategoryID               int64   `dynamodbav:"category_id"`
	SubCategoryID            *int64  `dynamodbav:"subcategory_id,omitempty"`
	Description              string  `dynamodbav:"description"`
	PriceLow                 string  `dynamodbav:"price_low"`
	PriceHigh                string  `dynamodbav:"price_high"`
	PriceNotes               string  `dynamodbav:"price_notes"`
	BundleDiscountNote       string  `dynamodbav:"bundle_discount_note"`
	UtilityIncentiveEligible bool    `dynamodbav:"utility_incentive_eligible"`
	InstallPhaseIDs          []int64 `dynamodbav:"install_phase_ids,omitempty"`
	RequiresPhaseID          *int64  `dynamodbav:"requires_phase_id,omitempty"`
	IsActive                 bool    `dynamodbav:"is_active"`
	CreatedAt                string  `dynamodbav:"created_at"`
	UpdatedAt                string  `dynamodbav:"updated_at"`
}

type categoryRecord struct {
	ID          int64  `dynamodbav:"id"`
	CategoryID  int64  `dynamodbav:"category_id,omitempty"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	Order       int    `dynamodbav:"order"`
	IsActive    bool   `dynamodbav:"is_active"`
}

// CatalogDynamoRepository reads and seeds the catalog tables.
//
// Table requirements (all PK: id, number):
//   - packages
//   - categories
//   - subcategories (category_id attribute)
//   - install_phases
//
// The catalog is small and read-mostly, so listings are filtered scans sorted in
// memory.

type CatalogDynamoRepository struct {
	ddb    DynamoAPI
	tables TableNames
}

var (
	_ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)
	_ interfaces.ICatalogWriter     = (*CatalogDynamoRepository)(nil)
)

func NewCatalogDynamoRepository(ddb DynamoAPI, tables TableNames) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{ddb: ddb, tables: tables}
}

func numberKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

func (r *CatalogDynamoRepository) GetPackage(ctx context.Context, id int64) (entities.PackageTemplate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Packages),
		Key:       numberKey(id),
	})
	if err != nil {
		return entities.PackageTemplate{}, err
	}
	if len(out.Item) == 0 {
		return entities.PackageTemplate{}, nil
	}
	var rec packageRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.PackageTemplate{}, err
	}
	return fromPackageRecord(rec), nil
}

// GetPackagesByIDs issues BatchGetItem in chunks of 100 keys and re-requests
// unprocessed keys a bounded number of times.
func (r *CatalogDynamoRepository) GetPackagesByIDs(ctx context.Context, ids []int64) ([]entities.PackageTemplate, error) {
	seen := make(map[int64]bool, len(ids))
	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		keys = append(keys, numberKey(id))
	}

	out := make([]entities.PackageTemplate, 0, len(keys))
	for start := 0; start < len(keys); start += batchGetLimit {
		end := min(start+batchGetLimit, len(keys))
		request := map[string]types.KeysAndAttributes{
			r.tables.Packages: {Keys: keys[start:end]},
		}
		for attempt := 0; len(request) > 0; attempt++ {
			if attempt >= batchGetMaxAttempts {
				return nil, fmt.Errorf("batch get packages: unprocessed keys after %d attempts", attempt)
			}
			res, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			for _, item := range res.Responses[r.tables.Packages] {
				var rec packageRecord
				if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
					return nil, err
				}
				out = append(out, fromPackageRecord(rec))
			}
			request = res.UnprocessedKeys
		}
	}
	return out, nil
}

func (r *CatalogDynamoRepository) ListActivePackages(ctx context.Context, filter entities.PackageFilter) ([]entities.PackageTemplate, error) {
	expr := "#is_active = :active"
	names := map[string]string{"#is_active": "is_active"}
	values := map[string]types.AttributeValue{":active": &types.AttributeValueMemberBOOL{Value: true}}
	if filter.CategoryID > 0 {
		expr += " AND #category_id = :category_id"
		names["#category_id"] = "category_id"
		values[":category_id"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(filter.CategoryID, 10)}
	}
	if filter.SubCategoryID > 0 {
		expr += " AND #subcategory_id = :subcategory_id"
		names["#subcategory_id"] = "subcategory_id"
		values[":subcategory_id"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(filter.SubCategoryID, 10)}
	}

	var records []packageRecord
	if err := r.scan(ctx, r.tables.Packages, expr, names, values, &records); err != nil {
		return nil, err
	}

	pkgs := make([]entities.PackageTemplate, 0, len(records))
	for _, rec := range records {
		pkgs = append(pkgs, fromPackageRecord(rec))
	}
	SortPackages(pkgs)
	return pkgs, nil
}

func (r *CatalogDynamoRepository) GetCategory(ctx context.Context, id int64) (entities.Category, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Categories),
		Key:       numberKey(id),
	})
	if err != nil {
		return entities.Category{}, err
	}
	if len(out.Item) == 0 {
		return entities.Category{}, nil
	}
	var rec categoryRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Category{}, err
	}
	return entities.Category{ID: rec.ID, Name: rec.Name, Description: rec.Description, Order: rec.Order, IsActive: rec.IsActive}, nil
}

func (r *CatalogDynamoRepository) ListActiveCategories(ctx context.Context) ([]entities.Category, error) {
	var records []categoryRecord
	if err := r.scanActive(ctx, r.tables.Categories, 0, &records); err != nil {
		return nil, err
	}
	out := make([]entities.Category, 0, len(records))
	for _, rec := range records {
		out = append(out, entities.Category{ID: rec.ID, Name: rec.Name, Description: rec.Description, Order: rec.Order, IsActive: rec.IsActive})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return orderedBefore(out[i].Order, out[i].Name, out[j].Order, out[j].Name)
	})
	return out, nil
}

func (r *CatalogDynamoRepository) ListActiveSubCategories(ctx context.Context, categoryID int64) ([]entities.SubCategory, error) {
	var records []categoryRecord
	if err := r.scanActive(ctx, r.tables.SubCategories, categoryID, &records); err != nil {
		return nil, err
	}
	out := make([]entities.SubCategory, 0, len(records))
	for _, rec := range records {
		out = append(out, entities.SubCategory{ID: rec.ID, CategoryID: rec.CategoryID, Name: rec.Name, Description: rec.Description, Order: rec.Order, IsActive: rec.IsActive})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return orderedBefore(out[i].Order, out[i].Name, out[j].Order, out[j].Name)
	})
	return out, nil
}

func (r *CatalogDynamoRepository) ListActiveInstallPhases(ctx context.Context) ([]entities.InstallPhase, error) {
	var records []categoryRecord
	if err := r.scanActive(ctx, r.tables.InstallPhases, 0, &records); err != nil {
		return nil, err
	}
	out := make([]entities.InstallPhase, 0, len(records))
	for _, rec := range records {
		out = append(out, entities.InstallPhase{ID: rec.ID, Name: rec.Name, Description: rec.Description, Order: rec.Order, IsActive: rec.IsActive})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return orderedBefore(out[i].Order, out[i].Name, out[j].Order, out[j].Name)
	})
	return out, nil
}

func (r *CatalogDynamoRepository) SaveCategory(ctx context.Context, c entities.Category) error {
	return r.put(ctx, r.tables.Categories, categoryRecord{ID: c.ID, Name: c.Name, Description: c.Description, Order: c.Order, IsActive: c.IsActive})
}

func (r *CatalogDynamoRepository) SaveSubCategory(ctx context.Context, s entities.SubCategory) error {
	return r.put(ctx, r.tables.SubCategories, categoryRecord{ID: s.ID, CategoryID: s.CategoryID, Name: s.Name, Description: s.Description, Order: s.Order, IsActive: s.IsActive})
}

func (r *CatalogDynamoRepository) SaveInstallPhase(ctx context.Context, p entities.InstallPhase) error {
	return r.put(ctx, r.tables.InstallPhases, categoryRecord{ID: p.ID, Name: p.Name, Description: p.Description, Order: p.Order, IsActive: p.IsActive})
}

func (r *CatalogDynamoRepository) SavePackage(ctx context.Context, p entities.PackageTemplate) error {
	return r.put(ctx, r.tables.Packages, toPackageRecord(p))
}

func (r *CatalogDynamoRepository) put(ctx context.Context, table string, record any) error {
	av, err := attributevalue.MarshalMap(record)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	return err
}

func (r *CatalogDynamoRepository) scanActive(ctx context.Context, table string, categoryID int64, out any) error {
	expr := "#is_active = :active"
	names := map[string]string{"#is_active": "is_active"}
	values := map[string]types.AttributeValue{":active": &types.AttributeValueMemberBOOL{Value: true}}
	if categoryID > 0 {
		expr += " AND #category_id = :category_id"
		names["#category_id"] = "category_id"
		values[":category_id"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(categoryID, 10)}
	}
	return r.scan(ctx, table, expr, names, values, out)
}

// scan follows LastEvaluatedKey until the table is exhausted.
func (r *CatalogDynamoRepository) scan(
	ctx context.Context,
	table, filter string,
	names map[string]string,
	values map[string]types.AttributeValue,
	out any,
) error {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		res, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(table),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return err
		}
		items = append(items, res.Items...)
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}
	return attributevalue.UnmarshalListOfMaps(items, out)
}

// SortPackages orders packages by category, then subcategory (none first), then name.
func SortPackages(pkgs []entities.PackageTemplate) {
	sort.SliceStable(pkgs, func(i, j int) bool {
		a, b := pkgs[i], pkgs[j]
		if a.CategoryID != b.CategoryID {
			return a.CategoryID < b.CategoryID
		}
		as, bs := int64(0), int64(0)
		if a.SubCategoryID != nil {
			as = *a.SubCategoryID
		}
		if b.SubCategoryID != nil {
			bs = *b.SubCategoryID
		}
		if as != bs {
			return as < bs
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
}

func orderedBefore(orderA int, nameA string, orderB int, nameB string) bool {
	if orderA != orderB {
		return orderA < orderB
	}
	return nameA < nameB
}

func toPackageRecord(p entities.PackageTemplate) packageRecord {
	return packageRecord{
		ID:                       p.ID,
		Name:                     p.Name,
		CategoryID:               p.CategoryID,
		SubCategoryID:            p.SubCategoryID,
		Description:              p.Description,
		PriceLow:                 p.PriceLow.StringFixed(2),
		PriceHigh:                p.PriceHigh.StringFixed(2),
		PriceNotes:               p.PriceNotes,
		BundleDiscountNote:       p.BundleDiscountNote,
		UtilityIncentiveEligible: p.UtilityIncentiveEligible,
		InstallPhaseIDs:          p.InstallPhaseIDs,
		RequiresPhaseID:          p.RequiresPhaseID,
		IsActive:                 p.IsActive,
		CreatedAt:                formatTime(p.CreatedAt),
		UpdatedAt:                formatTime(p.UpdatedAt),
	}
}

func fromPackageRecord(rec packageRecord) entities.PackageTemplate {
	return entities.PackageTemplate{
		ID:                       rec.ID,
		Name:                     rec.Name,
		CategoryID:               rec.CategoryID,
		SubCategoryID:            rec.SubCategoryID,
		Description:              rec.Description,
		PriceLow:                 parseDecimal(rec.PriceLow),
		PriceHigh:                parseDecimal(rec.PriceHigh),
		PriceNotes:               rec.PriceNotes,
		BundleDiscountNote:       rec.BundleDiscountNote,
		UtilityIncentiveEligible: rec.UtilityIncentiveEligible,
		InstallPhaseIDs:          rec.InstallPhaseIDs,
		RequiresPhaseID:          rec.RequiresPhaseID,
		IsActive:                 rec.IsActive,
		CreatedAt:                parseTime(rec.CreatedAt),
		UpdatedAt:                parseTime(rec.UpdatedAt),
	}
}
