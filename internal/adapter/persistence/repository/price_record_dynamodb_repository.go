package repository

import (
	"context"
	"time"

	"clinica_billing/internal/domain/entities"
	"clinica_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPriceRecordsTableName = "price_records"
	defaultScopeCodeIndexName    = "scope-code-index"
)

type priceRecordItem struct {
	ScopeCode     string `dynamodbav:"scope_code"`
	EffectiveFrom string `dynamodbav:"effective_from"`
	ID            string `dynamodbav:"id"`
	ScopeID       string `dynamodbav:"scope_id"`
	Code          string `dynamodbav:"code"`
	Price         string `dynamodbav:"price"`
	EffectiveTo   string `dynamodbav:"effective_to,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// PriceRecordDynamoRepository persists PriceRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: scope_code (string, "<scope_id>#<code>")
//   - SK: effective_from (string, RFC3339Nano)
//   - GSI scope-code-index: scope_id (PK) / code (SK), for prefix queries
//
// Open-ended records simply omit the effective_to attribute, so
// attribute_not_exists(effective_to) selects them.

type PriceRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	indexName string
}

var _ interfaces.IPriceStore = (*PriceRecordDynamoRepository)(nil)

func NewPriceRecordDynamoRepository(ddb *dynamodb.Client) *PriceRecordDynamoRepository {
	return &PriceRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICE_RECORDS_TABLE", defaultPriceRecordsTableName),
		indexName: getenvDefault("PRICE_RECORDS_SCOPE_CODE_INDEX", defaultScopeCodeIndexName),
	}
}

func (r *PriceRecordDynamoRepository) QueryOpenPriceRecord(ctx context.Context, scopeID, code string, asOf time.Time) (entities.PriceRecord, error) {
	asOfStr := formatTime(asOf)

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#scope_code = :scope_code AND #effective_from <= :as_of"),
		FilterExpression:       aws.String("attribute_not_exists(#effective_to) OR #effective_to >= :as_of"),
		ExpressionAttributeNames: map[string]string{
			"#scope_code":     "scope_code",
			"#effective_from": "effective_from",
			"#effective_to":   "effective_to",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":scope_code": &types.AttributeValueMemberS{Value: scopeCode(scopeID, code)},
			":as_of":      &types.AttributeValueMemberS{Value: asOfStr},
		},
		// Newest effective_from first, so the first surviving item is the
		// latest-effective match.
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return entities.PriceRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.PriceRecord{}, nil
	}

	var it priceRecordItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PriceRecord{}, err
	}
	return fromPriceRecordItem(it), nil
}

func (r *PriceRecordDynamoRepository) QueryDefaultPricesByCodePrefix(ctx context.Context, prefix string, limit int) ([]entities.PriceRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.indexName),
		KeyConditionExpression: aws.String("#scope_id = :scope_id AND begins_with(#code, :prefix)"),
		FilterExpression:       aws.String("attribute_not_exists(#effective_to)"),
		ExpressionAttributeNames: map[string]string{
			"#scope_id":     "scope_id",
			"#code":         "code",
			"#effective_to": "effective_to",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":scope_id": &types.AttributeValueMemberS{Value: entities.OrganizationDefaultScopeID},
			":prefix":   &types.AttributeValueMemberS{Value: prefix},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.PriceRecord, 0, limit)
	for _, item := range out.Items {
		if len(records) == limit {
			break
		}
		var it priceRecordItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		records = append(records, fromPriceRecordItem(it))
	}
	return records, nil
}

func (r *PriceRecordDynamoRepository) CloseOpenPriceRecord(ctx context.Context, scopeID, code string, closedAt time.Time) error {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#scope_code = :scope_code"),
		FilterExpression:       aws.String("attribute_not_exists(#effective_to)"),
		ExpressionAttributeNames: map[string]string{
			"#scope_code":   "scope_code",
			"#effective_to": "effective_to",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":scope_code": &types.AttributeValueMemberS{Value: scopeCode(scopeID, code)},
		},
	})
	if err != nil {
		return err
	}

	closedAtStr := formatTime(closedAt)
	for _, item := range out.Items {
		var it priceRecordItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return err
		}
		_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"scope_code":     &types.AttributeValueMemberS{Value: it.ScopeCode},
				"effective_from": &types.AttributeValueMemberS{Value: it.EffectiveFrom},
			},
			UpdateExpression: aws.String("SET #effective_to = :effective_to"),
			ExpressionAttributeNames: map[string]string{
				"#effective_to": "effective_to",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":effective_to": &types.AttributeValueMemberS{Value: closedAtStr},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PriceRecordDynamoRepository) InsertPriceRecord(ctx context.Context, record entities.PriceRecord) error {
	av, err := attributevalue.MarshalMap(toPriceRecordItem(record))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func scopeCode(scopeID, code string) string {
	return scopeID + "#" + code
}

func toPriceRecordItem(rec entities.PriceRecord) priceRecordItem {
	it := priceRecordItem{
		ScopeCode:     scopeCode(rec.ScopeID, rec.Code),
		EffectiveFrom: formatTime(rec.EffectiveFrom),
		ID:            rec.ID,
		ScopeID:       rec.ScopeID,
		Code:          rec.Code,
		Price:         floatToString(rec.Price),
		CreatedAt:     formatTime(rec.CreatedAt),
	}
	if rec.EffectiveTo != nil {
		it.EffectiveTo = formatTime(*rec.EffectiveTo)
	}
	return it
}

func fromPriceRecordItem(it priceRecordItem) entities.PriceRecord {
	rec := entities.PriceRecord{
		ID:            it.ID,
		ScopeID:       it.ScopeID,
		Code:          it.Code,
		Price:         stringToFloat(it.Price),
		EffectiveFrom: parseTime(it.EffectiveFrom),
		CreatedAt:     parseTime(it.CreatedAt),
	}
	if it.EffectiveTo != "" {
		to := parseTime(it.EffectiveTo)
		rec.EffectiveTo = &to
	}
	return rec
}
