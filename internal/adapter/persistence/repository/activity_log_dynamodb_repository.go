package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

const (
	defaultActivityTableName = "activity_log"
	activityEntityIndex      = "entity-index"
	// fixed width keeps sort keys in chronological order
	sortableTime = "2006-01-02T15:04:05.000000000Z"
)

// DynamoDBAPI is the subset of *dynamodb.Client the activity log needs.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type activityItem struct {
	TenantID    string            `dynamodbav:"tenant_id"`
	SortKey     string            `dynamodbav:"sk"`
	EntityKey   string            `dynamodbav:"entity_key"`
	ID          string            `dynamodbav:"id"`
	ActorUserID string            `dynamodbav:"actor_user_id"`
	EntityType  string            `dynamodbav:"entity_type"`
	EntityID    string            `dynamodbav:"entity_id"`
	Action      string            `dynamodbav:"action"`
	Detail      map[string]string `dynamodbav:"detail,omitempty"`
	CreatedAt   string            `dynamodbav:"created_at"`
}

// ActivityLogDynamoRepository stores the append-only activity log in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string), SK: sk (string, "<created_at>#<id>")
//   - GSI entity-index: PK entity_key ("<tenant_id>#<entity_type>#<entity_id>"), SK sk
//
// sk timestamps are fixed-width UTC, so a descending query on sk returns newest first.
type ActivityLogDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IActivityLogRepository = (*ActivityLogDynamoRepository)(nil)

func NewActivityLogDynamoRepository(ddb DynamoDBAPI) *ActivityLogDynamoRepository {
	return &ActivityLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTIVITY_TABLE", defaultActivityTableName),
	}
}

func (r *ActivityLogDynamoRepository) Append(ctx context.Context, e entities.ActivityLogEntry) error {
	av, err := attributevalue.MarshalMap(toActivityItem(e))
	if err != nil {
		return fmt.Errorf("marshal activity entry: %w", err)
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "sk",
		},
	})
	if err != nil {
		return fmt.Errorf("put activity entry: %w", err)
	}
	return nil
}

func (r *ActivityLogDynamoRepository) List(ctx context.Context, tenantID string, f interfaces.ActivityFilter) ([]entities.ActivityLogEntry, error) {
	in := &dynamodb.QueryInput{
		TableName:        aws.String(r.tableName),
		ScanIndexForward: aws.Bool(false),
	}
	if f.Limit > 0 {
		in.Limit = aws.Int32(int32(f.Limit))
	}

	switch {
	case f.EntityType != "" && f.EntityID != "":
		in.IndexName = aws.String(activityEntityIndex)
		in.KeyConditionExpression = aws.String("#ek = :ek")
		// entity_key is a joined string; the tenant filter keeps a colliding key in its own tenant.
		in.FilterExpression = aws.String("#tid = :tid")
		in.ExpressionAttributeNames = map[string]string{"#ek": "entity_key", "#tid": "tenant_id"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":ek":  &types.AttributeValueMemberS{Value: entityKey(tenantID, f.EntityType, f.EntityID)},
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		}
		in.Limit = nil
	default:
		in.KeyConditionExpression = aws.String("#tid = :tid")
		in.ExpressionAttributeNames = map[string]string{"#tid": "tenant_id"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		}
		if f.EntityType != "" {
			in.FilterExpression = aws.String("#et = :et")
			in.ExpressionAttributeNames["#et"] = "entity_type"
			in.ExpressionAttributeValues[":et"] = &types.AttributeValueMemberS{Value: string(f.EntityType)}
			// Limit applies before the filter; page until enough rows match.
			in.Limit = nil
		}
	}

	var out []entities.ActivityLogEntry
	for {
		res, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("query activity log: %w", err)
		}
		var items []activityItem
		if err := attributevalue.UnmarshalListOfMaps(res.Items, &items); err != nil {
			return nil, fmt.Errorf("unmarshal activity log: %w", err)
		}
		for _, it := range items {
			out = append(out, fromActivityItem(it))
		}
		if len(res.LastEvaluatedKey) == 0 || (f.Limit > 0 && len(out) >= f.Limit) {
			break
		}
		in.ExclusiveStartKey = res.LastEvaluatedKey
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	if out == nil {
		out = []entities.ActivityLogEntry{}
	}
	return out, nil
}

func entityKey(tenantID string, t entities.EntityType, entityID string) string {
	return strings.Join([]string{tenantID, string(t), entityID}, "#")
}

func toActivityItem(e entities.ActivityLogEntry) activityItem {
	return activityItem{
		TenantID:    e.TenantID,
		SortKey:     e.CreatedAt.UTC().Format(sortableTime) + "#" + e.ID,
		EntityKey:   entityKey(e.TenantID, e.EntityType, e.EntityID),
		ID:          e.ID,
		ActorUserID: e.ActorUserID,
		EntityType:  string(e.EntityType),
		EntityID:    e.EntityID,
		Action:      e.Action,
		Detail:      e.Detail,
		CreatedAt:   formatTime(e.CreatedAt),
	}
}

func fromActivityItem(it activityItem) entities.ActivityLogEntry {
	return entities.ActivityLogEntry{
		ID:          it.ID,
		TenantID:    it.TenantID,
		ActorUserID: it.ActorUserID,
		EntityType:  entities.EntityType(it.EntityType),
		EntityID:    it.EntityID,
		Action:      it.Action,
		Detail:      it.Detail,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
