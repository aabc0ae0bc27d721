package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"github.com/lukec3x/sgt-d3/internal/domain/entities"
	"github.com/lukec3x/sgt-d3/internal/usecase/interfaces"
)

const (
	defaultEndorsementsTableName = "endorsements"
	endorsementPolicyIndexName   = "policy_id-index"
)

type endorsementItem struct {
	ID                     string `dynamodbav:"id"`
	PolicyID               string `dynamodbav:"policy_id"`
	Sequence               int64  `dynamodbav:"sequence"`
	EndorsementType        string `dynamodbav:"endorsement_type"`
	Status                 string `dynamodbav:"status"`
	InsuredAmount          string `dynamodbav:"insured_amount,omitempty"`
	StartDate              string `dynamodbav:"start_date,omitempty"`
	EndDate                string `dynamodbav:"end_date,omitempty"`
	CancelledEndorsementID string `dynamodbav:"cancelled_endorsement_id,omitempty"`
	IssueDate              string `dynamodbav:"issue_date"`
	CreatedAt              string `dynamodbav:"created_at"`
	UpdatedAt              string `dynamodbav:"updated_at"`
}

// EndorsementDynamoRepository persists Endorsement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (policy_id-index): policy_id (hash) + sequence (range)
//
// The GSI range key makes ListByPolicyID return creation order without a
// client-side sort, which the replay on cancellation depends on.

type EndorsementDynamoRepository struct {
	ddb               *dynamodb.Client
	tableName         string
	policiesTableName string
}

var _ interfaces.IEndorsementRepository = (*EndorsementDynamoRepository)(nil)

func NewEndorsementDynamoRepository(ddb *dynamodb.Client) *EndorsementDynamoRepository {
	return &EndorsementDynamoRepository{
		ddb:               ddb,
		tableName:         tableName("ENDORSEMENTS_TABLE", defaultEndorsementsTableName),
		policiesTableName: tableName("POLICIES_TABLE", defaultPoliciesTableName),
	}
}

func (r *EndorsementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Endorsement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Endorsement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Endorsement{}, nil
	}

	var it endorsementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Endorsement{}, err
	}
	return fromEndorsementItem(it)
}

func (r *EndorsementDynamoRepository) ListByPolicyID(ctx context.Context, policyID string) ([]entities.Endorsement, error) {
	endorsements := []entities.Endorsement{}

	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(endorsementPolicyIndexName),
			KeyConditionExpression: aws.String("#policy_id = :policy_id"),
			ExpressionAttributeNames: map[string]string{
				"#policy_id": "policy_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":policy_id": &types.AttributeValueMemberS{Value: policyID},
			},
			ScanIndexForward:  aws.Bool(true),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it endorsementItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			e, err := fromEndorsementItem(it)
			if err != nil {
				return nil, err
			}
			endorsements = append(endorsements, e)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	return endorsements, nil
}

// Apply writes the endorsement, the recalculated policy state, and (for
// cancellations) the target endorsement's status flip as a single
// TransactWriteItems call. The policy update is conditioned on the version
// the caller read, so a concurrent endorsement against the same policy
// cancels the whole transaction instead of clobbering its state.
func (r *EndorsementDynamoRepository) Apply(ctx context.Context, e entities.Endorsement, upd interfaces.PolicyStateUpdate) (entities.Endorsement, error) {
	av, err := attributevalue.MarshalMap(toEndorsementItem(e))
	if err != nil {
		return entities.Endorsement{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(r.policiesTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: upd.PolicyID},
				},
				UpdateExpression:    aws.String("SET #maximum_coverage = :maximum_coverage, #start_date = :start_date, #end_date = :end_date, #status = :status, #version = :version, #updated_at = :updated_at"),
				ConditionExpression: aws.String("#version = :expected_version"),
				ExpressionAttributeNames: map[string]string{
					"#maximum_coverage": "maximum_coverage",
					"#start_date":       "start_date",
					"#end_date":         "end_date",
					"#status":           "status",
					"#version":          "version",
					"#updated_at":       "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":maximum_coverage": &types.AttributeValueMemberS{Value: upd.MaximumCoverage.String()},
					":start_date":       &types.AttributeValueMemberS{Value: entities.FormatDate(upd.StartDate)},
					":end_date":         &types.AttributeValueMemberS{Value: entities.FormatDate(upd.EndDate)},
					":status":           &types.AttributeValueMemberS{Value: string(upd.Status)},
					":version":          &types.AttributeValueMemberN{Value: strconv.FormatInt(upd.ExpectedVersion+1, 10)},
					":expected_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(upd.ExpectedVersion, 10)},
					":updated_at":       &types.AttributeValueMemberS{Value: now},
				},
			},
		},
	}

	if e.EndorsementType == entities.EndorsementTypeCancellation && e.CancelledEndorsementID != "" {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: e.CancelledEndorsementID},
				},
				UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":status":     &types.AttributeValueMemberS{Value: string(entities.EndorsementStatusCancelled)},
					":updated_at": &types.AttributeValueMemberS{Value: now},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		if isConditionalCheckFailure(err) {
			return entities.Endorsement{}, nil
		}
		return entities.Endorsement{}, err
	}
	return e, nil
}

func toEndorsementItem(e entities.Endorsement) endorsementItem {
	it := endorsementItem{
		ID:                     e.ID,
		PolicyID:               e.PolicyID,
		Sequence:               e.Sequence,
		EndorsementType:        string(e.EndorsementType),
		Status:                 string(e.Status),
		CancelledEndorsementID: e.CancelledEndorsementID,
		IssueDate:              entities.FormatDate(e.IssueDate),
		CreatedAt:              e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:              e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.InsuredAmount != nil {
		it.InsuredAmount = e.InsuredAmount.String()
	}
	if e.StartDate != nil {
		it.StartDate = entities.FormatDate(*e.StartDate)
	}
	if e.EndDate != nil {
		it.EndDate = entities.FormatDate(*e.EndDate)
	}
	return it
}

func fromEndorsementItem(it endorsementItem) (entities.Endorsement, error) {
	issueDate, err := entities.ParseDate(it.IssueDate)
	if err != nil {
		return entities.Endorsement{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	e := entities.Endorsement{
		ID:                     it.ID,
		PolicyID:               it.PolicyID,
		Sequence:               it.Sequence,
		EndorsementType:        entities.EndorsementType(it.EndorsementType),
		Status:                 entities.EndorsementStatus(it.Status),
		CancelledEndorsementID: it.CancelledEndorsementID,
		IssueDate:              issueDate,
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}

	if it.InsuredAmount != "" {
		amount, err := decimal.NewFromString(it.InsuredAmount)
		if err != nil {
			return entities.Endorsement{}, err
		}
		e.InsuredAmount = &amount
	}
	if it.StartDate != "" {
		startDate, err := entities.ParseDate(it.StartDate)
		if err != nil {
			return entities.Endorsement{}, err
		}
		e.StartDate = &startDate
	}
	if it.EndDate != "" {
		endDate, err := entities.ParseDate(it.EndDate)
		if err != nil {
			return entities.Endorsement{}, err
		}
		e.EndDate = &endDate
	}

	return e, nil
}
