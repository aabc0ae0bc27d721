package repository

import (
	"context"
	"errors"
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
	defaultPoliciesTableName = "policies"
	policyNumberIndexName    = "number-index"
)

type policyItem struct {
	ID                string `dynamodbav:"id"`
	Number            string `dynamodbav:"number"`
	IssueDate         string `dynamodbav:"issue_date"`
	StartDate         string `dynamodbav:"start_date"`
	EndDate           string `dynamodbav:"end_date"`
	OriginalStartDate string `dynamodbav:"original_start_date"`
	OriginalEndDate   string `dynamodbav:"original_end_date"`
	InsuredAmount     string `dynamodbav:"insured_amount"`
	MaximumCoverage   string `dynamodbav:"maximum_coverage"`
	Status            string `dynamodbav:"status"`
	Version           int64  `dynamodbav:"version"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// PolicyDynamoRepository persists Policy entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (number-index): number
//
// Monetary fields are stored as plain decimal strings so no float rounding
// ever touches them.

type PolicyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPolicyRepository = (*PolicyDynamoRepository)(nil)

func NewPolicyDynamoRepository(ddb *dynamodb.Client) *PolicyDynamoRepository {
	return &PolicyDynamoRepository{
		ddb:       ddb,
		tableName: tableName("POLICIES_TABLE", defaultPoliciesTableName),
	}
}

func (r *PolicyDynamoRepository) Create(ctx context.Context, p entities.Policy) (entities.Policy, error) {
	av, err := attributevalue.MarshalMap(toPolicyItem(p))
	if err != nil {
		return entities.Policy{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Policy{}, err
	}
	return p, nil
}

func (r *PolicyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Policy, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Policy{}, err
	}
	if len(out.Item) == 0 {
		return entities.Policy{}, nil
	}

	var it policyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyItem(it)
}

func (r *PolicyDynamoRepository) GetByNumber(ctx context.Context, number string) (entities.Policy, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(policyNumberIndexName),
		KeyConditionExpression: aws.String("#number = :number"),
		ExpressionAttributeNames: map[string]string{
			"#number": "number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":number": &types.AttributeValueMemberS{Value: number},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Policy{}, err
	}
	if len(out.Items) == 0 {
		return entities.Policy{}, nil
	}

	var it policyItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyItem(it)
}

func (r *PolicyDynamoRepository) List(ctx context.Context) ([]entities.Policy, error) {
	policies := []entities.Policy{}

	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it policyItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			p, err := fromPolicyItem(it)
			if err != nil {
				return nil, err
			}
			policies = append(policies, p)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	return policies, nil
}

func toPolicyItem(p entities.Policy) policyItem {
	return policyItem{
		ID:                p.ID,
		Number:            p.Number,
		IssueDate:         entities.FormatDate(p.IssueDate),
		StartDate:         entities.FormatDate(p.StartDate),
		EndDate:           entities.FormatDate(p.EndDate),
		OriginalStartDate: entities.FormatDate(p.OriginalStartDate),
		OriginalEndDate:   entities.FormatDate(p.OriginalEndDate),
		InsuredAmount:     p.InsuredAmount.String(),
		MaximumCoverage:   p.MaximumCoverage.String(),
		Status:            string(p.Status),
		Version:           p.Version,
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPolicyItem(it policyItem) (entities.Policy, error) {
	issueDate, err := entities.ParseDate(it.IssueDate)
	if err != nil {
		return entities.Policy{}, err
	}
	startDate, err := entities.ParseDate(it.StartDate)
	if err != nil {
		return entities.Policy{}, err
	}
	endDate, err := entities.ParseDate(it.EndDate)
	if err != nil {
		return entities.Policy{}, err
	}
	originalStartDate, err := entities.ParseDate(it.OriginalStartDate)
	if err != nil {
		return entities.Policy{}, err
	}
	originalEndDate, err := entities.ParseDate(it.OriginalEndDate)
	if err != nil {
		return entities.Policy{}, err
	}
	insuredAmount, err := decimal.NewFromString(it.InsuredAmount)
	if err != nil {
		return entities.Policy{}, err
	}
	maximumCoverage, err := decimal.NewFromString(it.MaximumCoverage)
	if err != nil {
		return entities.Policy{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.Policy{
		ID:                it.ID,
		Number:            it.Number,
		IssueDate:         issueDate,
		StartDate:         startDate,
		EndDate:           endDate,
		OriginalStartDate: originalStartDate,
		OriginalEndDate:   originalEndDate,
		InsuredAmount:     insuredAmount,
		MaximumCoverage:   maximumCoverage,
		Status:            entities.PolicyStatus(it.Status),
		Version:           it.Version,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}, nil
}

func isConditionalCheckFailure(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return true
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	return false
}
