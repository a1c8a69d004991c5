package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTicketsTableName = "tickets"

	// ticketCounterID is a reserved item in the tickets table holding the
	// next_id atomic counter. Real tickets start at id 1.
	ticketCounterID = 0
)

type ticketItem struct {
	ID               int64  `dynamodbav:"id"`
	CustomerName     string `dynamodbav:"customer_name"`
	CustomerEmail    string `dynamodbav:"customer_email"`
	DeviceModel      string `dynamodbav:"device_model"`
	SerialNumber     string `dynamodbav:"serial_number"`
	IssueDescription string `dynamodbav:"issue_description"`
	Status           string `dynamodbav:"status"`
	EstimatedCost    string `dynamodbav:"estimated_cost"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// TicketDynamoRepository persists Ticket entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Integer ids are assigned from the counter item (id=0, attribute next_id)
// via UpdateItem ADD, since DynamoDB has no sequences. The dashboard needs
// newest-first ordering; Scan is unordered, so List sorts in memory.

type TicketDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITicketRepository = (*TicketDynamoRepository)(nil)

func NewTicketDynamoRepository(ddb *dynamodb.Client) *TicketDynamoRepository {
	return &TicketDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TICKETS_TABLE", defaultTicketsTableName),
	}
}

func (r *TicketDynamoRepository) Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return entities.Ticket{}, err
	}
	t.ID = id

	it := toTicketItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Ticket{}, err
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
		return entities.Ticket{}, err
	}
	return t, nil
}

func (r *TicketDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Ticket, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Ticket{}, err
	}
	if len(out.Item) == 0 {
		return entities.Ticket{}, nil
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

func (r *TicketDynamoRepository) List(ctx context.Context) ([]entities.Ticket, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#id <> :counter"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":counter": &types.AttributeValueMemberN{Value: strconv.Itoa(ticketCounterID)},
		},
	}

	tickets := []entities.Ticket{}
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it ticketItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			tickets = append(tickets, fromTicketItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	SortTicketsByIDDesc(tickets)
	return tickets, nil
}

func (r *TicketDynamoRepository) UpdateStatusCost(ctx context.Context, id int64, status entities.TicketStatus, cost float64) (entities.Ticket, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #estimated_cost = :estimated_cost, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":         &types.AttributeValueMemberS{Value: string(status)},
			":estimated_cost": &types.AttributeValueMemberS{Value: floatToString(cost)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#status":         "status",
			"#estimated_cost": "estimated_cost",
			"#updated_at":     "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Ticket{}, nil
		}
		return entities.Ticket{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Ticket{}, nil
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

func (r *TicketDynamoRepository) Delete(ctx context.Context, id int64) error {
	// Deleting a nonexistent id is a success: DeleteItem is idempotent and
	// the dashboard treats it as such.
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
	})
	return err
}

func (r *TicketDynamoRepository) nextID(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(ticketCounterID)},
		},
		UpdateExpression: aws.String("ADD #next :one"),
		ExpressionAttributeNames: map[string]string{
			"#next": "next_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	next, ok := out.Attributes["next_id"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("ticket counter returned no next_id")
	}
	return strconv.ParseInt(next.Value, 10, 64)
}

// SortTicketsByIDDesc orders tickets newest-first, the dashboard contract.
func SortTicketsByIDDesc(tickets []entities.Ticket) {
	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].ID > tickets[j].ID
	})
}

func toTicketItem(t entities.Ticket) ticketItem {
	return ticketItem{
		ID:               t.ID,
		CustomerName:     t.CustomerName,
		CustomerEmail:    t.CustomerEmail,
		DeviceModel:      t.DeviceModel,
		SerialNumber:     t.SerialNumber,
		IssueDescription: t.IssueDescription,
		Status:           string(t.Status),
		EstimatedCost:    floatToString(t.EstimatedCost),
		CreatedAt:        t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTicketItem(it ticketItem) entities.Ticket {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	cost, _ := strconv.ParseFloat(it.EstimatedCost, 64)
	return entities.Ticket{
		ID:               it.ID,
		CustomerName:     it.CustomerName,
		CustomerEmail:    it.CustomerEmail,
		DeviceModel:      it.DeviceModel,
		SerialNumber:     it.SerialNumber,
		IssueDescription: it.IssueDescription,
		Status:           entities.TicketStatus(it.Status),
		EstimatedCost:    cost,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
