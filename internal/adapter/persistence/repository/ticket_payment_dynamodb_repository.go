package repository

import (
	"context"
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
	defaultTicketPaymentsTableName = "ticket_payments"
	paymentsTicketIDIndex          = "ticket_id-index"
)

type ticketPaymentItem struct {
	ID                  string `dynamodbav:"id"`
	TicketID            int64  `dynamodbav:"ticket_id"`
	Amount              string `dynamodbav:"amount"`
	Date                string `dynamodbav:"date"`
	Status              string `dynamodbav:"status"`
	ProviderPaymentID   string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderResponseRaw string `dynamodbav:"provider_response_raw,omitempty"`
}

// TicketPaymentDynamoRepository persists TicketPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: ticket_id-index (PK: ticket_id)

type TicketPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITicketPaymentRepository = (*TicketPaymentDynamoRepository)(nil)

func NewTicketPaymentDynamoRepository(ddb *dynamodb.Client) *TicketPaymentDynamoRepository {
	return &TicketPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TICKET_PAYMENTS_TABLE", defaultTicketPaymentsTableName),
	}
}

func (r *TicketPaymentDynamoRepository) Create(ctx context.Context, p entities.TicketPayment) (entities.TicketPayment, error) {
	it := toTicketPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.TicketPayment{}, err
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
		return entities.TicketPayment{}, err
	}
	return p, nil
}

func (r *TicketPaymentDynamoRepository) ListByTicketID(ctx context.Context, ticketID int64) ([]entities.TicketPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsTicketIDIndex),
		KeyConditionExpression: aws.String("ticket_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberN{Value: strconv.FormatInt(ticketID, 10)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.TicketPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it ticketPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTicketPaymentItem(it))
	}
	return items, nil
}

func toTicketPaymentItem(p entities.TicketPayment) ticketPaymentItem {
	return ticketPaymentItem{
		ID:                  p.ID,
		TicketID:            p.TicketID,
		Amount:              floatToString(p.Amount),
		Date:                p.Date.UTC().Format(time.RFC3339Nano),
		Status:              string(p.Status),
		ProviderPaymentID:   p.ProviderPaymentID,
		ProviderResponseRaw: string(p.ProviderResponseRaw),
	}
}

func fromTicketPaymentItem(it ticketPaymentItem) entities.TicketPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.TicketPayment{
		ID:                  it.ID,
		TicketID:            it.TicketID,
		Amount:              amount,
		Date:                dt,
		Status:              entities.PaymentStatus(it.Status),
		ProviderPaymentID:   it.ProviderPaymentID,
		ProviderResponseRaw: []byte(it.ProviderResponseRaw),
	}
}
