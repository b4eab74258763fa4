package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	bookingsClientEmailIndex = "client_email-index"
)

type bookingItem struct {
	ID                string `dynamodbav:"id"`
	ClientName        string `dynamodbav:"client_name"`
	ClientEmail       string `dynamodbav:"client_email"`
	ClientPhone       string `dynamodbav:"client_phone,omitempty"`
	SessionType       string `dynamodbav:"session_type"`
	SessionDate       string `dynamodbav:"session_date"`
	SessionPrice      string `dynamodbav:"session_price"`
	DepositAmount     string `dynamodbav:"deposit_amount"`
	Status            string `dynamodbav:"status"`
	PaymentExternalID string `dynamodbav:"payment_external_id"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_email-index (PK: client_email)
//
// Booking ids are derived from the deposit transaction id, so creating the same
// booking twice hits the same row.
type BookingDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb DynamoAPI, tableName string) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, bool, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err == nil {
		return b, true, nil
	}
	if !isConditionalCheckFailed(err) {
		return entities.Booking{}, false, err
	}

	stored, err := r.GetByID(ctx, b.ID)
	if err != nil {
		return entities.Booking{}, false, err
	}
	return stored, false, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	item, err := getItem(ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil {
		return entities.Booking{}, err
	}
	if len(item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

// ListByClientEmail returns the client's bookings ordered by session date.
func (r *BookingDynamoRepository) ListByClientEmail(ctx context.Context, email string) ([]entities.Booking, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsClientEmailIndex),
		KeyConditionExpression: aws.String("client_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: strings.ToLower(email)},
		},
	}

	bookings := make([]entities.Booking, 0)
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it bookingItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			bookings = append(bookings, fromBookingItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].SessionDate.Before(bookings[j].SessionDate)
	})
	return bookings, nil
}

func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:                b.ID,
		ClientName:        b.ClientName,
		ClientEmail:       strings.ToLower(b.ClientEmail),
		ClientPhone:       b.ClientPhone,
		SessionType:       b.SessionType,
		SessionDate:       formatTime(b.SessionDate),
		SessionPrice:      b.SessionPrice.StringFixed(2),
		DepositAmount:     b.DepositAmount.StringFixed(2),
		Status:            string(b.Status),
		PaymentExternalID: b.PaymentExternalID,
		CreatedAt:         formatTime(b.CreatedAt),
		UpdatedAt:         formatTime(b.UpdatedAt),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	return entities.Booking{
		ID:                it.ID,
		ClientName:        it.ClientName,
		ClientEmail:       it.ClientEmail,
		ClientPhone:       it.ClientPhone,
		SessionType:       it.SessionType,
		SessionDate:       parseTime(it.SessionDate),
		SessionPrice:      parseDecimal(it.SessionPrice),
		DepositAmount:     parseDecimal(it.DepositAmount),
		Status:            entities.BookingStatus(it.Status),
		PaymentExternalID: it.PaymentExternalID,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
