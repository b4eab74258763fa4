package repository

import (
	"context"
	"log"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ExternalID       string            `dynamodbav:"external_id"`
	AttemptID        string            `dynamodbav:"attempt_id"`
	BookingID        string            `dynamodbav:"booking_id,omitempty"`
	GalleryID        string            `dynamodbav:"gallery_id,omitempty"`
	ClientEmail      string            `dynamodbav:"client_email,omitempty"`
	SelectedPhotoIDs []string          `dynamodbav:"selected_photo_ids,omitempty"`
	TotalAmount      string            `dynamodbav:"total_amount"`
	Status           string            `dynamodbav:"status"`
	PaymentMethod    string            `dynamodbav:"payment_method"`
	Metadata         map[string]string `dynamodbav:"metadata,omitempty"`
	CreatedAt        string            `dynamodbav:"created_at"`
	UpdatedAt        string            `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: external_id (string)
//
// The gateway transaction id is the key, so there is at most one order per
// transaction. Writes are conditional: a settled (paid or cancelled) order is
// never overwritten.
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Upsert(ctx context.Context, o entities.Order) (entities.Order, bool, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#external_id) OR #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#external_id": "external_id",
			"#status":      "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.OrderStatusPending)},
		},
	})
	if err == nil {
		return o, true, nil
	}
	if !isConditionalCheckFailed(err) {
		return entities.Order{}, false, err
	}

	stored, err := r.GetByExternalID(ctx, o.ExternalID)
	if err != nil {
		return entities.Order{}, false, err
	}
	log.Printf("[order][repository] order already settled external_id=%s status=%s", stored.ExternalID, stored.Status)
	return stored, false, nil
}

func (r *OrderDynamoRepository) GetByExternalID(ctx context.Context, externalID string) (entities.Order, error) {
	item, err := getItem(ctx, r.ddb, r.tableName, stringKey("external_id", externalID))
	if err != nil {
		return entities.Order{}, err
	}
	if len(item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ExternalID:       o.ExternalID,
		AttemptID:        o.AttemptID,
		BookingID:        o.BookingID,
		GalleryID:        o.GalleryID,
		ClientEmail:      o.ClientEmail,
		SelectedPhotoIDs: o.SelectedPhotoIDs,
		TotalAmount:      o.TotalAmount.StringFixed(2),
		Status:           string(o.Status),
		PaymentMethod:    o.PaymentMethod,
		Metadata:         o.Metadata,
		CreatedAt:        formatTime(o.CreatedAt),
		UpdatedAt:        formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ExternalID:       it.ExternalID,
		AttemptID:        it.AttemptID,
		BookingID:        it.BookingID,
		GalleryID:        it.GalleryID,
		ClientEmail:      it.ClientEmail,
		SelectedPhotoIDs: it.SelectedPhotoIDs,
		TotalAmount:      parseDecimal(it.TotalAmount),
		Status:           entities.OrderStatus(it.Status),
		PaymentMethod:    it.PaymentMethod,
		Metadata:         it.Metadata,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
