package repository

import (
	"context"
	"log"
	"strconv"
	"time"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentAttemptsTableName = "payment_attempts"

type paymentAttemptItem struct {
	ID           string              `dynamodbav:"id"`
	ExternalID   string              `dynamodbav:"external_id,omitempty"`
	Kind         string              `dynamodbav:"kind"`
	Status       string              `dynamodbav:"status"`
	State        string              `dynamodbav:"state"`
	Amount       string              `dynamodbav:"amount"`
	PayerEmail   string              `dynamodbav:"payer_email,omitempty"`
	QRCode       string              `dynamodbav:"qr_code,omitempty"`
	QRCodeBase64 string              `dynamodbav:"qr_code_base64,omitempty"`
	Booking      *bookingDraftItem   `dynamodbav:"booking,omitempty"`
	Selection    *selectionDraftItem `dynamodbav:"selection,omitempty"`
	CreatedAt    string              `dynamodbav:"created_at"`
	UpdatedAt    string              `dynamodbav:"updated_at"`
}

type bookingDraftItem struct {
	ClientName   string `dynamodbav:"client_name"`
	ClientEmail  string `dynamodbav:"client_email"`
	ClientPhone  string `dynamodbav:"client_phone,omitempty"`
	SessionType  string `dynamodbav:"session_type"`
	SessionDate  string `dynamodbav:"session_date"`
	SessionPrice string `dynamodbav:"session_price"`
}

type selectionDraftItem struct {
	GalleryID        string            `dynamodbav:"gallery_id"`
	SelectedPhotoIDs []string          `dynamodbav:"selected_photo_ids,omitempty"`
	Breakdown        map[string]string `dynamodbav:"breakdown"`
}

// PaymentAttemptDynamoRepository persists PaymentAttempt entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type PaymentAttemptDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentAttemptRepository = (*PaymentAttemptDynamoRepository)(nil)

func NewPaymentAttemptDynamoRepository(ddb DynamoAPI, tableName string) *PaymentAttemptDynamoRepository {
	return &PaymentAttemptDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPaymentAttemptsTableName),
	}
}

// Save writes the attempt unless the stored row already reached a terminal
// poll state, in which case entities.ErrTerminalPollState is returned.
func (r *PaymentAttemptDynamoRepository) Save(ctx context.Context, a entities.PaymentAttempt) error {
	av, err := attributevalue.MarshalMap(toPaymentAttemptItem(a))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR attribute_not_exists(#state) OR #state IN (:idle, :awaiting)"),
		ExpressionAttributeNames: map[string]string{
			"#id":    "id",
			"#state": "state",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":idle":     &types.AttributeValueMemberS{Value: string(entities.PollStateIdle)},
			":awaiting": &types.AttributeValueMemberS{Value: string(entities.PollStateAwaitingPayment)},
		},
	})
	if err != nil && isConditionalCheckFailed(err) {
		log.Printf("[payment][repository] attempt already finished attempt_id=%s state=%s", a.ID, a.State)
		return entities.ErrTerminalPollState
	}
	return err
}

func (r *PaymentAttemptDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentAttempt, error) {
	item, err := getItem(ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if len(item) == 0 {
		return entities.PaymentAttempt{}, nil
	}

	var it paymentAttemptItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.PaymentAttempt{}, err
	}
	return fromPaymentAttemptItem(it), nil
}

func (r *PaymentAttemptDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
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
	})
	if err != nil && isConditionalCheckFailed(err) {
		log.Printf("[payment][repository] attempt not found on status update attempt_id=%s", id)
		return nil
	}
	return err
}

func toPaymentAttemptItem(a entities.PaymentAttempt) paymentAttemptItem {
	it := paymentAttemptItem{
		ID:           a.ID,
		ExternalID:   a.ExternalID,
		Kind:         string(a.Kind),
		Status:       string(a.Status),
		State:        string(a.State),
		Amount:       a.Amount.StringFixed(2),
		PayerEmail:   a.PayerEmail,
		QRCode:       a.QRCode,
		QRCodeBase64: a.QRCodeBase64,
		CreatedAt:    formatTime(a.CreatedAt),
		UpdatedAt:    formatTime(a.UpdatedAt),
	}
	if b := a.Booking; b != nil {
		it.Booking = &bookingDraftItem{
			ClientName:   b.ClientName,
			ClientEmail:  b.ClientEmail,
			ClientPhone:  b.ClientPhone,
			SessionType:  b.SessionType,
			SessionDate:  formatTime(b.SessionDate),
			SessionPrice: b.SessionPrice.StringFixed(2),
		}
	}
	if s := a.Selection; s != nil {
		it.Selection = &selectionDraftItem{
			GalleryID:        s.GalleryID,
			SelectedPhotoIDs: s.SelectedPhotoIDs,
			Breakdown:        breakdownToMap(s.Breakdown),
		}
	}
	return it
}

func fromPaymentAttemptItem(it paymentAttemptItem) entities.PaymentAttempt {
	a := entities.PaymentAttempt{
		ID:           it.ID,
		ExternalID:   it.ExternalID,
		Kind:         entities.AttemptKind(it.Kind),
		Status:       entities.PaymentStatus(it.Status),
		State:        entities.PollState(it.State),
		Amount:       parseDecimal(it.Amount),
		PayerEmail:   it.PayerEmail,
		QRCode:       it.QRCode,
		QRCodeBase64: it.QRCodeBase64,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
	if b := it.Booking; b != nil {
		a.Booking = &entities.BookingDraft{
			ClientName:   b.ClientName,
			ClientEmail:  b.ClientEmail,
			ClientPhone:  b.ClientPhone,
			SessionType:  b.SessionType,
			SessionDate:  parseTime(b.SessionDate),
			SessionPrice: parseDecimal(b.SessionPrice),
		}
	}
	if s := it.Selection; s != nil {
		a.Selection = &entities.SelectionDraft{
			GalleryID:        s.GalleryID,
			SelectedPhotoIDs: s.SelectedPhotoIDs,
			Breakdown:        breakdownFromMap(s.Breakdown),
		}
	}
	return a
}

func breakdownToMap(b entities.PriceBreakdown) map[string]string {
	return map[string]string{
		"selected_count":     strconv.Itoa(b.SelectedCount),
		"included_count":     strconv.Itoa(b.IncludedCount),
		"extra_count":        strconv.Itoa(b.ExtraCount),
		"extra_gross_amount": b.ExtraGrossAmount.StringFixed(2),
		"discount_rate":      b.DiscountRate.String(),
		"discount_amount":    b.DiscountAmount.StringFixed(2),
		"extra_net_amount":   b.ExtraNetAmount.StringFixed(2),
		"total_due":          b.TotalDue.StringFixed(2),
		"is_free_tier":       strconv.FormatBool(b.IsFreeTier),
	}
}

func breakdownFromMap(m map[string]string) entities.PriceBreakdown {
	atoi := func(k string) int {
		n, _ := strconv.Atoi(m[k])
		return n
	}
	free, _ := strconv.ParseBool(m["is_free_tier"])
	return entities.PriceBreakdown{
		SelectedCount:    atoi("selected_count"),
		IncludedCount:    atoi("included_count"),
		ExtraCount:       atoi("extra_count"),
		ExtraGrossAmount: parseDecimal(m["extra_gross_amount"]),
		DiscountRate:     parseDecimal(m["discount_rate"]),
		DiscountAmount:   parseDecimal(m["discount_amount"]),
		ExtraNetAmount:   parseDecimal(m["extra_net_amount"]),
		TotalDue:         parseDecimal(m["total_due"]),
		IsFreeTier:       free,
	}
}
