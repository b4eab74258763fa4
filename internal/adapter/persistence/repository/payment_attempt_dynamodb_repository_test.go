package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"photo_studio/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func TestPaymentAttemptRepository_SaveAndGetRoundTrip(t *testing.T) {
	a := entities.PaymentAttempt{
		ID:         "att-1",
		ExternalID: "456",
		Kind:       entities.AttemptKindSelection,
		Status:     entities.PaymentStatusPending,
		State:      entities.PollStateAwaitingPayment,
		Amount:     decimal.RequireFromString("297"),
		PayerEmail: "ana@test.com",
		QRCode:     "000201",
		Selection: &entities.SelectionDraft{
			GalleryID:        "gal-1",
			SelectedPhotoIDs: []string{"a", "b"},
			Breakdown: entities.PriceBreakdown{
				SelectedCount: 21,
				IncludedCount: 10,
				ExtraCount:    11,
				DiscountRate:  decimal.RequireFromString("0.10"),
				TotalDue:      decimal.RequireFromString("297"),
			},
		},
		CreatedAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}

	var saved map[string]types.AttributeValue
	ddb := &fakeDynamo{
		putFn: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			if in.ConditionExpression == nil || *in.ConditionExpression != "attribute_not_exists(#id) OR attribute_not_exists(#state) OR #state IN (:idle, :awaiting)" {
				t.Fatalf("unexpected condition: %v", in.ConditionExpression)
			}
			saved = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
		getFn: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: saved}, nil
		},
	}
	repo := NewPaymentAttemptDynamoRepository(ddb, "")

	if err := repo.Save(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := repo.GetByID(context.Background(), "att-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Booking != nil || got.Selection == nil {
		t.Fatalf("unexpected drafts: %+v", got)
	}
	if got.Selection.Breakdown.ExtraCount != 11 || !got.Selection.Breakdown.TotalDue.Equal(a.Amount) {
		t.Fatalf("breakdown not preserved: %+v", got.Selection.Breakdown)
	}
	if got.State != entities.PollStateAwaitingPayment || !got.Amount.Equal(a.Amount) || !got.CreatedAt.Equal(a.CreatedAt) {
		t.Fatalf("attempt not preserved: %+v", got)
	}
}

func TestPaymentAttemptItem_BookingDraft(t *testing.T) {
	a := entities.PaymentAttempt{
		ID:   "att-2",
		Kind: entities.AttemptKindDeposit,
		Booking: &entities.BookingDraft{
			ClientName:   "Ana",
			ClientEmail:  "ana@test.com",
			SessionType:  "Ensaio",
			SessionDate:  time.Date(2026, 11, 20, 14, 0, 0, 0, time.UTC),
			SessionPrice: decimal.RequireFromString("799.90"),
		},
	}

	av, err := attributevalue.MarshalMap(toPaymentAttemptItem(a))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var it paymentAttemptItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := fromPaymentAttemptItem(it)
	if got.Booking == nil || !got.Booking.SessionPrice.Equal(a.Booking.SessionPrice) || !got.Booking.SessionDate.Equal(a.Booking.SessionDate) {
		t.Fatalf("booking draft not preserved: %+v", got.Booking)
	}
}

func TestPaymentAttemptRepository_UpdateStatusMissingIsNoop(t *testing.T) {
	ddb := &fakeDynamo{
		updateFn: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		},
	}
	repo := NewPaymentAttemptDynamoRepository(ddb, "")

	if err := repo.UpdateStatus(context.Background(), "nope", entities.PaymentStatusApproved); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if len(ddb.updates) != 1 {
		t.Fatalf("expected one update call")
	}
}

func TestPaymentAttemptRepository_SaveRefusesFinishedAttempt(t *testing.T) {
	ddb := &fakeDynamo{
		putFn: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			if v, ok := in.ExpressionAttributeValues[":awaiting"].(*types.AttributeValueMemberS); !ok || v.Value != "awaiting_payment" {
				t.Fatalf("unexpected :awaiting value: %v", in.ExpressionAttributeValues[":awaiting"])
			}
			return nil, &types.ConditionalCheckFailedException{}
		},
	}
	repo := NewPaymentAttemptDynamoRepository(ddb, "")

	a := entities.PaymentAttempt{ID: "att-1", State: entities.PollStateCancelled, Status: entities.PaymentStatusCancelled}
	if err := repo.Save(context.Background(), a); !errors.Is(err, entities.ErrTerminalPollState) {
		t.Fatalf("expected ErrTerminalPollState, got %v", err)
	}
}
