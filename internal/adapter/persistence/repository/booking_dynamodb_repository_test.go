package repository

import (
	"context"
	"testing"
	"time"

	"photo_studio/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func bookingAt(id string, day int) entities.Booking {
	return entities.Booking{
		ID:            id,
		ClientName:    "Ana",
		ClientEmail:   "Ana@Test.com",
		SessionType:   "Ensaio",
		SessionDate:   time.Date(2026, 11, day, 14, 0, 0, 0, time.UTC),
		SessionPrice:  decimal.RequireFromString("800"),
		DepositAmount: decimal.RequireFromString("240"),
		Status:        entities.BookingStatusConfirmed,
	}
}

func marshalBooking(t *testing.T, b entities.Booking) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestBookingRepository_CreateExistingReturnsStored(t *testing.T) {
	existing := bookingAt("b1", 20)
	ddb := &fakeDynamo{
		putFn: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		},
		getFn: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: marshalBooking(t, existing)}, nil
		},
	}
	repo := NewBookingDynamoRepository(ddb, "")

	stored, created, err := repo.Create(context.Background(), bookingAt("b1", 21))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected created=false")
	}
	if stored.SessionDate.Day() != 20 {
		t.Fatalf("expected stored booking, got %+v", stored)
	}
	if stored.ClientEmail != "ana@test.com" {
		t.Fatalf("expected lower-cased email, got %s", stored.ClientEmail)
	}
}

func TestBookingRepository_ListByClientEmailPagesAndSorts(t *testing.T) {
	calls := 0
	ddb := &fakeDynamo{
		queryFn: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			calls++
			if calls == 1 {
				return &dynamodb.QueryOutput{
					Items:            []map[string]types.AttributeValue{marshalBooking(t, bookingAt("late", 25))},
					LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "late"}},
				}, nil
			}
			if in.ExclusiveStartKey == nil {
				t.Fatalf("expected second page to start after the first")
			}
			return &dynamodb.QueryOutput{
				Items: []map[string]types.AttributeValue{marshalBooking(t, bookingAt("early", 2))},
			}, nil
		},
	}
	repo := NewBookingDynamoRepository(ddb, "")

	list, err := repo.ListByClientEmail(context.Background(), "ANA@test.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].ID != "early" || list[1].ID != "late" {
		t.Fatalf("expected bookings sorted by session date, got %+v", list)
	}

	q := ddb.queries[0]
	if aws.ToString(q.IndexName) != "client_email-index" {
		t.Fatalf("unexpected index: %s", aws.ToString(q.IndexName))
	}
	email := q.ExpressionAttributeValues[":email"].(*types.AttributeValueMemberS)
	if email.Value != "ana@test.com" {
		t.Fatalf("expected lower-cased email, got %s", email.Value)
	}
}

func TestBookingRepository_UpdateStatusMissing(t *testing.T) {
	ddb := &fakeDynamo{
		updateFn: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		},
	}
	repo := NewBookingDynamoRepository(ddb, "")

	b, err := repo.UpdateStatus(context.Background(), "nope", entities.BookingStatusCancelled)
	if err != nil || b.ID != "" {
		t.Fatalf("expected empty booking, got %+v %v", b, err)
	}
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	cancelled := bookingAt("b1", 20)
	cancelled.Status = entities.BookingStatusCancelled
	ddb := &fakeDynamo{
		updateFn: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			status := in.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS)
			if status.Value != "cancelled" {
				t.Fatalf("unexpected status value %s", status.Value)
			}
			return &dynamodb.UpdateItemOutput{Attributes: marshalBooking(t, cancelled)}, nil
		},
	}
	repo := NewBookingDynamoRepository(ddb, "")

	b, err := repo.UpdateStatus(context.Background(), "b1", entities.BookingStatusCancelled)
	if err != nil || b.Status != entities.BookingStatusCancelled {
		t.Fatalf("unexpected result: %+v %v", b, err)
	}
}
