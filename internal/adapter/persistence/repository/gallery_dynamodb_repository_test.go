package repository

import (
	"context"
	"errors"
	"testing"

	"photo_studio/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func TestGalleryRepository_RecordSelection(t *testing.T) {
	g := entities.Gallery{
		ID:                 "gal-1",
		BookingID:          "b1",
		PackagePhotoCount:  10,
		ExtraPhotoPrice:    decimal.RequireFromString("30"),
		SelectedPhotoIDs:   []string{"a", "b"},
		SelectionPaymentID: "456",
		Status:             entities.GalleryStatusSelectionPaid,
	}
	ddb := &fakeDynamo{
		updateFn: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if aws.ToString(in.ConditionExpression) != "attribute_exists(#id) AND (#status <> :status OR #payment_ref = :payment_ref)" {
				t.Fatalf("unexpected condition %s", aws.ToString(in.ConditionExpression))
			}
			if in.ExpressionAttributeNames["#id"] != "id" || in.ExpressionAttributeNames["#selected"] != "selected_photo_ids" || in.ExpressionAttributeNames["#payment_ref"] != "selection_payment_id" {
				t.Fatalf("unexpected names %+v", in.ExpressionAttributeNames)
			}
			list, ok := in.ExpressionAttributeValues[":selected"].(*types.AttributeValueMemberL)
			if !ok || len(list.Value) != 2 {
				t.Fatalf("expected selected list, got %#v", in.ExpressionAttributeValues[":selected"])
			}
			if ref, ok := in.ExpressionAttributeValues[":payment_ref"].(*types.AttributeValueMemberS); !ok || ref.Value != "456" {
				t.Fatalf("expected payment ref 456, got %#v", in.ExpressionAttributeValues[":payment_ref"])
			}
			av, err := attributevalue.MarshalMap(toGalleryItem(g))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			return &dynamodb.UpdateItemOutput{Attributes: av}, nil
		},
	}
	repo := NewGalleryDynamoRepository(ddb, "")

	got, err := repo.RecordSelection(context.Background(), "gal-1", "456", []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.GalleryStatusSelectionPaid || len(got.SelectedPhotoIDs) != 2 {
		t.Fatalf("unexpected gallery: %+v", got)
	}
	if got.SelectionPaymentID != "456" {
		t.Fatalf("expected payment ref 456, got %q", got.SelectionPaymentID)
	}
	if !got.ExtraPhotoPrice.Equal(decimal.RequireFromString("30")) {
		t.Fatalf("expected extra price 30, got %s", got.ExtraPhotoPrice)
	}
}

func TestGalleryRepository_RecordSelectionUnknownGallery(t *testing.T) {
	ddb := &fakeDynamo{
		updateFn: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		},
	}
	repo := NewGalleryDynamoRepository(ddb, "")

	got, err := repo.RecordSelection(context.Background(), "nope", "456", []string{"a"})
	if err != nil || got.ID != "" {
		t.Fatalf("expected empty gallery, got %+v %v", got, err)
	}
}

func TestGalleryRepository_RecordSelectionKeepsEarlierPayment(t *testing.T) {
	first := entities.Gallery{
		ID:                 "gal-1",
		BookingID:          "b1",
		SelectedPhotoIDs:   []string{"a", "b"},
		SelectionPaymentID: "111",
		Status:             entities.GalleryStatusSelectionPaid,
	}
	stored, err := attributevalue.MarshalMap(toGalleryItem(first))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	ddb := &fakeDynamo{
		updateFn: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		},
		getFn: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: stored}, nil
		},
	}
	repo := NewGalleryDynamoRepository(ddb, "")

	got, err := repo.RecordSelection(context.Background(), "gal-1", "222", []string{"c"})
	if !errors.Is(err, entities.ErrSelectionAlreadyRecorded) {
		t.Fatalf("expected ErrSelectionAlreadyRecorded, got %v", err)
	}
	if got.SelectionPaymentID != "111" || len(got.SelectedPhotoIDs) != 2 {
		t.Fatalf("expected the first selection to be kept, got %+v", got)
	}
}

func TestGalleryRepository_CreateIsConditional(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewGalleryDynamoRepository(ddb, "")

	_, created, err := repo.Create(context.Background(), entities.Gallery{ID: "gal-1", BookingID: "b1"})
	if err != nil || !created {
		t.Fatalf("expected created, got %v %v", created, err)
	}
	if aws.ToString(ddb.puts[0].ConditionExpression) != "attribute_not_exists(#id)" {
		t.Fatalf("expected conditional create")
	}
}
