package repository

import (
	"context"
	"log"
	"time"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultGalleriesTableName = "galleries"

type galleryItem struct {
	ID                 string   `dynamodbav:"id"`
	BookingID          string   `dynamodbav:"booking_id"`
	Title              string   `dynamodbav:"title"`
	ClientEmail        string   `dynamodbav:"client_email,omitempty"`
	PackagePhotoCount  int      `dynamodbav:"package_photo_count"`
	ExtraPhotoPrice    string   `dynamodbav:"extra_photo_price"`
	PhotoIDs           []string `dynamodbav:"photo_ids,omitempty"`
	SelectedPhotoIDs   []string `dynamodbav:"selected_photo_ids,omitempty"`
	SelectionPaymentID string   `dynamodbav:"selection_payment_id,omitempty"`
	Status             string   `dynamodbav:"status"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

// GalleryDynamoRepository persists Gallery entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type GalleryDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IGalleryRepository = (*GalleryDynamoRepository)(nil)

func NewGalleryDynamoRepository(ddb DynamoAPI, tableName string) *GalleryDynamoRepository {
	return &GalleryDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultGalleriesTableName),
	}
}

func (r *GalleryDynamoRepository) Create(ctx context.Context, g entities.Gallery) (entities.Gallery, bool, error) {
	av, err := attributevalue.MarshalMap(toGalleryItem(g))
	if err != nil {
		return entities.Gallery{}, false, err
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
		return g, true, nil
	}
	if !isConditionalCheckFailed(err) {
		return entities.Gallery{}, false, err
	}

	stored, err := r.GetByID(ctx, g.ID)
	if err != nil {
		return entities.Gallery{}, false, err
	}
	return stored, false, nil
}

func (r *GalleryDynamoRepository) GetByID(ctx context.Context, id string) (entities.Gallery, error) {
	item, err := getItem(ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil {
		return entities.Gallery{}, err
	}
	if len(item) == 0 {
		return entities.Gallery{}, nil
	}

	var it galleryItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Gallery{}, err
	}
	return fromGalleryItem(it), nil
}

// RecordSelection stores the selection paid by paymentRef. Recording the same
// payment again rewrites identical values. A gallery already paid by another
// payment is left untouched and returned with entities.ErrSelectionAlreadyRecorded.
func (r *GalleryDynamoRepository) RecordSelection(ctx context.Context, id, paymentRef string, photoIDs []string) (entities.Gallery, error) {
	selected, err := attributevalue.Marshal(photoIDs)
	if err != nil {
		return entities.Gallery{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND (#status <> :status OR #payment_ref = :payment_ref)"),
		UpdateExpression:    aws.String("SET #selected = :selected, #status = :status, #payment_ref = :payment_ref, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":selected":    selected,
			":status":      &types.AttributeValueMemberS{Value: string(entities.GalleryStatusSelectionPaid)},
			":payment_ref": &types.AttributeValueMemberS{Value: paymentRef},
			":updated_at":  &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#selected":    "selected_photo_ids",
			"#status":      "status",
			"#payment_ref": "selection_payment_id",
			"#updated_at":  "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if !isConditionalCheckFailed(err) {
			return entities.Gallery{}, err
		}
		stored, err := r.GetByID(ctx, id)
		if err != nil || stored.ID == "" {
			return entities.Gallery{}, err
		}
		log.Printf("[gallery][repository] selection already paid gallery_id=%s stored_payment=%s payment=%s", id, stored.SelectionPaymentID, paymentRef)
		return stored, entities.ErrSelectionAlreadyRecorded
	}

	var it galleryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Gallery{}, err
	}
	return fromGalleryItem(it), nil
}

func toGalleryItem(g entities.Gallery) galleryItem {
	return galleryItem{
		ID:                 g.ID,
		BookingID:          g.BookingID,
		Title:              g.Title,
		ClientEmail:        g.ClientEmail,
		PackagePhotoCount:  g.PackagePhotoCount,
		ExtraPhotoPrice:    g.ExtraPhotoPrice.StringFixed(2),
		PhotoIDs:           g.PhotoIDs,
		SelectedPhotoIDs:   g.SelectedPhotoIDs,
		SelectionPaymentID: g.SelectionPaymentID,
		Status:             string(g.Status),
		CreatedAt:          formatTime(g.CreatedAt),
		UpdatedAt:          formatTime(g.UpdatedAt),
	}
}

func fromGalleryItem(it galleryItem) entities.Gallery {
	return entities.Gallery{
		ID:                 it.ID,
		BookingID:          it.BookingID,
		Title:              it.Title,
		ClientEmail:        it.ClientEmail,
		PackagePhotoCount:  it.PackagePhotoCount,
		ExtraPhotoPrice:    parseDecimal(it.ExtraPhotoPrice),
		PhotoIDs:           it.PhotoIDs,
		SelectedPhotoIDs:   it.SelectedPhotoIDs,
		SelectionPaymentID: it.SelectionPaymentID,
		Status:             entities.GalleryStatus(it.Status),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
