package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
	"github.com/Asfa64/DOC-ASFA/internal/core/ports"
)

const buttonsCollection = "buttons"

type MongoButtonRepository struct {
	coll *mongo.Collection
}

func NewButtonRepository(db *mongo.Database) *MongoButtonRepository {
	return &MongoButtonRepository{coll: db.Collection(buttonsCollection)}
}

type mongoLink struct {
	Kind     string `bson:"kind"`
	URL      string `bson:"url,omitempty"`
	Filename string `bson:"filename,omitempty"`
}

type mongoButton struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	Color      string             `bson:"color"`
	Shape      string             `bson:"shape"`
	Tooltip    string             `bson:"tooltip,omitempty"`
	Link       mongoLink          `bson:"link"`
	ProfileIDs []string           `bson:"profile_ids"`
}

func (mb mongoButton) toDomain() domain.Button {
	profileIDs := mb.ProfileIDs
	if profileIDs == nil {
		profileIDs = []string{}
	}
	return domain.Button{
		ID:      mb.ID.Hex(),
		Title:   mb.Title,
		Color:   mb.Color,
		Shape:   domain.ButtonShape(mb.Shape),
		Tooltip: mb.Tooltip,
		Link: domain.Link{
			Kind:     domain.LinkKind(mb.Link.Kind),
			URL:      mb.Link.URL,
			Filename: mb.Link.Filename,
		},
		ProfileIDs: profileIDs,
	}
}

// List returns the launcher buttons in insertion order, capped at
// MaxButtons at the query level like the original record-store fetch.
func (r *MongoButtonRepository) List(ctx context.Context) ([]domain.Button, error) {
	opts := options.Find().SetLimit(domain.MaxButtons)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list buttons: %w", err)
	}
	defer cursor.Close(ctx)

	var buttons []domain.Button
	for cursor.Next(ctx) {
		var mb mongoButton
		if err := cursor.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode button: %w", err)
		}
		buttons = append(buttons, mb.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list buttons: %w", err)
	}
	return buttons, nil
}

func (r *MongoButtonRepository) Create(ctx context.Context, button *domain.Button) (*domain.Button, error) {
	doc := mongoButton{
		Title:   button.Title,
		Color:   button.Color,
		Shape:   string(button.Shape),
		Tooltip: button.Tooltip,
		Link: mongoLink{
			Kind:     string(button.Link.Kind),
			URL:      button.Link.URL,
			Filename: button.Link.Filename,
		},
		ProfileIDs: button.ProfileIDs,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert button: %w", err)
	}

	created := *button
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoButtonRepository) Update(ctx context.Context, id string, update ports.UpdateButtonInput) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrButtonNotFound
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Color != nil {
		set["color"] = *update.Color
	}
	if update.Shape != nil {
		set["shape"] = string(*update.Shape)
	}
	if update.Tooltip != nil {
		set["tooltip"] = *update.Tooltip
	}
	if update.Link != nil {
		set["link"] = mongoLink{
			Kind:     string(update.Link.Kind),
			URL:      update.Link.URL,
			Filename: update.Link.Filename,
		}
	}
	if update.ProfileIDs != nil {
		set["profile_ids"] = *update.ProfileIDs
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update button: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrButtonNotFound
	}
	return nil
}

func (r *MongoButtonRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrButtonNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete button: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrButtonNotFound
	}
	return nil
}
