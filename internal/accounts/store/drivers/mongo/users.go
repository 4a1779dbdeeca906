package mongo

import (
	"context"
	"time"

	"github.com/aussiebroadwan/passport/internal/accounts/domain"
	"github.com/aussiebroadwan/passport/internal/accounts/store"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type userDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Role         string    `bson:"role"`
	Favorites    []string  `bson:"favorites"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func toDoc(u domain.User) userDoc {
	favs := u.Favorites
	if favs == nil {
		favs = []string{}
	}
	return userDoc{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Favorites:    favs,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d userDoc) toDomain() domain.User {
	favs := d.Favorites
	if favs == nil {
		favs = []string{}
	}
	return domain.User{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         domain.Role(d.Role),
		Favorites:    favs,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

type usersRepo struct {
	col *mongo.Collection
}

func byID(id string) bson.D { return bson.D{{Key: "_id", Value: id}} }

// now is truncated to BSON datetime precision so callers see what was stored.
func now() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}
	_, err := r.col.InsertOne(ctx, toDoc(u))
	return wrapError(err)
}

func (r *usersRepo) findOne(ctx context.Context, filter bson.D) (domain.User, error) {
	var doc userDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		return domain.User{}, wrapError(err)
	}
	return doc.toDomain(), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.findOne(ctx, byID(id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *usersRepo) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	set := bson.D{{Key: "updated_at", Value: now()}}
	if upd.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *upd.Name})
	}
	if upd.Email != nil {
		set = append(set, bson.E{Key: "email", Value: *upd.Email})
	}
	if upd.PasswordHash != nil {
		set = append(set, bson.E{Key: "password_hash", Value: *upd.PasswordHash})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDoc
	err := r.col.FindOneAndUpdate(ctx, byID(id), bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc)
	if err != nil {
		return domain.User{}, wrapError(err)
	}
	return doc.toDomain(), nil
}

func (r *usersRepo) DeleteUser(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, byID(id))
	if err != nil {
		return wrapError(err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// AddFavorite pushes countryID only when the array does not already hold it.
// The filter and the update run as one document-level atomic operation.
func (r *usersRepo) AddFavorite(ctx context.Context, id, countryID string) error {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "favorites", Value: bson.D{{Key: "$ne", Value: countryID}}},
	}
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "favorites", Value: countryID}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: now()}}},
	}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return wrapError(err)
	}
	if res.MatchedCount == 0 {
		return r.missing(ctx, id, store.ErrFavoriteExists)
	}
	return nil
}

func (r *usersRepo) RemoveFavorite(ctx context.Context, id, countryID string) error {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "favorites", Value: countryID},
	}
	update := bson.D{
		{Key: "$pull", Value: bson.D{{Key: "favorites", Value: countryID}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: now()}}},
	}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return wrapError(err)
	}
	if res.MatchedCount == 0 {
		return r.missing(ctx, id, store.ErrFavoriteNotFound)
	}
	return nil
}

func (r *usersRepo) ListFavorites(ctx context.Context, id string) ([]string, error) {
	opts := options.FindOne().SetProjection(bson.D{{Key: "favorites", Value: 1}})

	var doc userDoc
	if err := r.col.FindOne(ctx, byID(id), opts).Decode(&doc); err != nil {
		return nil, wrapError(err)
	}
	if doc.Favorites == nil {
		return []string{}, nil
	}
	return doc.Favorites, nil
}

// missing explains an update that matched nothing: either the user is gone
// or the favorites condition failed.
func (r *usersRepo) missing(ctx context.Context, id string, otherwise error) error {
	n, err := r.col.CountDocuments(ctx, byID(id))
	if err != nil {
		return wrapError(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return otherwise
}
