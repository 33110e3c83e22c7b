package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/emptrack/emptrack-backend-go/internal/domain/user"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
)

type adminUserDocument struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (d adminUserDocument) toEntity() user.AdminUser {
	return user.AdminUser{
		ID:           d.ID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type userRepositoryImpl struct {
	collection *mongo.Collection
}

func NewUserRepository(db *database.MongoDB) user.UserRepository {
	return &userRepositoryImpl{collection: db.Collection(database.AdminUserCollection)}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.AdminUser) (user.AdminUser, error) {
	now := time.Now().UTC()
	doc := adminUserDocument{
		ID:           newID(),
		Username:     newUser.Username,
		PasswordHash: newUser.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return user.AdminUser{}, user.ErrUsernameExists
		}
		return user.AdminUser{}, database.Unavailable("create admin user", err)
	}
	return doc.toEntity(), nil
}

// Count implements user.UserRepository.
func (r *userRepositoryImpl) Count(ctx context.Context) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, database.Unavailable("count admin users", err)
	}
	return total, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.AdminUser, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.AdminUser, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *userRepositoryImpl) findOne(ctx context.Context, filter bson.M) (user.AdminUser, error) {
	var doc adminUserDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.AdminUser{}, user.ErrUserNotFound
		}
		return user.AdminUser{}, database.Unavailable("get admin user", err)
	}
	return doc.toEntity(), nil
}
