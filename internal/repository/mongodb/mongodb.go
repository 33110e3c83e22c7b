package mongodb

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
)

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
// It is safe to call on every start.
func EnsureIndexes(ctx context.Context, db *database.MongoDB) error {
	indexes := map[string][]mongo.IndexModel{
		database.EmployeeCollection: {
			{Keys: bson.D{{Key: "employee_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "approval_status", Value: 1}}},
		},
		database.AdminUserCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		database.AttendanceCollection: {
			{Keys: bson.D{{Key: "employee_id", Value: 1}}},
		},
		database.LeaveCollection: {
			{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
		database.ComplaintCollection: {
			{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
		database.SalaryCollection: {
			{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// containsInsensitive matches documents whose field contains s, ignoring case.
func containsInsensitive(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
