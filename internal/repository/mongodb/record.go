package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emptrack/emptrack-backend-go/internal/domain/record/complaint"
	"github.com/emptrack/emptrack-backend-go/internal/domain/record/location"
	"github.com/emptrack/emptrack-backend-go/internal/domain/record/salary"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
)

var newestFirst = bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}

// Complaints

type complaintDocument struct {
	ID          string    `bson:"_id"`
	EmployeeID  string    `bson:"employee_id"`
	Title       string    `bson:"title"`
	From        string    `bson:"from"`
	To          string    `bson:"to"`
	Description string    `bson:"description"`
	Timestamp   time.Time `bson:"timestamp"`
}

type complaintRepositoryImpl struct {
	collection *mongo.Collection
}

func NewComplaintRepository(db *database.MongoDB) complaint.ComplaintRepository {
	return &complaintRepositoryImpl{collection: db.Collection(database.ComplaintCollection)}
}

// GetByEmployeeID implements complaint.ComplaintRepository.
func (r *complaintRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]complaint.Complaint, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"employee_id": employeeID}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, database.Unavailable("list complaints", err)
	}
	defer cursor.Close(ctx)

	var docs []complaintDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, database.Unavailable("decode complaints", err)
	}

	complaints := make([]complaint.Complaint, 0, len(docs))
	for _, d := range docs {
		complaints = append(complaints, complaint.Complaint{
			ID:          d.ID,
			EmployeeID:  d.EmployeeID,
			Title:       d.Title,
			From:        d.From,
			To:          d.To,
			Description: d.Description,
			Timestamp:   d.Timestamp,
		})
	}
	return complaints, nil
}

// Salaries

type salaryDocument struct {
	ID             string    `bson:"_id"`
	EmployeeID     string    `bson:"employee_id"`
	BasicSalary    float64   `bson:"basic_salary"`
	NumberOfLeaves int       `bson:"number_of_leaves"`
	Timestamp      time.Time `bson:"timestamp"`
}

type salaryRepositoryImpl struct {
	collection *mongo.Collection
}

func NewSalaryRepository(db *database.MongoDB) salary.SalaryRepository {
	return &salaryRepositoryImpl{collection: db.Collection(database.SalaryCollection)}
}

// GetByEmployeeID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (salary.Salary, error) {
	var doc salaryDocument
	opts := options.FindOne().SetSort(newestFirst)
	if err := r.collection.FindOne(ctx, bson.M{"employee_id": employeeID}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, database.Unavailable("get salary", err)
	}
	return salary.Salary{
		ID:             doc.ID,
		EmployeeID:     doc.EmployeeID,
		BasicSalary:    doc.BasicSalary,
		NumberOfLeaves: doc.NumberOfLeaves,
		Timestamp:      doc.Timestamp,
	}, nil
}

// Location pings

type pingDocument struct {
	ID         string    `bson:"_id"`
	EmployeeID string    `bson:"employee_id"`
	Location   string    `bson:"location"`
	Timestamp  time.Time `bson:"timestamp"`
}

func (d pingDocument) toEntity() location.Ping {
	return location.Ping{
		ID:         d.ID,
		EmployeeID: d.EmployeeID,
		Location:   d.Location,
		Timestamp:  d.Timestamp,
	}
}

type locationRepositoryImpl struct {
	collection *mongo.Collection
}

func NewLocationRepository(db *database.MongoDB) location.LocationRepository {
	return &locationRepositoryImpl{collection: db.Collection(database.LocationCollection)}
}

// Create implements location.LocationRepository.
func (r *locationRepositoryImpl) Create(ctx context.Context, ping location.Ping) (location.Ping, error) {
	doc := pingDocument{
		ID:         newID(),
		EmployeeID: ping.EmployeeID,
		Location:   ping.Location,
		Timestamp:  time.Now().UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return location.Ping{}, database.Unavailable("create location ping", err)
	}
	return doc.toEntity(), nil
}

// List implements location.LocationRepository.
func (r *locationRepositoryImpl) List(ctx context.Context) ([]location.Ping, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, database.Unavailable("list location pings", err)
	}
	defer cursor.Close(ctx)

	var docs []pingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, database.Unavailable("decode location pings", err)
	}

	pings := make([]location.Ping, 0, len(docs))
	for _, d := range docs {
		pings = append(pings, d.toEntity())
	}
	return pings, nil
}
