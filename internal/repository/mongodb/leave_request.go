package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emptrack/emptrack-backend-go/internal/domain/approval"
	"github.com/emptrack/emptrack-backend-go/internal/domain/leave"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
)

type leaveRequestDocument struct {
	ID             string    `bson:"_id"`
	EmployeeID     string    `bson:"employee_id"`
	StartDate      time.Time `bson:"start_date"`
	EndDate        time.Time `bson:"end_date"`
	Reason         string    `bson:"reason"`
	LeaveType      string    `bson:"leave_type"`
	To             string    `bson:"to"`
	ApprovalStatus string    `bson:"approval_status"`
	Timestamp      time.Time `bson:"timestamp"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

func (d leaveRequestDocument) toEntity() leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:             d.ID,
		EmployeeID:     d.EmployeeID,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		Reason:         d.Reason,
		LeaveType:      leave.LeaveType(d.LeaveType),
		To:             d.To,
		ApprovalStatus: approval.Status(d.ApprovalStatus),
		Timestamp:      d.Timestamp,
		UpdatedAt:      d.UpdatedAt,
	}
}

type leaveRequestRepositoryImpl struct {
	collection *mongo.Collection
}

func NewLeaveRequestRepository(db *database.MongoDB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{collection: db.Collection(database.LeaveCollection)}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	now := time.Now().UTC()
	status := request.ApprovalStatus
	if status == "" {
		status = approval.Initial()
	}

	doc := leaveRequestDocument{
		ID:             newID(),
		EmployeeID:     request.EmployeeID,
		StartDate:      request.StartDate,
		EndDate:        request.EndDate,
		Reason:         request.Reason,
		LeaveType:      string(request.LeaveType),
		To:             request.To,
		ApprovalStatus: string(status),
		Timestamp:      now,
		UpdatedAt:      now,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return leave.LeaveRequest{}, database.Unavailable("create leave request", err)
	}
	return doc.toEntity(), nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, employeeID, id string) (leave.LeaveRequest, error) {
	var doc leaveRequestDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "employee_id": employeeID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, database.Unavailable("get leave request", err)
	}
	return doc.toEntity(), nil
}

// GetByEmployeeID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"employee_id": employeeID}, opts)
	if err != nil {
		return nil, database.Unavailable("list leave requests", err)
	}
	defer cursor.Close(ctx)

	var docs []leaveRequestDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, database.Unavailable("decode leave requests", err)
	}

	requests := make([]leave.LeaveRequest, 0, len(docs))
	for _, d := range docs {
		requests = append(requests, d.toEntity())
	}
	return requests, nil
}

// UpdateApprovalStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateApprovalStatus(ctx context.Context, employeeID, id string, status approval.Status) (leave.LeaveRequest, error) {
	update := bson.M{"$set": bson.M{
		"approval_status": string(status),
		"updated_at":      time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc leaveRequestDocument
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "employee_id": employeeID}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, database.Unavailable("update leave status", err)
	}
	return doc.toEntity(), nil
}
