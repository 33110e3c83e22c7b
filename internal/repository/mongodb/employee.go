package mongodb

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emptrack/emptrack-backend-go/internal/domain/approval"
	"github.com/emptrack/emptrack-backend-go/internal/domain/employee"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
)

// Call logs and messages are embedded in the employee document, mirroring
// how the device uploads them under its employee record.
type employeeDocument struct {
	ID              string            `bson:"_id"`
	EmployeeID      string            `bson:"employee_id"`
	Name            string            `bson:"name"`
	MobileNumber    string            `bson:"mobile_number"`
	AlternateMobile *string           `bson:"alternate_mobile,omitempty"`
	Email           *string           `bson:"email,omitempty"`
	Branch          *string           `bson:"branch,omitempty"`
	Designation     *string           `bson:"designation,omitempty"`
	Gender          *string           `bson:"gender,omitempty"`
	DateOfBirth     *time.Time        `bson:"date_of_birth,omitempty"`
	JoiningDate     *time.Time        `bson:"joining_date,omitempty"`
	Salary          *float64          `bson:"salary,omitempty"`
	Address         *string           `bson:"address,omitempty"`
	ApprovalStatus  string            `bson:"approval_status"`
	CallLogs        []callLogDocument `bson:"call_logs"`
	Messages        []messageDocument `bson:"messages"`
	CreatedAt       time.Time         `bson:"created_at"`
	UpdatedAt       time.Time         `bson:"updated_at"`
}

type callLogDocument struct {
	ID          string    `bson:"_id"`
	Type        string    `bson:"type"`
	Name        string    `bson:"name"`
	PhoneNumber string    `bson:"phone_number"`
	Duration    int       `bson:"duration"`
	DateTime    time.Time `bson:"date_time"`
	Timestamp   time.Time `bson:"timestamp"`
}

type messageDocument struct {
	ID            string    `bson:"_id"`
	Type          string    `bson:"type"`
	Body          string    `bson:"body"`
	Name          string    `bson:"name"`
	Address       string    `bson:"address"`
	ServiceCenter string    `bson:"service_center"`
	Date          time.Time `bson:"date"`
}

func (d employeeDocument) toEntity() employee.Employee {
	e := employee.Employee{
		ID:              d.ID,
		EmployeeID:      d.EmployeeID,
		Name:            d.Name,
		MobileNumber:    d.MobileNumber,
		AlternateMobile: d.AlternateMobile,
		Email:           d.Email,
		Branch:          d.Branch,
		Designation:     d.Designation,
		DateOfBirth:     d.DateOfBirth,
		JoiningDate:     d.JoiningDate,
		Salary:          d.Salary,
		Address:         d.Address,
		ApprovalStatus:  approval.Status(d.ApprovalStatus),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
	if d.Gender != nil {
		g := employee.Gender(*d.Gender)
		e.Gender = &g
	}
	return e
}

// withoutChildren keeps the embedded arrays out of header reads.
var withoutChildren = bson.M{"call_logs": 0, "messages": 0}

type employeeRepositoryImpl struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(db *database.MongoDB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{collection: db.Collection(database.EmployeeCollection)}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	now := time.Now().UTC()
	status := newEmployee.ApprovalStatus
	if status == "" {
		status = approval.Initial()
	}

	doc := employeeDocument{
		ID:              newID(),
		EmployeeID:      newEmployee.EmployeeID,
		Name:            newEmployee.Name,
		MobileNumber:    newEmployee.MobileNumber,
		AlternateMobile: newEmployee.AlternateMobile,
		Email:           newEmployee.Email,
		Branch:          newEmployee.Branch,
		Designation:     newEmployee.Designation,
		DateOfBirth:     newEmployee.DateOfBirth,
		JoiningDate:     newEmployee.JoiningDate,
		Salary:          newEmployee.Salary,
		Address:         newEmployee.Address,
		ApprovalStatus:  string(status),
		CallLogs:        []callLogDocument{},
		Messages:        []messageDocument{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if newEmployee.Gender != nil {
		g := string(*newEmployee.Gender)
		doc.Gender = &g
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, database.Unavailable("create employee", err)
	}
	return doc.toEntity(), nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	var doc employeeDocument
	opts := options.FindOne().SetProjection(withoutChildren)
	err := r.collection.FindOne(ctx, bson.M{"employee_id": employeeID}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, database.Unavailable("get employee", err)
	}
	return doc.toEntity(), nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	query := bson.M{}
	if filter.Search != "" {
		pattern := containsInsensitive(filter.Search)
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"employee_id": pattern},
			bson.M{"mobile_number": pattern},
		}
	}
	if filter.Status != nil && *filter.Status != "" {
		query["approval_status"] = *filter.Status
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, database.Unavailable("count employees", err)
	}

	opts := options.Find().
		SetProjection(withoutChildren).
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, database.Unavailable("list employees", err)
	}
	defer cursor.Close(ctx)

	var docs []employeeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, database.Unavailable("decode employees", err)
	}

	employees := make([]employee.Employee, 0, len(docs))
	for _, d := range docs {
		employees = append(employees, d.toEntity())
	}
	return employees, total, nil
}

// UpdateApprovalStatus implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateApprovalStatus(ctx context.Context, employeeID string, status approval.Status) (employee.Employee, error) {
	update := bson.M{"$set": bson.M{
		"approval_status": string(status),
		"updated_at":      time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(withoutChildren)

	var doc employeeDocument
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"employee_id": employeeID}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, database.Unavailable("update employee status", err)
	}
	return doc.toEntity(), nil
}

// CountCallLogs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountCallLogs(ctx context.Context, employeeID string) (int64, error) {
	return r.countEmbedded(ctx, employeeID, "call_logs")
}

// CountMessages implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountMessages(ctx context.Context, employeeID string) (int64, error) {
	return r.countEmbedded(ctx, employeeID, "messages")
}

func (r *employeeRepositoryImpl) countEmbedded(ctx context.Context, employeeID, field string) (int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "employee_id", Value: employeeID}}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "count", Value: bson.D{{Key: "$size", Value: bson.D{
				{Key: "$ifNull", Value: bson.A{"$" + field, bson.A{}}},
			}}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, database.Unavailable("count "+field, err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, database.Unavailable("decode "+field+" count", err)
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Count, nil
}

// ListCallLogs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListCallLogs(ctx context.Context, employeeID string) ([]employee.CallLog, error) {
	doc, err := r.children(ctx, employeeID, "call_logs")
	if err != nil {
		return nil, err
	}

	logs := make([]employee.CallLog, 0, len(doc.CallLogs))
	for _, l := range doc.CallLogs {
		logs = append(logs, employee.CallLog{
			ID:          l.ID,
			Type:        l.Type,
			Name:        l.Name,
			PhoneNumber: l.PhoneNumber,
			Duration:    l.Duration,
			DateTime:    l.DateTime,
			Timestamp:   l.Timestamp,
		})
	}
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].DateTime.After(logs[j].DateTime) })
	return logs, nil
}

// ListMessages implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListMessages(ctx context.Context, employeeID string) ([]employee.Message, error) {
	doc, err := r.children(ctx, employeeID, "messages")
	if err != nil {
		return nil, err
	}

	msgs := make([]employee.Message, 0, len(doc.Messages))
	for _, m := range doc.Messages {
		msgs = append(msgs, employee.Message{
			ID:            m.ID,
			Type:          m.Type,
			Body:          m.Body,
			Name:          m.Name,
			Address:       m.Address,
			ServiceCenter: m.ServiceCenter,
			Date:          m.Date,
		})
	}
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].Date.After(msgs[j].Date) })
	return msgs, nil
}

// children loads one embedded array. An unknown employee yields an empty document.
func (r *employeeRepositoryImpl) children(ctx context.Context, employeeID, field string) (employeeDocument, error) {
	var doc employeeDocument
	opts := options.FindOne().SetProjection(bson.M{field: 1})
	err := r.collection.FindOne(ctx, bson.M{"employee_id": employeeID}, opts).Decode(&doc)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return employeeDocument{}, database.Unavailable("list "+field, err)
	}
	return doc, nil
}

// AddCallLogs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) AddCallLogs(ctx context.Context, employeeID string, logs []employee.CallLog) error {
	docs := make([]callLogDocument, 0, len(logs))
	now := time.Now().UTC()
	for _, l := range logs {
		doc := callLogDocument{
			ID:          l.ID,
			Type:        l.Type,
			Name:        l.Name,
			PhoneNumber: l.PhoneNumber,
			Duration:    l.Duration,
			DateTime:    l.DateTime,
			Timestamp:   l.Timestamp,
		}
		if doc.ID == "" {
			doc.ID = newID()
		}
		if doc.Timestamp.IsZero() {
			doc.Timestamp = now
		}
		docs = append(docs, doc)
	}
	return r.push(ctx, employeeID, "call_logs", docs)
}

// AddMessages implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) AddMessages(ctx context.Context, employeeID string, msgs []employee.Message) error {
	docs := make([]messageDocument, 0, len(msgs))
	for _, m := range msgs {
		doc := messageDocument{
			ID:            m.ID,
			Type:          m.Type,
			Body:          m.Body,
			Name:          m.Name,
			Address:       m.Address,
			ServiceCenter: m.ServiceCenter,
			Date:          m.Date,
		}
		if doc.ID == "" {
			doc.ID = newID()
		}
		docs = append(docs, doc)
	}
	return r.push(ctx, employeeID, "messages", docs)
}

func (r *employeeRepositoryImpl) push(ctx context.Context, employeeID, field string, items interface{}) error {
	update := bson.M{"$push": bson.M{field: bson.M{"$each": items}}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"employee_id": employeeID}, update)
	if err != nil {
		return database.Unavailable("add "+field, err)
	}
	if result.MatchedCount == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// DeleteCallLog implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DeleteCallLog(ctx context.Context, employeeID, callLogID string) error {
	return r.pull(ctx, employeeID, "call_logs", callLogID, employee.ErrCallLogNotFound)
}

// DeleteMessage implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DeleteMessage(ctx context.Context, employeeID, messageID string) error {
	return r.pull(ctx, employeeID, "messages", messageID, employee.ErrMessageNotFound)
}

func (r *employeeRepositoryImpl) pull(ctx context.Context, employeeID, field, id string, notFound error) error {
	filter := bson.M{"employee_id": employeeID, field + "._id": id}
	update := bson.M{"$pull": bson.M{field: bson.M{"_id": id}}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return database.Unavailable("delete from "+field, err)
	}
	if result.MatchedCount == 0 {
		return notFound
	}
	return nil
}

// DeleteAllCallLogs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DeleteAllCallLogs(ctx context.Context, employeeID string) (int64, error) {
	before, err := r.clear(ctx, employeeID, "call_logs")
	if err != nil {
		return 0, err
	}
	return int64(len(before.CallLogs)), nil
}

// DeleteAllMessages implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DeleteAllMessages(ctx context.Context, employeeID string) (int64, error) {
	before, err := r.clear(ctx, employeeID, "messages")
	if err != nil {
		return 0, err
	}
	return int64(len(before.Messages)), nil
}

// clear empties an embedded array and returns the document as it was.
func (r *employeeRepositoryImpl) clear(ctx context.Context, employeeID, field string) (employeeDocument, error) {
	update := bson.M{"$set": bson.M{field: bson.A{}}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.Before).
		SetProjection(bson.M{field: 1})

	var before employeeDocument
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"employee_id": employeeID}, update, opts).Decode(&before)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employeeDocument{}, employee.ErrEmployeeNotFound
		}
		return employeeDocument{}, database.Unavailable("clear "+field, err)
	}
	return before, nil
}
