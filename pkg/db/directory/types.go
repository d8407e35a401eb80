package directory

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	DisplayName  string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	DepartmentID string             `bson:"departmentID,omitempty" json:"departmentId,omitempty"`
	ManagerID    string             `bson:"managerID,omitempty" json:"managerId,omitempty"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
}

type Department struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
