package directory

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (dbService *DirectoryDBService) GetUserByID(tenantID string, userID string) (user User, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return user, err
	}

	err = dbService.collectionUsers(tenantID).FindOne(ctx, bson.M{"_id": _id}).Decode(&user)
	return user, err
}

func (dbService *DirectoryDBService) GetDepartments(tenantID string) (departments []Department, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	cursor, err := dbService.collectionDepartments(tenantID).Find(ctx, bson.M{})
	if err != nil {
		return departments, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &departments)
	return departments, err
}

func (dbService *DirectoryDBService) GetUsersOfDepartment(tenantID string, departmentID string) (users []User, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"departmentID": departmentID,
	}

	cursor, err := dbService.collectionUsers(tenantID).Find(ctx, filter)
	if err != nil {
		return users, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &users)
	return users, err
}

func (dbService *DirectoryDBService) GetManagedUsers(tenantID string, managerID string) (users []User, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"managerID": managerID,
	}

	cursor, err := dbService.collectionUsers(tenantID).Find(ctx, filter)
	if err != nil {
		return users, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &users)
	return users, err
}
