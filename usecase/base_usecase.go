package usecase

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidID = errors.New("invalid id")

// ParseObjectID 校验并解析十六进制 ObjectID
func ParseObjectID(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, fmt.Errorf("%w: id cannot be empty", ErrInvalidID)
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id format %q", ErrInvalidID, id)
	}
	if objID.IsZero() {
		return primitive.NilObjectID, fmt.Errorf("%w: zero id %q", ErrInvalidID, id)
	}

	return objID, nil
}
