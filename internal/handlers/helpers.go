package handlers

import (
	"net/http"

	"github.com/careernest/backend/internal/middleware"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// actorID returns the authenticated user's id placed on the context by the
// auth middleware
func actorID(c echo.Context) (primitive.ObjectID, error) {
	hex, _ := c.Get(middleware.ContextUserIDKey).(string)
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	return id, nil
}

// pathObjectID parses a hex ObjectID path parameter
func pathObjectID(c echo.Context, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		return primitive.NilObjectID, echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
	}
	return id, nil
}

// intersectIDs returns the members of a that also appear in b
func intersectIDs(a, b []primitive.ObjectID) []primitive.ObjectID {
	set := make(map[primitive.ObjectID]bool, len(b))
	for _, id := range b {
		set[id] = true
	}
	var out []primitive.ObjectID
	for _, id := range a {
		if set[id] {
			out = append(out, id)
		}
	}
	return out
}
