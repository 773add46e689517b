package handlers

import (
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/careernest/backend/internal/models"
	"github.com/careernest/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ConnectionHandler handles connection requests, the follow graph and
// people-you-may-know suggestions
type ConnectionHandler struct {
	connectionRepository   repositories.ConnectionRepository
	followRepository       repositories.FollowRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewConnectionHandler creates a new ConnectionHandler
func NewConnectionHandler(connRepo repositories.ConnectionRepository, followRepo repositories.FollowRepository, userRepo repositories.UserRepository, notifRepo repositories.NotificationRepository) *ConnectionHandler {
	return &ConnectionHandler{
		connectionRepository:   connRepo,
		followRepository:       followRepo,
		userRepository:         userRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterConnectionRoutes registers connection-related routes
func (h *ConnectionHandler) RegisterConnectionRoutes(g *echo.Group) {
	g.GET("", h.MyConnections)
	g.POST("/request/:id", h.SendRequest)
	g.PUT("/accept/:id", h.AcceptRequest)
	g.PUT("/reject/:id", h.RejectRequest)
	g.PUT("/withdraw/:id", h.WithdrawRequest)
	g.DELETE("/remove/:userId", h.RemoveConnection)
	g.GET("/requests/received", h.ReceivedRequests)
	g.GET("/requests/sent", h.SentRequests)
	g.GET("/suggestions", h.Suggestions)
	g.GET("/mutual/:userId", h.MutualConnections)
	g.POST("/follow/:id", h.ToggleFollow)
	g.GET("/followers/:userId", h.Followers)
	g.GET("/following/:userId", h.Following)
	g.GET("/status/:userId", h.ConnectionStatus)
	g.PUT("/note/:connectionId", h.UpdateNote)
}

func (h *ConnectionHandler) notify(c echo.Context, n *models.Notification) {
	if err := h.notificationRepository.Create(c.Request().Context(), n); err != nil {
		log.Printf("notification write failed: %v", err)
	}
}

// SendRequest creates a pending connection request to another user
func (h *ConnectionHandler) SendRequest(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	recipientID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	if recipientID == userID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot connect to yourself")
	}

	var req models.ConnectionRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	if _, err := h.userRepository.GetByID(ctx, recipientID); err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	existing, err := h.connectionRepository.FindActiveBetween(ctx, userID, recipientID)
	if err != nil && err != mongo.ErrNoDocuments {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if existing != nil {
		if existing.Status == models.ConnectionAccepted {
			return echo.NewHTTPError(http.StatusBadRequest, "Already connected")
		}
		return echo.NewHTTPError(http.StatusBadRequest, "Connection request already pending")
	}

	conn := &models.Connection{
		Requester:      userID,
		Recipient:      recipientID,
		Status:         models.ConnectionPending,
		Note:           req.Note,
		ConnectionType: req.ConnectionType,
	}
	if err := h.connectionRepository.Create(ctx, conn); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if sender, err := h.userRepository.GetByID(ctx, userID); err == nil {
		h.notify(c, &models.Notification{
			Recipient:         recipientID,
			Sender:            userID,
			Type:              models.NotificationConnectionRequest,
			Message:           fmt.Sprintf("%s sent you a connection request", sender.Username),
			RelatedConnection: conn.ID,
		})
	}

	return c.JSON(http.StatusOK, conn)
}

// AcceptRequest accepts a pending request addressed to the caller and links
// both users' connection lists
func (h *ConnectionHandler) AcceptRequest(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	connID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	conn, err := h.connectionRepository.GetByID(ctx, connID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Request not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if conn.Recipient != userID {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized")
	}
	if conn.Status != models.ConnectionPending {
		return echo.NewHTTPError(http.StatusBadRequest, "Request is no longer pending")
	}

	now := time.Now()
	conn.Status = models.ConnectionAccepted
	conn.AcceptedAt = &now
	if err := h.connectionRepository.Save(ctx, conn); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.userRepository.AddConnection(ctx, conn.Requester, conn.Recipient); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.userRepository.AddConnection(ctx, conn.Recipient, conn.Requester); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if accepter, err := h.userRepository.GetByID(ctx, userID); err == nil {
		h.notify(c, &models.Notification{
			Recipient:         conn.Requester,
			Sender:            userID,
			Type:              models.NotificationConnectionAccepted,
			Message:           fmt.Sprintf("%s accepted your connection request", accepter.Username),
			RelatedConnection: conn.ID,
		})
	}

	return c.JSON(http.StatusOK, conn)
}

// RejectRequest rejects a pending request addressed to the caller
func (h *ConnectionHandler) RejectRequest(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	connID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	conn, err := h.connectionRepository.GetByID(ctx, connID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Request not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if conn.Recipient != userID {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized")
	}
	if conn.Status != models.ConnectionPending {
		return echo.NewHTTPError(http.StatusBadRequest, "Request is no longer pending")
	}

	conn.Status = models.ConnectionRejected
	if err := h.connectionRepository.Save(ctx, conn); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Request rejected"})
}

// WithdrawRequest lets the requester take back a still-pending request
func (h *ConnectionHandler) WithdrawRequest(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	connID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	conn, err := h.connectionRepository.GetByID(ctx, connID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Request not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if conn.Requester != userID {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized")
	}
	if conn.Status != models.ConnectionPending {
		return echo.NewHTTPError(http.StatusBadRequest, "Request is no longer pending")
	}

	conn.Status = models.ConnectionWithdrawn
	if err := h.connectionRepository.Save(ctx, conn); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Request withdrawn"})
}

// RemoveConnection severs an accepted connection from either side
func (h *ConnectionHandler) RemoveConnection(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	otherID, err := pathObjectID(c, "userId")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	if _, err := h.connectionRepository.DeleteAcceptedBetween(ctx, userID, otherID); err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Connection not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.userRepository.PullConnection(ctx, userID, otherID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.userRepository.PullConnection(ctx, otherID, userID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"msg": "Connection removed"})
}

// MyConnections lists the caller's connections, with optional name search
// and sorting
func (h *ConnectionHandler) MyConnections(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	currentUser, err := h.userRepository.GetByID(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found")
	}

	connections, err := h.userRepository.FindByIDs(ctx, currentUser.Connections)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if search := strings.ToLower(c.QueryParam("search")); search != "" {
		filtered := connections[:0]
		for _, u := range connections {
			if strings.Contains(strings.ToLower(u.Username), search) ||
				strings.Contains(strings.ToLower(u.Headline), search) {
				filtered = append(filtered, u)
			}
		}
		connections = filtered
	}

	if c.QueryParam("sort") == "name" {
		sort.SliceStable(connections, func(i, j int) bool {
			return strings.ToLower(connections[i].Username) < strings.ToLower(connections[j].Username)
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"connections": connections,
		"total":       len(connections),
	})
}

// ReceivedRequests lists pending requests addressed to the caller, with the
// requester profile and mutual connection count attached
func (h *ConnectionHandler) ReceivedRequests(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	currentUser, err := h.userRepository.GetByID(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found")
	}

	pending, err := h.connectionRepository.FindPendingByRecipient(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	requests := []echo.Map{}
	for _, conn := range pending {
		requester, err := h.userRepository.GetByID(ctx, conn.Requester)
		if err != nil {
			continue
		}
		requests = append(requests, echo.Map{
			"connection":         conn,
			"requester":          requester,
			"mutual_connections": len(intersectIDs(currentUser.Connections, requester.Connections)),
		})
	}
	return c.JSON(http.StatusOK, requests)
}

// SentRequests lists pending requests the caller has sent
func (h *ConnectionHandler) SentRequests(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	pending, err := h.connectionRepository.FindPendingByRequester(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	requests := []echo.Map{}
	for _, conn := range pending {
		recipient, err := h.userRepository.GetByID(ctx, conn.Recipient)
		if err != nil {
			continue
		}
		requests = append(requests, echo.Map{
			"connection": conn,
			"recipient":  recipient,
		})
	}
	return c.JSON(http.StatusOK, requests)
}

// suggestionScore rates a candidate for the caller: 3 points per shared
// skill (case-insensitive), 5 when the candidate's education contains the
// caller's, 4 per mutual connection
func suggestionScore(current, candidate *models.User) (int, []string, int) {
	score := 0

	skills := make(map[string]bool, len(current.Skills))
	for _, s := range current.Skills {
		skills[strings.ToLower(s)] = true
	}
	shared := []string{}
	for _, s := range candidate.Skills {
		if skills[strings.ToLower(s)] {
			shared = append(shared, s)
			score += 3
		}
	}

	myEdu := strings.ToLower(current.Education)
	theirEdu := strings.ToLower(candidate.Education)
	if myEdu != "" && strings.Contains(theirEdu, myEdu) {
		score += 5
	}

	mutual := len(intersectIDs(current.Connections, candidate.Connections))
	score += 4 * mutual

	return score, shared, mutual
}

// suggestionExclude collects the caller, their accepted connections and both
// endpoints of every pending or accepted edge, so nobody with an open request
// shows up as a suggestion
func suggestionExclude(userID primitive.ObjectID, connections []primitive.ObjectID, edges []models.Connection) []primitive.ObjectID {
	seen := map[primitive.ObjectID]bool{userID: true}
	exclude := []primitive.ObjectID{userID}
	add := func(id primitive.ObjectID) {
		if !seen[id] {
			seen[id] = true
			exclude = append(exclude, id)
		}
	}
	for _, id := range connections {
		add(id)
	}
	for _, edge := range edges {
		add(edge.Requester)
		add(edge.Recipient)
	}
	return exclude
}

// Suggestions scores up to 50 unconnected candidates and returns the top 20
func (h *ConnectionHandler) Suggestions(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	currentUser, err := h.userRepository.GetByID(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found")
	}

	edges, err := h.connectionRepository.FindActiveInvolving(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	exclude := suggestionExclude(userID, currentUser.Connections, edges)
	candidates, err := h.userRepository.FindCandidatesExcluding(ctx, exclude, 50)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	type scored struct {
		user   models.User
		score  int
		shared []string
		mutual int
	}
	ranked := make([]scored, 0, len(candidates))
	for i := range candidates {
		score, shared, mutual := suggestionScore(currentUser, &candidates[i])
		ranked = append(ranked, scored{candidates[i], score, shared, mutual})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > 20 {
		ranked = ranked[:20]
	}

	suggestions := []echo.Map{}
	for _, s := range ranked {
		suggestions = append(suggestions, echo.Map{
			"user":                     s.user,
			"score":                    s.score,
			"shared_skills":            s.shared,
			"mutual_connections_count": s.mutual,
		})
	}
	return c.JSON(http.StatusOK, suggestions)
}

// MutualConnections returns the users both the caller and the target are
// connected to
func (h *ConnectionHandler) MutualConnections(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	otherID, err := pathObjectID(c, "userId")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	currentUser, err := h.userRepository.GetByID(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found")
	}
	other, err := h.userRepository.GetByID(ctx, otherID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	mutualIDs := intersectIDs(currentUser.Connections, other.Connections)
	mutual, err := h.userRepository.FindByIDs(ctx, mutualIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"mutual": mutual, "count": len(mutual)})
}

// ToggleFollow follows the target if not followed, unfollows otherwise
func (h *ConnectionHandler) ToggleFollow(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	targetID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	if targetID == userID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	ctx := c.Request().Context()

	if _, err := h.userRepository.GetByID(ctx, targetID); err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	existing, err := h.followRepository.Get(ctx, userID, targetID)
	if err != nil && err != mongo.ErrNoDocuments {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if existing != nil {
		if err := h.followRepository.Delete(ctx, existing.ID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, echo.Map{"following": false})
	}

	follow := &models.Follow{Follower: userID, Following: targetID}
	if err := h.followRepository.Create(ctx, follow); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if follower, err := h.userRepository.GetByID(ctx, userID); err == nil {
		h.notify(c, &models.Notification{
			Recipient: targetID,
			Sender:    userID,
			Type:      models.NotificationFollow,
			Message:   fmt.Sprintf("%s started following you", follower.Username),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"following": true})
}

// Followers lists the users following the target
func (h *ConnectionHandler) Followers(c echo.Context) error {
	targetID, err := pathObjectID(c, "userId")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	follows, err := h.followRepository.FindByFollowing(ctx, targetID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	ids := make([]primitive.ObjectID, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, f.Follower)
	}
	users, err := h.userRepository.FindByIDs(ctx, ids)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"followers": users, "count": len(users)})
}

// Following lists the users the target follows
func (h *ConnectionHandler) Following(c echo.Context) error {
	targetID, err := pathObjectID(c, "userId")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	follows, err := h.followRepository.FindByFollower(ctx, targetID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	ids := make([]primitive.ObjectID, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, f.Following)
	}
	users, err := h.userRepository.FindByIDs(ctx, ids)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"following": users, "count": len(users)})
}

// ConnectionStatus reports the edge between the caller and the target:
// none, pending_sent, pending_received or accepted
func (h *ConnectionHandler) ConnectionStatus(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	otherID, err := pathObjectID(c, "userId")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	conn, err := h.connectionRepository.FindActiveBetween(ctx, userID, otherID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusOK, echo.Map{"status": "none"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	status := "accepted"
	if conn.Status == models.ConnectionPending {
		if conn.Requester == userID {
			status = "pending_sent"
		} else {
			status = "pending_received"
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"status": status, "connection_id": conn.ID})
}

// UpdateNote sets the caller's private note on a connection they are part of
func (h *ConnectionHandler) UpdateNote(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	connID, err := pathObjectID(c, "connectionId")
	if err != nil {
		return err
	}

	var req models.ConnectionNoteBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	conn, err := h.connectionRepository.GetByID(ctx, connID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Connection not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	switch userID {
	case conn.Requester:
		conn.RequesterNote = req.Note
	case conn.Recipient:
		conn.RecipientNote = req.Note
	default:
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized")
	}

	if err := h.connectionRepository.Save(ctx, conn); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, conn)
}
