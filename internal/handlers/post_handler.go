package handlers

import (
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/careernest/backend/internal/models"
	"github.com/careernest/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	hashtagPattern = regexp.MustCompile(`#(\w+)`)
	mentionPattern = regexp.MustCompile(`@(\w+)`)
)

// extractHashtags pulls lowercased, deduplicated hashtags out of content
func extractHashtags(content string) []string {
	seen := make(map[string]bool)
	tags := []string{}
	for _, m := range hashtagPattern.FindAllStringSubmatch(content, -1) {
		tag := strings.ToLower(m[1])
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}

// extractMentions pulls @usernames out of content, in order of appearance
func extractMentions(content string) []string {
	var names []string
	for _, m := range mentionPattern.FindAllStringSubmatch(content, -1) {
		names = append(names, m[1])
	}
	return names
}

// PostHandler handles HTTP requests related to posts, the social feed and
// everything embedded in a post (reactions, comments, polls, bookmarks)
type PostHandler struct {
	postRepository         repositories.PostRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository, notifRepo repositories.NotificationRepository) *PostHandler {
	return &PostHandler{
		postRepository:         postRepo,
		userRepository:         userRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("", h.CreatePost)
	g.GET("", h.GetFeed)
	g.GET("/trending/hashtags", h.TrendingHashtags)
	g.GET("/saved/bookmarks", h.GetBookmarkedPosts)
	g.GET("/user/:userId", h.GetUserPosts)
	g.GET("/:id", h.GetPost)
	g.PUT("/:id", h.EditPost)
	g.DELETE("/:id", h.DeletePost)
	g.PUT("/react/:id", h.React)
	g.PUT("/like/:id", h.ToggleLike)
	g.POST("/comment/:id", h.AddComment)
	g.DELETE("/comment/:postId/:commentId", h.DeleteComment)
	g.PUT("/comment/like/:postId/:commentId", h.ToggleCommentLike)
	g.POST("/comment/reply/:postId/:commentId", h.AddReply)
	g.POST("/share/:id", h.SharePost)
	g.PUT("/bookmark/:id", h.Bookmark)
	g.PUT("/poll/vote/:postId/:optionIndex", h.VotePoll)
}

// notify writes a notification as a fire-and-forget side effect; a failed
// write never fails the triggering request
func (h *PostHandler) notify(c echo.Context, n *models.Notification) {
	if err := h.notificationRepository.Create(c.Request().Context(), n); err != nil {
		log.Printf("notification write failed: %v", err)
	}
}

// CreatePost creates a post, extracting hashtags and resolving @mentions
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	actor, err := h.userRepository.GetByID(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found")
	}

	postType := models.PostType(req.PostType)
	if req.PostType == "" {
		postType = models.PostTypeText
	}
	visibility := models.Visibility(req.Visibility)
	if req.Visibility == "" {
		visibility = models.VisibilityPublic
	}

	// Resolve @mentions to user ids
	mentionIDs := []primitive.ObjectID{}
	if names := extractMentions(req.Content); len(names) > 0 {
		mentioned, err := h.userRepository.FindByUsernamesCI(ctx, names)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		for _, u := range mentioned {
			mentionIDs = append(mentionIDs, u.ID)
		}
	}

	poll := req.Poll
	for i := range poll.Options {
		poll.Options[i].ID = primitive.NewObjectID()
		poll.Options[i].Votes = []primitive.ObjectID{}
	}

	post := &models.Post{
		User:       userID,
		PostType:   postType,
		Content:    req.Content,
		Media:      req.Media,
		Article:    req.Article,
		Poll:       poll,
		Visibility: visibility,
		Reactions:  emptyReactions(),
		Likes:      []primitive.ObjectID{},
		Comments:   []models.Comment{},
		Shares:     []primitive.ObjectID{},
		Hashtags:   extractHashtags(req.Content),
		Mentions:   mentionIDs,
		Bookmarks:  []primitive.ObjectID{},
	}

	if err := h.postRepository.Create(ctx, post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	for _, mentionID := range mentionIDs {
		if mentionID != userID {
			h.notify(c, &models.Notification{
				Recipient:   mentionID,
				Sender:      userID,
				Type:        models.NotificationPostMention,
				Message:     fmt.Sprintf("%s mentioned you in a post", actor.Username),
				RelatedPost: post.ID,
			})
		}
	}

	return c.JSON(http.StatusOK, post)
}

func emptyReactions() models.Reactions {
	return models.Reactions{
		Like:       []primitive.ObjectID{},
		Celebrate:  []primitive.ObjectID{},
		Support:    []primitive.ObjectID{},
		Love:       []primitive.ObjectID{},
		Insightful: []primitive.ObjectID{},
		Funny:      []primitive.ObjectID{},
	}
}

// GetFeed returns the paginated feed: public posts, connections-only posts
// from the caller's connections, and the caller's own posts
func (h *PostHandler) GetFeed(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	page, _ := strconv.ParseInt(c.QueryParam("page"), 10, 64)
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit == 0 {
		limit = 20
	}

	ctx := c.Request().Context()

	currentUser, err := h.userRepository.GetByID(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found")
	}

	filter := bson.M{}
	if hashtag := c.QueryParam("hashtag"); hashtag != "" {
		filter["hashtags"] = strings.ToLower(hashtag)
	}
	if postType := c.QueryParam("type"); postType != "" && postType != "all" {
		filter["post_type"] = postType
	}

	visibleFrom := append(append([]primitive.ObjectID{}, currentUser.Connections...), userID)
	filter["$or"] = bson.A{
		bson.M{"visibility": models.VisibilityPublic},
		bson.M{"visibility": models.VisibilityConnections, "user": bson.M{"$in": visibleFrom}},
		bson.M{"user": userID},
	}

	posts, err := h.postRepository.Find(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	total, err := h.postRepository.Count(ctx, filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts": posts,
		"pagination": echo.Map{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": pages,
		},
	})
}

// GetPost retrieves a single post
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetByID(c.Request().Context(), postID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, post)
}

// EditPost updates content/visibility of the caller's own post, keeping an
// edit history of prior content
func (h *PostHandler) EditPost(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	postID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req models.EditPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	post, err := h.postRepository.GetByID(ctx, postID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post.User != userID {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized")
	}

	post.EditHistory = append(post.EditHistory, models.EditRecord{Content: post.Content, EditedAt: time.Now()})
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.Visibility != "" {
		post.Visibility = models.Visibility(req.Visibility)
	}
	post.Hashtags = extractHashtags(post.Content)
	post.IsEdited = true

	if err := h.postRepository.Save(ctx, post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes the caller's own post
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	postID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	post, err := h.postRepository.GetByID(ctx, postID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if post.User != userID {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized")
	}

	if err := h.postRepository.Delete(ctx, postID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Post removed"})
}

// React applies a single-choice reaction. A user holds at most one reaction
// per post; repeating the same reaction removes it. Every reaction kind
// notifies the post owner as post_like.
func (h *PostHandler) React(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	postID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req models.ReactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	reactionType := models.ReactionType(req.ReactionType)
	if !reactionType.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid reaction type")
	}

	ctx := c.Request().Context()

	post, err := h.postRepository.GetByID(ctx, postID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	added := post.ApplyReaction(userID, reactionType)

	if err := h.postRepository.Save(ctx, post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if added && post.User != userID {
		if sender, err := h.userRepository.GetByID(ctx, userID); err == nil {
			h.notify(c, &models.Notification{
				Recipient:   post.User,
				Sender:      userID,
				Type:        models.NotificationPostLike,
				Message:     fmt.Sprintf("%s reacted to your post with %s", sender.Username, reactionType),
				RelatedPost: post.ID,
			})
		}
	}

	return c.JSON(http.StatusOK, post.Reactions)
}

// ToggleLike is the legacy like toggle, mirrored into reactions.like
func (h *PostHandler) ToggleLike(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	postID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	post, err := h.postRepository.GetByID(ctx, postID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	post.ToggleLike(userID)

	if err := h.postRepository.Save(ctx, post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, post.Likes)
}

// AddComment prepends a comment and notifies the post owner
func (h *PostHandler) AddComment(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	postID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req models.CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	post, err := h.postRepository.GetByID(ctx, postID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	post.AddComment(userID, req.Text)

	if err := h.postRepository.Save(ctx, post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.User != userID {
		if sender, err := h.userRepository.GetByID(ctx, userID); err == nil {
			h.notify(c, &models.Notification{
				Recipient:   post.User,
				Sender:      userID,
				Type:        models.NotificationPostComment,
				Message:     fmt.Sprintf("%s commented on your post", sender.Username),
				RelatedPost: post.ID,
			})
		}
	}

	return c.JSON(http.StatusOK, post.Comments)
}

// DeleteComment removes a comment; allowed for the comment author or the
// post owner
func (h *PostHandler) DeleteComment(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	postID, err := pathObjectID(c, "postId")
	if err != nil {
		return err
	}
	commentID, err := pathObjectID(c, "commentId")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	post, err := h.postRepository.GetByID(ctx, postID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comment := post.Comment(commentID)
	if comment == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}
	if comment.User != userID && post.User != userID {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized")
	}

	post.DeleteComment(commentID)

	if err := h.postRepository.Save(ctx, post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, post.Comments)
}

// ToggleCommentLike flips the caller's like on a comment. Comment likes do
// not notify anyone.
func (h *PostHandler) ToggleCommentLike(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	postID, err := pathObjectID(c, "postId")
	if err != nil {
		return err
	}
	commentID, err := pathObjectID(c, "commentId")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	post, err := h.postRepository.GetByID(ctx, postID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comment := post.Comment(commentID)
	if comment == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}

	comment.ToggleLike(userID)

	if err := h.postRepository.Save(ctx, post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, comment)
}

// AddReply appends a reply to a comment and notifies the comment author
func (h *PostHandler) AddReply(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	postID, err := pathObjectID(c, "postId")
	if err != nil {
		return err
	}
	commentID, err := pathObjectID(c, "commentId")
	if err != nil {
		return err
	}

	var req models.CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	post, err := h.postRepository.GetByID(ctx, postID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comment := post.Comment(commentID)
	if comment == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}

	comment.AddReply(userID, req.Text)

	if err := h.postRepository.Save(ctx, post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if comment.User != userID {
		if sender, err := h.userRepository.GetByID(ctx, userID); err == nil {
			h.notify(c, &models.Notification{
				Recipient:   comment.User,
				Sender:      userID,
				Type:        models.NotificationCommentReply,
				Message:     fmt.Sprintf("%s replied to your comment", sender.Username),
				RelatedPost: post.ID,
			})
		}
	}

	return c.JSON(http.StatusOK, post.Comments)
}

// SharePost records the share on the original (idempotent) and always
// creates a fresh repost document referencing it
func (h *PostHandler) SharePost(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	postID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req models.ShareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	ctx := c.Request().Context()

	original, err := h.postRepository.GetByID(ctx, postID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	original.RecordShare(userID)
	if err := h.postRepository.Save(ctx, original); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	visibility := models.Visibility(req.Visibility)
	if req.Visibility == "" {
		visibility = models.VisibilityPublic
	}

	repost := &models.Post{
		User:          userID,
		PostType:      models.PostTypeRepost,
		Content:       req.Comment,
		RepostComment: req.Comment,
		OriginalPost:  original.ID,
		Visibility:    visibility,
		Reactions:     emptyReactions(),
		Likes:         []primitive.ObjectID{},
		Comments:      []models.Comment{},
		Shares:        []primitive.ObjectID{},
		Hashtags:      []string{},
		Mentions:      []primitive.ObjectID{},
		Bookmarks:     []primitive.ObjectID{},
	}

	if err := h.postRepository.Create(ctx, repost); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if original.User != userID {
		if sender, err := h.userRepository.GetByID(ctx, userID); err == nil {
			h.notify(c, &models.Notification{
				Recipient:   original.User,
				Sender:      userID,
				Type:        models.NotificationPostShare,
				Message:     fmt.Sprintf("%s shared your post", sender.Username),
				RelatedPost: original.ID,
			})
		}
	}

	return c.JSON(http.StatusOK, repost)
}

// Bookmark toggles the caller's bookmark on a post
func (h *PostHandler) Bookmark(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	postID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	post, err := h.postRepository.GetByID(ctx, postID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	bookmarked := post.ToggleBookmark(userID)

	if err := h.postRepository.Save(ctx, post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"bookmarked": bookmarked, "count": len(post.Bookmarks)})
}

// GetBookmarkedPosts lists the posts the caller has bookmarked
func (h *PostHandler) GetBookmarkedPosts(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	posts, err := h.postRepository.FindBookmarked(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// VotePoll applies a poll vote per the single/multiple-choice rules
func (h *PostHandler) VotePoll(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	postID, err := pathObjectID(c, "postId")
	if err != nil {
		return err
	}
	optionIdx, err := strconv.Atoi(c.Param("optionIndex"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid option")
	}

	ctx := c.Request().Context()

	post, err := h.postRepository.GetByID(ctx, postID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	switch err := post.Vote(optionIdx, userID, time.Now()); err {
	case nil:
	case models.ErrNotPoll:
		return echo.NewHTTPError(http.StatusBadRequest, "Not a poll post")
	case models.ErrPollEnded:
		return echo.NewHTTPError(http.StatusBadRequest, "Poll has ended")
	case models.ErrInvalidOption:
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid option")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.postRepository.Save(ctx, post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, post.Poll)
}

// TrendingHashtags returns the ten most used hashtags of the last week
func (h *PostHandler) TrendingHashtags(c echo.Context) error {
	since := time.Now().Add(-7 * 24 * time.Hour)
	trending, err := h.postRepository.TrendingHashtags(c.Request().Context(), since, 10)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, trending)
}

// GetUserPosts lists one user's posts, newest first
func (h *PostHandler) GetUserPosts(c echo.Context) error {
	targetID, err := pathObjectID(c, "userId")
	if err != nil {
		return err
	}

	posts, err := h.postRepository.FindByUser(c.Request().Context(), targetID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}
