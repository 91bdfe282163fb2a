package services

import (
	"context"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"

	"academy/models"
	"academy/remote"
	"academy/store"
	"academy/utils"
)

// CommentService syncs per-lesson comment partitions and runs the
// moderation state machine: pending -> approved, or pending -> rejected
// where rejection hard-deletes the record.
type CommentService struct {
	cache   store.Store
	backend remote.Backend
	logger  *log.Logger
}

func NewCommentService(cache store.Store, backend remote.Backend, logger *log.Logger) *CommentService {
	return &CommentService{cache: cache, backend: backend, logger: logger}
}

// ListForLesson returns the lesson's comments filtered by the moderation
// visibility rule for the given viewer.
func (s *CommentService) ListForLesson(ctx context.Context, lessonID, viewerID string, role models.Role) []models.Comment {
	comments := s.syncLesson(ctx, lessonID)

	visible := make([]models.Comment, 0, len(comments))
	for _, comment := range comments {
		if comment.VisibleTo(viewerID, role) {
			visible = append(visible, comment)
		}
	}
	return visible
}

// All returns every comment in every status. Callers gate this behind a
// privileged role; it backs the moderation queue.
func (s *CommentService) All(ctx context.Context) []models.Comment {
	var fetched []models.Comment
	err := callRemote(ctx, commentTimeout, func(ctx context.Context) error {
		var err error
		fetched, err = s.backend.ListAllComments(ctx)
		return err
	})
	if err == nil {
		s.refreshPartitions(fetched)
		return fetched
	}

	if swallowed(err) {
		s.logger.Printf("comment fetch failed, serving cached partitions: %v", err)
	}
	var all []models.Comment
	lessons, _ := store.GetJSON[[]string](s.cache, store.KeyCommentIndex)
	for _, lessonID := range lessons {
		cached, _ := store.GetJSON[[]models.Comment](s.cache, store.CommentsKey(lessonID))
		all = append(all, cached...)
	}
	return all
}

// Add creates a comment in pending state. Privileged authors are trusted
// and publish directly as approved.
func (s *CommentService) Add(ctx context.Context, author models.Profile, lessonID, text string) (models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return models.Comment{}, ErrTextRequired
	}

	status := models.CommentPending
	if author.Role.AtLeast(models.RoleModerator) {
		status = models.CommentApproved
	}

	comment := models.Comment{
		ID:         utils.NewEntityID("comment"),
		LessonID:   lessonID,
		UserID:     author.ID,
		UserName:   author.Name,
		UserAvatar: author.Avatar,
		Text:       text,
		Timestamp:  time.Now().UTC(),
		Status:     status,
		LikedBy:    datatypes.JSONSlice[string]{},
	}

	if err := s.storeComment(comment); err != nil {
		return models.Comment{}, err
	}
	s.pushComment(ctx, comment)
	return comment, nil
}

// SetStatus applies a moderation decision. Approval is only reachable from
// pending; rejection removes the comment from both tiers.
func (s *CommentService) SetStatus(ctx context.Context, lessonID, commentID string, status models.CommentStatus) (models.Comment, error) {
	comments := s.syncLesson(ctx, lessonID)
	idx := -1
	for i := range comments {
		if comments[i].ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Comment{}, ErrNotFound
	}

	switch status {
	case models.CommentApproved:
		if comments[idx].Status != models.CommentPending {
			return models.Comment{}, ErrNotPending
		}
		comments[idx].Status = models.CommentApproved
		if err := store.SetJSON(s.cache, store.CommentsKey(lessonID), comments); err != nil {
			return models.Comment{}, err
		}
		s.pushComment(ctx, comments[idx])
		return comments[idx], nil

	case models.CommentRejected:
		rejected := comments[idx]
		remaining := removeByID(comments, commentID, func(c models.Comment) string { return c.ID })
		if err := store.SetJSON(s.cache, store.CommentsKey(lessonID), remaining); err != nil {
			return models.Comment{}, err
		}
		if err := callRemote(ctx, commentTimeout, func(ctx context.Context) error {
			return s.backend.DeleteComment(ctx, commentID)
		}); swallowed(err) {
			s.logger.Printf("rejected comment %s removed locally, remote delete failed: %v", commentID, err)
		}
		rejected.Status = models.CommentRejected
		return rejected, nil

	default:
		return models.Comment{}, ErrNotPending
	}
}

// ToggleLike adds or removes the viewer from the comment's liker set.
func (s *CommentService) ToggleLike(ctx context.Context, lessonID, commentID, userID string) (models.Comment, error) {
	comments := s.syncLesson(ctx, lessonID)
	for i := range comments {
		if comments[i].ID != commentID {
			continue
		}

		liked := false
		for _, id := range comments[i].LikedBy {
			if id == userID {
				liked = true
				break
			}
		}
		if liked {
			comments[i].LikedBy = datatypes.JSONSlice[string](
				removeByID(comments[i].LikedBy, userID, func(id string) string { return id }))
			comments[i].Likes--
		} else {
			comments[i].LikedBy = append(comments[i].LikedBy, userID)
			comments[i].Likes++
		}

		if err := store.SetJSON(s.cache, store.CommentsKey(lessonID), comments); err != nil {
			return models.Comment{}, err
		}
		s.pushComment(ctx, comments[i])
		return comments[i], nil
	}
	return models.Comment{}, ErrNotFound
}

// syncLesson refreshes one partition from the remote tier, falling back to
// the cached partition.
func (s *CommentService) syncLesson(ctx context.Context, lessonID string) []models.Comment {
	var fetched []models.Comment
	err := callRemote(ctx, commentTimeout, func(ctx context.Context) error {
		var err error
		fetched, err = s.backend.ListComments(ctx, lessonID)
		return err
	})
	if err != nil {
		if swallowed(err) {
			s.logger.Printf("comment fetch for lesson %s failed, serving cache: %v", lessonID, err)
		}
		cached, _ := store.GetJSON[[]models.Comment](s.cache, store.CommentsKey(lessonID))
		return cached
	}

	if err := store.SetJSON(s.cache, store.CommentsKey(lessonID), fetched); err != nil {
		s.logger.Printf("comment cache refresh for lesson %s failed: %v", lessonID, err)
	}
	s.rememberLesson(lessonID)
	return fetched
}

func (s *CommentService) storeComment(comment models.Comment) error {
	key := store.CommentsKey(comment.LessonID)
	cached, _ := store.GetJSON[[]models.Comment](s.cache, key)
	cached = upsertByID(cached, comment, func(c models.Comment) string { return c.ID })
	if err := store.SetJSON(s.cache, key, cached); err != nil {
		return err
	}
	s.rememberLesson(comment.LessonID)
	return nil
}

func (s *CommentService) pushComment(ctx context.Context, comment models.Comment) {
	if err := callRemote(ctx, commentTimeout, func(ctx context.Context) error {
		return s.backend.UpsertComment(ctx, comment)
	}); swallowed(err) {
		s.logger.Printf("comment %s saved locally, remote upsert failed: %v", comment.ID, err)
	}
}

// rememberLesson tracks which partitions exist so All can aggregate them
// offline. Partition boundaries themselves are never crossed.
func (s *CommentService) rememberLesson(lessonID string) {
	lessons, _ := store.GetJSON[[]string](s.cache, store.KeyCommentIndex)
	for _, id := range lessons {
		if id == lessonID {
			return
		}
	}
	lessons = append(lessons, lessonID)
	if err := store.SetJSON(s.cache, store.KeyCommentIndex, lessons); err != nil {
		s.logger.Printf("comment index update failed: %v", err)
	}
}

func (s *CommentService) refreshPartitions(comments []models.Comment) {
	byLesson := make(map[string][]models.Comment)
	for _, comment := range comments {
		byLesson[comment.LessonID] = append(byLesson[comment.LessonID], comment)
	}
	lessons := make([]string, 0, len(byLesson))
	for lessonID, partition := range byLesson {
		lessons = append(lessons, lessonID)
		if err := store.SetJSON(s.cache, store.CommentsKey(lessonID), partition); err != nil {
			s.logger.Printf("comment cache refresh for lesson %s failed: %v", lessonID, err)
		}
	}
	if err := store.SetJSON(s.cache, store.KeyCommentIndex, lessons); err != nil {
		s.logger.Printf("comment index update failed: %v", err)
	}
}
