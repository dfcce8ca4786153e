package main

import (
	"context"
	"fmt"

	"github.com/movu-app/movu/internal/shared"
	"github.com/urfave/cli/v3"
)

// CommentsList prints the global comment feed.
func (r *Runner) CommentsList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	comments, err := r.movu.Comments(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(comments, pretty)
	}

	r.writePlain("%d comments:\n\n", len(comments))
	for _, comment := range comments {
		r.writePlain("%s: %s\n", comment.User, comment.Text)
		r.writePlain("   ID: %s\n\n", comment.ID)
	}

	return nil
}

// CommentsAdd posts a comment. The author label defaults to the signed-in
// user's full name.
func (r *Runner) CommentsAdd(ctx context.Context, cmd *cli.Command) error {
	text := cmd.StringArg("text")
	author := cmd.String("as")

	if text == "" {
		return fmt.Errorf("%w: comment text is required", shared.ErrMissingArgument)
	}

	if author == "" {
		session, err := r.requireSession()
		if err != nil {
			return err
		}
		author = session.UserID
		if user, err := r.movu.User(ctx, session.UserID); err == nil && user != nil {
			author = user.FullName()
		}
	}

	r.logger.Infof("posting comment as %v", author)

	comment, err := r.movu.AddComment(ctx, author, text)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Comment posted\n")
	r.writePlain("  ID: %s\n", comment.ID)
	return nil
}

// CommentsDelete removes a comment by ID.
func (r *Runner) CommentsDelete(ctx context.Context, cmd *cli.Command) error {
	commentID := cmd.StringArg("comment-id")
	if commentID == "" {
		return fmt.Errorf("%w: a comment ID is required", shared.ErrMissingArgument)
	}

	r.logger.Infof("deleting comment %v", commentID)

	if err := r.movu.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Comment deleted\n")
	return nil
}
