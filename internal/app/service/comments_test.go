package service_test

import (
	"time"

	"tasktracker/internal/core/domain"
)

func (s *TaskServiceSuite) TestAddComment_ThreadsRepliesAndNotifies() {
	task := s.createTask("Review PR")

	root, err := s.service.AddComment(s.ctx, domain.CreateCommentInput{TaskID: task.ID, AuthorID: s.carol.ID, Content: " Looks good "})
	s.Require().NoError(err)
	s.Equal("Looks good", root.Content)
	s.Equal("carol", root.Author.Username)

	s.advance(time.Minute)
	_, err = s.service.AddComment(s.ctx, domain.CreateCommentInput{TaskID: task.ID, AuthorID: s.bob.ID, Content: "Thanks", ParentID: &root.ID})
	s.Require().NoError(err)

	threads, err := s.service.ListComments(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Require().Len(threads, 1)
	s.Equal(root.ID, threads[0].ID)
	s.Require().Len(threads[0].Replies, 1)
	s.Equal("Thanks", threads[0].Replies[0].Content)

	aliceInbox, err := s.repo.ListNotifications(s.ctx, s.alice.ID, false)
	s.Require().NoError(err)
	s.Len(aliceInbox, 2)
	s.Equal(`bob commented on the task "Review PR"`, aliceInbox[0].Message)

	entries, err := s.service.ListHistory(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Equal(domain.HistoryActionComment, entries[0].Action)
}

func (s *TaskServiceSuite) TestAddComment_Errors() {
	task := s.createTask("First")
	other := s.createTask("Second")

	_, err := s.service.AddComment(s.ctx, domain.CreateCommentInput{TaskID: task.ID, AuthorID: s.bob.ID, Content: "   "})
	s.ErrorIs(err, domain.ErrInvalidInput)

	_, err = s.service.AddComment(s.ctx, domain.CreateCommentInput{TaskID: 999, AuthorID: s.bob.ID, Content: "hi"})
	s.ErrorIs(err, domain.ErrTaskNotFound)

	foreign, err := s.service.AddComment(s.ctx, domain.CreateCommentInput{TaskID: other.ID, AuthorID: s.bob.ID, Content: "elsewhere"})
	s.Require().NoError(err)
	_, err = s.service.AddComment(s.ctx, domain.CreateCommentInput{TaskID: task.ID, AuthorID: s.bob.ID, Content: "reply", ParentID: &foreign.ID})
	s.ErrorIs(err, domain.ErrInvalidInput)

	missing := uint64(999)
	_, err = s.service.AddComment(s.ctx, domain.CreateCommentInput{TaskID: task.ID, AuthorID: s.bob.ID, Content: "reply", ParentID: &missing})
	s.ErrorIs(err, domain.ErrCommentNotFound)
}
