package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dbadapter "tasktracker/internal/adapter/db"
	"tasktracker/internal/adapter/db/dbtest"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

type RepositorySuite struct {
	suite.Suite

	repo     *dbadapter.Repository
	ctx      context.Context
	alice    domain.User
	bob      domain.User
	backend  domain.Category
	baseTime time.Time
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	db := dbtest.NewSQLite(s.T())
	s.repo = dbadapter.NewRepository(db)
	s.ctx = context.Background()
	s.alice = dbtest.CreateUser(s.T(), db, "alice")
	s.bob = dbtest.CreateUser(s.T(), db, "bob")
	s.backend = dbtest.CreateCategory(s.T(), db, "Backend")
	s.baseTime = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
}

func (s *RepositorySuite) insertTask(title string, offset time.Duration, mutate func(*domain.Task)) domain.Task {
	created := s.baseTime.Add(offset)
	task := domain.Task{
		Title:       title,
		Description: title + " description",
		Status:      domain.TaskStatusPending,
		Priority:    domain.TaskPriorityMedium,
		AssignedTo:  s.bob,
		AssignedBy:  s.alice,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	if mutate != nil {
		mutate(&task)
	}

	id, err := s.repo.CreateTask(s.ctx, task)
	s.Require().NoError(err)
	stored, err := s.repo.GetTask(s.ctx, id)
	s.Require().NoError(err)
	return stored
}

func (s *RepositorySuite) TestCreateAndGetTask_RoundTripsAllFields() {
	due := s.baseTime.Add(72 * time.Hour)
	task := s.insertTask("Rotate keys", 0, func(task *domain.Task) {
		task.Category = &s.backend
		task.Priority = domain.TaskPriorityUrgent
		task.DueDate = &due
	})

	s.Equal("Rotate keys", task.Title)
	s.Equal(domain.TaskStatusPending, task.Status)
	s.Equal(domain.TaskPriorityUrgent, task.Priority)
	s.Equal(s.bob.Username, task.AssignedTo.Username)
	s.Equal(s.alice.Username, task.AssignedBy.Username)
	s.Require().NotNil(task.Category)
	s.Equal("Backend", task.Category.Name)
	s.Require().NotNil(task.DueDate)
	s.True(due.Equal(*task.DueDate))
	s.Nil(task.StartTime)
	s.Nil(task.TimeTaken)
	s.False(task.IsTemplate)
}

func (s *RepositorySuite) TestGetTask_NotFound() {
	_, err := s.repo.GetTask(s.ctx, 404)
	s.Require().ErrorIs(err, domain.ErrTaskNotFound)
}

func (s *RepositorySuite) TestUpdateTask_PersistsLifecycleFields() {
	task := s.insertTask("Deploy", 0, nil)

	start := s.baseTime.Add(time.Hour)
	end := start.Add(90*time.Minute + 250*time.Microsecond)
	s.Require().NoError(task.Accept(start))
	s.Require().NoError(task.Complete(end))
	s.Require().NoError(s.repo.UpdateTask(s.ctx, task))

	stored, err := s.repo.GetTask(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Equal(domain.TaskStatusCompleted, stored.Status)
	s.Require().NotNil(stored.TimeTaken)
	s.Equal(stored.EndTime.Sub(*stored.StartTime), *stored.TimeTaken)
}

func (s *RepositorySuite) TestUpdateTask_UnknownTask() {
	err := s.repo.UpdateTask(s.ctx, domain.Task{ID: 999, Status: domain.TaskStatusPending, Priority: domain.TaskPriorityLow})
	s.Require().ErrorIs(err, domain.ErrTaskNotFound)
}

func (s *RepositorySuite) TestSearchTasks_StatusFilterNewestFirstWithoutTemplates() {
	older := s.insertTask("Older", 0, func(task *domain.Task) { task.Status = domain.TaskStatusCompleted })
	newer := s.insertTask("Newer", time.Hour, func(task *domain.Task) { task.Status = domain.TaskStatusCompleted })
	s.insertTask("Pending", 2*time.Hour, nil)
	s.insertTask("Template", 3*time.Hour, func(task *domain.Task) {
		task.Status = domain.TaskStatusCompleted
		task.IsTemplate = true
	})

	status := domain.TaskStatusCompleted
	tasks, err := s.repo.SearchTasks(s.ctx, domain.TaskFilter{Status: &status})
	s.Require().NoError(err)
	s.Require().Len(tasks, 2)
	s.Equal(newer.ID, tasks[0].ID)
	s.Equal(older.ID, tasks[1].ID)
}

func (s *RepositorySuite) TestSearchTasks_TextMatchesAnyField() {
	byTitle := s.insertTask("Ping ALICE about logs", 0, func(task *domain.Task) { task.AssignedBy = s.bob })
	byDescription := s.insertTask("Plain", time.Hour, func(task *domain.Task) {
		task.AssignedBy = s.bob
		task.Description = "ask Alice for access"
	})
	byAssigner := s.insertTask("Other", 2*time.Hour, nil)
	byAssignee := s.insertTask("Assigned to alice", 3*time.Hour, func(task *domain.Task) {
		task.Title = "Nothing here"
		task.AssignedTo = s.alice
		task.AssignedBy = s.bob
	})
	s.insertTask("Unrelated", 4*time.Hour, func(task *domain.Task) { task.AssignedBy = s.bob })
	s.insertTask("alice template", 5*time.Hour, func(task *domain.Task) { task.IsTemplate = true })

	tasks, err := s.repo.SearchTasks(s.ctx, domain.TaskFilter{Query: "alice"})
	s.Require().NoError(err)

	var ids []uint64
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	s.Equal([]uint64{byAssignee.ID, byAssigner.ID, byDescription.ID, byTitle.ID}, ids)

	meeting := s.insertTask("Réunion ÉQUIPE", 6*time.Hour, func(task *domain.Task) { task.AssignedBy = s.bob })

	tasks, err = s.repo.SearchTasks(s.ctx, domain.TaskFilter{Query: "équipe"})
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Equal(meeting.ID, tasks[0].ID)
}

func (s *RepositorySuite) TestSearchTasks_CombinedFiltersAndEmptyResult() {
	s.insertTask("Backend urgent", 0, func(task *domain.Task) {
		task.Category = &s.backend
		task.Priority = domain.TaskPriorityUrgent
	})
	s.insertTask("Backend low", time.Hour, func(task *domain.Task) {
		task.Category = &s.backend
		task.Priority = domain.TaskPriorityLow
	})

	priority := domain.TaskPriorityUrgent
	tasks, err := s.repo.SearchTasks(s.ctx, domain.TaskFilter{CategoryID: &s.backend.ID, Priority: &priority})
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Equal("Backend urgent", tasks[0].Title)

	tasks, err = s.repo.SearchTasks(s.ctx, domain.TaskFilter{Query: "no such task"})
	s.Require().NoError(err)
	s.NotNil(tasks)
	s.Empty(tasks)
}

func (s *RepositorySuite) TestHistory_AppendAndListNewestFirst() {
	task := s.insertTask("Audit", 0, nil)

	_, err := s.repo.AppendHistory(s.ctx, domain.HistoryEntry{
		TaskID:    task.ID,
		User:      s.alice,
		Action:    domain.HistoryActionCreate,
		Details:   domain.HistoryDetails{"title": "Audit"},
		CreatedAt: s.baseTime,
	})
	s.Require().NoError(err)
	_, err = s.repo.AppendHistory(s.ctx, domain.HistoryEntry{
		TaskID:    task.ID,
		User:      s.bob,
		Action:    domain.HistoryActionStatusChange,
		Details:   domain.StatusChangeDetails(domain.TaskStatusPending, domain.TaskStatusInProgress),
		CreatedAt: s.baseTime.Add(time.Minute),
	})
	s.Require().NoError(err)

	entries, err := s.repo.ListHistory(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal(domain.HistoryActionStatusChange, entries[0].Action)
	s.Equal("bob", entries[0].User.Username)
	s.Equal("pending", entries[0].Details["old"])
	s.Equal("in_progress", entries[0].Details["new"])
	s.Equal(domain.HistoryActionCreate, entries[1].Action)
}

func (s *RepositorySuite) TestDeleteCategory_NullsTaskReference() {
	task := s.insertTask("Categorised", 0, func(task *domain.Task) { task.Category = &s.backend })

	s.Require().NoError(s.repo.DeleteCategory(s.ctx, s.backend.ID))

	stored, err := s.repo.GetTask(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Nil(stored.Category)

	s.Require().ErrorIs(s.repo.DeleteCategory(s.ctx, s.backend.ID), domain.ErrCategoryNotFound)
}

func (s *RepositorySuite) TestComments_ThreadedReplies() {
	task := s.insertTask("Discuss", 0, nil)

	rootID, err := s.repo.CreateComment(s.ctx, domain.Comment{TaskID: task.ID, Author: s.alice, Content: "Any blockers?", CreatedAt: s.baseTime})
	s.Require().NoError(err)
	_, err = s.repo.CreateComment(s.ctx, domain.Comment{TaskID: task.ID, Author: s.bob, Content: "None", ParentID: &rootID, CreatedAt: s.baseTime.Add(time.Minute)})
	s.Require().NoError(err)

	comments, err := s.repo.ListComments(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Require().Len(comments, 2)
	s.Nil(comments[0].ParentID)
	s.Require().NotNil(comments[1].ParentID)
	s.Equal(rootID, *comments[1].ParentID)
	s.Equal("bob", comments[1].Author.Username)

	_, err = s.repo.GetComment(s.ctx, 12345)
	s.ErrorIs(err, domain.ErrCommentNotFound)
}

func (s *RepositorySuite) TestNotifications_ListAndMarkRead() {
	task := s.insertTask("Notify", 0, nil)

	id, err := s.repo.CreateNotification(s.ctx, domain.Notification{TaskID: task.ID, UserID: s.bob.ID, Message: "hello", CreatedAt: s.baseTime})
	s.Require().NoError(err)

	unread, err := s.repo.ListNotifications(s.ctx, s.bob.ID, true)
	s.Require().NoError(err)
	s.Require().Len(unread, 1)
	s.False(unread[0].IsRead)

	s.Require().ErrorIs(s.repo.MarkNotificationRead(s.ctx, s.alice.ID, id), domain.ErrNotificationNotFound)
	s.Require().NoError(s.repo.MarkNotificationRead(s.ctx, s.bob.ID, id))

	unread, err = s.repo.ListNotifications(s.ctx, s.bob.ID, true)
	s.Require().NoError(err)
	s.Empty(unread)

	all, err := s.repo.ListNotifications(s.ctx, s.bob.ID, false)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.True(all[0].IsRead)
}

func (s *RepositorySuite) TestCountTasksByStatus() {
	s.insertTask("A", 0, nil)
	s.insertTask("B", time.Hour, func(task *domain.Task) { task.Status = domain.TaskStatusCompleted })
	s.insertTask("C", 2*time.Hour, func(task *domain.Task) { task.AssignedTo = s.alice })
	s.insertTask("T", 3*time.Hour, func(task *domain.Task) { task.IsTemplate = true })

	mine, err := s.repo.CountTasksByStatus(s.ctx, &s.bob.ID)
	s.Require().NoError(err)
	s.Equal(1, mine[domain.TaskStatusPending])
	s.Equal(1, mine[domain.TaskStatusCompleted])
	s.Equal(0, mine[domain.TaskStatusRejected])

	global, err := s.repo.CountTasksByStatus(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(2, global[domain.TaskStatusPending])
	s.Len(global, 4)
}

func (s *RepositorySuite) TestWithinTx_RollsBackOnError() {
	task := s.insertTask("Atomic", 0, nil)
	boom := errors.New("boom")

	err := s.repo.WithinTx(s.ctx, func(ctx context.Context, store ports.Store) error {
		task.Status = domain.TaskStatusRejected
		s.Require().NoError(store.UpdateTask(ctx, task))
		return boom
	})
	s.Require().ErrorIs(err, boom)

	stored, err := s.repo.GetTask(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Equal(domain.TaskStatusPending, stored.Status)
}

func TestRepository_ClosedDatabaseIsStorageUnavailable(t *testing.T) {
	db := dbtest.NewSQLite(t)
	repo := dbadapter.NewRepository(db)
	require.NoError(t, db.Close())

	_, err := repo.SearchTasks(context.Background(), domain.TaskFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
