package service

import (
	"context"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-storefront/internal/contact/model"
	"trading-storefront/internal/logger"
	appErrors "trading-storefront/pkg/errors"
)

func TestMain(m *testing.M) {
	if err := logger.Init("development"); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// mockContactRepository is a map-backed in-memory implementation of Repository.
type mockContactRepository struct {
	messages map[uuid.UUID]*model.ContactMessage
}

func newMockContactRepository() *mockContactRepository {
	return &mockContactRepository{messages: make(map[uuid.UUID]*model.ContactMessage)}
}

func (r *mockContactRepository) Create(ctx context.Context, message *model.ContactMessage) error {
	message.ID = uuid.New()
	message.CreatedAt = time.Now()
	message.UpdatedAt = time.Now()
	if message.Status == "" {
		message.Status = model.StatusNew
	}
	stored := *message
	r.messages[message.ID] = &stored
	return nil
}

func (r *mockContactRepository) GetByID(ctx context.Context, messageID uuid.UUID) (*model.ContactMessage, error) {
	message, ok := r.messages[messageID]
	if !ok {
		return nil, appErrors.ErrMessageNotFound
	}
	copied := *message
	return &copied, nil
}

func (r *mockContactRepository) List(ctx context.Context, filter *model.MessageFilter) ([]*model.ContactMessage, int64, error) {
	var matched []*model.ContactMessage
	for _, message := range r.messages {
		if filter.Status != nil && message.Status != *filter.Status {
			continue
		}
		matched = append(matched, message)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *mockContactRepository) UpdateStatus(ctx context.Context, messageID uuid.UUID, status model.Status) error {
	message, ok := r.messages[messageID]
	if !ok {
		return appErrors.ErrMessageNotFound
	}
	message.Status = status
	message.UpdatedAt = time.Now()
	return nil
}

func (r *mockContactRepository) Update(ctx context.Context, message *model.ContactMessage) error {
	stored, ok := r.messages[message.ID]
	if !ok {
		return appErrors.ErrMessageNotFound
	}
	stored.Status = message.Status
	stored.ResponseMessage = message.ResponseMessage
	stored.RespondedAt = message.RespondedAt
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *mockContactRepository) Delete(ctx context.Context, messageID uuid.UUID) error {
	if _, ok := r.messages[messageID]; !ok {
		return appErrors.ErrMessageNotFound
	}
	delete(r.messages, messageID)
	return nil
}

func submitRequest() *model.SubmitMessageRequest {
	return &model.SubmitMessageRequest{
		Name:    "Jamie Doe",
		Email:   "jamie@example.com",
		Subject: "Bulk order inquiry",
		Message: "We would like a quote for 500 units.",
	}
}

func TestSubmitMessageStartsAsNew(t *testing.T) {
	svc := NewService(newMockContactRepository())

	message, err := svc.SubmitMessage(context.Background(), submitRequest())
	require.NoError(t, err)

	assert.Equal(t, model.StatusNew, message.Status)
	assert.NotEqual(t, uuid.Nil, message.ID)
	assert.False(t, message.CreatedAt.IsZero())
	assert.Nil(t, message.RespondedAt)
}

func TestSubmitMessageBodyTooLong(t *testing.T) {
	svc := NewService(newMockContactRepository())

	request := submitRequest()
	request.Message = strings.Repeat("x", 2001)

	_, err := svc.SubmitMessage(context.Background(), request)
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestSubmitMessageMissingFields(t *testing.T) {
	svc := NewService(newMockContactRepository())

	_, err := svc.SubmitMessage(context.Background(), &model.SubmitMessageRequest{})
	require.Error(t, err)

	// Every violated field reported at once.
	assert.Contains(t, err.Error(), "Name")
	assert.Contains(t, err.Error(), "Email")
	assert.Contains(t, err.Error(), "Subject")
	assert.Contains(t, err.Error(), "Message")
}

func TestGetMessageMarksReadOnce(t *testing.T) {
	repo := newMockContactRepository()
	svc := NewService(repo)

	created, err := svc.SubmitMessage(context.Background(), submitRequest())
	require.NoError(t, err)

	first, err := svc.GetMessage(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRead, first.Status)

	// Re-fetching an already-read message is a no-op.
	second, err := svc.GetMessage(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRead, second.Status)
}

func TestGetMessageNotFound(t *testing.T) {
	svc := NewService(newMockContactRepository())

	_, err := svc.GetMessage(context.Background(), uuid.New())
	assert.ErrorIs(t, err, appErrors.ErrMessageNotFound)
}

func TestUpdateMessageRecordsResponse(t *testing.T) {
	repo := newMockContactRepository()
	svc := NewService(repo)

	created, err := svc.SubmitMessage(context.Background(), submitRequest())
	require.NoError(t, err)

	response := "Thanks for reaching out, quote attached."
	updated, err := svc.UpdateMessage(context.Background(), created.ID, &model.UpdateMessageRequest{
		Status:          "replied",
		ResponseMessage: &response,
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusReplied, updated.Status)
	require.NotNil(t, updated.ResponseMessage)
	assert.Equal(t, response, *updated.ResponseMessage)
	require.NotNil(t, updated.RespondedAt)
}

func TestUpdateMessageWithoutResponseKeepsPrevious(t *testing.T) {
	repo := newMockContactRepository()
	svc := NewService(repo)

	created, err := svc.SubmitMessage(context.Background(), submitRequest())
	require.NoError(t, err)

	response := "Initial reply"
	_, err = svc.UpdateMessage(context.Background(), created.ID, &model.UpdateMessageRequest{
		Status:          "replied",
		ResponseMessage: &response,
	})
	require.NoError(t, err)

	// Status-only update must not clear the recorded response.
	updated, err := svc.UpdateMessage(context.Background(), created.ID, &model.UpdateMessageRequest{
		Status: "archived",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusArchived, updated.Status)
	require.NotNil(t, updated.ResponseMessage)
	assert.Equal(t, response, *updated.ResponseMessage)
	assert.NotNil(t, updated.RespondedAt)
}

func TestUpdateMessageBackwardTransitionAllowed(t *testing.T) {
	repo := newMockContactRepository()
	svc := NewService(repo)

	created, err := svc.SubmitMessage(context.Background(), submitRequest())
	require.NoError(t, err)

	_, err = svc.UpdateMessage(context.Background(), created.ID, &model.UpdateMessageRequest{Status: "archived"})
	require.NoError(t, err)

	updated, err := svc.UpdateMessage(context.Background(), created.ID, &model.UpdateMessageRequest{Status: "new"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusNew, updated.Status)
}

func TestUpdateMessageInvalidStatus(t *testing.T) {
	repo := newMockContactRepository()
	svc := NewService(repo)

	created, err := svc.SubmitMessage(context.Background(), submitRequest())
	require.NoError(t, err)

	_, err = svc.UpdateMessage(context.Background(), created.ID, &model.UpdateMessageRequest{Status: "pending"})
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestUpdateMessageNotFound(t *testing.T) {
	svc := NewService(newMockContactRepository())

	_, err := svc.UpdateMessage(context.Background(), uuid.New(), &model.UpdateMessageRequest{Status: "read"})
	assert.ErrorIs(t, err, appErrors.ErrMessageNotFound)
}

func TestDeleteMessageTwice(t *testing.T) {
	repo := newMockContactRepository()
	svc := NewService(repo)

	created, err := svc.SubmitMessage(context.Background(), submitRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMessage(context.Background(), created.ID))

	err = svc.DeleteMessage(context.Background(), created.ID)
	assert.ErrorIs(t, err, appErrors.ErrMessageNotFound)
}

func TestListMessagesFilterAndPagination(t *testing.T) {
	repo := newMockContactRepository()
	svc := NewService(repo)

	for i := 0; i < 3; i++ {
		_, err := svc.SubmitMessage(context.Background(), submitRequest())
		require.NoError(t, err)
	}

	// Mark one message read.
	var firstID uuid.UUID
	for id := range repo.messages {
		firstID = id
		break
	}
	_, err := svc.GetMessage(context.Background(), firstID)
	require.NoError(t, err)

	result, err := svc.ListMessages(context.Background(), &model.ListMessagesRequest{Status: "new"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	assert.Len(t, result.Messages, 2)

	paged, err := svc.ListMessages(context.Background(), &model.ListMessagesRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), paged.Total)
	assert.Len(t, paged.Messages, 1)
	assert.Equal(t, 2, paged.Page)
}

func TestListMessagesDefaults(t *testing.T) {
	svc := NewService(newMockContactRepository())

	result, err := svc.ListMessages(context.Background(), &model.ListMessagesRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 10, result.Limit)
}

func TestListMessagesInvalidStatusFilter(t *testing.T) {
	svc := NewService(newMockContactRepository())

	_, err := svc.ListMessages(context.Background(), &model.ListMessagesRequest{Status: "spam"})
	assert.Error(t, err)
}
