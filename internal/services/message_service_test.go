package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skydraw_backend/internal/models"
	"skydraw_backend/internal/repositories"
	"skydraw_backend/internal/services/dto"
	"skydraw_backend/pkg/apperrors"
)

func newMessageServiceForTest(t *testing.T, db *gorm.DB) MessageService {
	t.Helper()
	return NewMessageService(
		repositories.NewMessageRepository(db),
		repositories.NewUserRepository(db),
	)
}

func TestSendMessage(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "Alice", models.UserRoleCustomer)
	bob := createTestUser(t, db, "Bob", models.UserRoleArtist)
	svc := newMessageServiceForTest(t, db)

	view, err := svc.Send(alice.ID, &dto.SendMessageRequest{
		ReceiverID: bob.ID,
		Message:    "Hi, is the commission slot still open?",
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, view.SenderID)
	assert.Equal(t, bob.ID, view.ReceiverID)
	assert.Equal(t, "Hi, is the commission slot still open?", view.Message)
}

func TestSendMessageToSelfRejected(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "Alice", models.UserRoleCustomer)
	svc := newMessageServiceForTest(t, db)

	_, err := svc.Send(alice.ID, &dto.SendMessageRequest{
		ReceiverID: alice.ID,
		Message:    "Note to self",
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestSendMessageToUnknownReceiverIs404(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "Alice", models.UserRoleCustomer)
	svc := newMessageServiceForTest(t, db)

	_, err := svc.Send(alice.ID, &dto.SendMessageRequest{
		ReceiverID: "11111111-1111-1111-1111-111111111111",
		Message:    "Anyone there?",
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestListBetweenReturnsBothDirections(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "Alice", models.UserRoleCustomer)
	bob := createTestUser(t, db, "Bob", models.UserRoleArtist)
	carol := createTestUser(t, db, "Carol", models.UserRoleCustomer)
	svc := newMessageServiceForTest(t, db)

	_, err := svc.Send(alice.ID, &dto.SendMessageRequest{ReceiverID: bob.ID, Message: "Hello Bob"})
	require.NoError(t, err)
	_, err = svc.Send(bob.ID, &dto.SendMessageRequest{ReceiverID: alice.ID, Message: "Hello Alice"})
	require.NoError(t, err)
	_, err = svc.Send(carol.ID, &dto.SendMessageRequest{ReceiverID: bob.ID, Message: "Unrelated"})
	require.NoError(t, err)

	messages, err := svc.ListBetween(alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Hello Bob", messages[0].Message)
	assert.Equal(t, "Hello Alice", messages[1].Message)
	assert.Equal(t, "Alice", messages[0].SenderName)
	assert.Equal(t, "Bob", messages[1].SenderName)
}

func TestConversationsGroupPerCounterpart(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "Alice", models.UserRoleCustomer)
	bob := createTestUser(t, db, "Bob", models.UserRoleArtist)
	carol := createTestUser(t, db, "Carol", models.UserRoleArtist)
	svc := newMessageServiceForTest(t, db)

	_, err := svc.Send(alice.ID, &dto.SendMessageRequest{ReceiverID: bob.ID, Message: "First to Bob"})
	require.NoError(t, err)
	_, err = svc.Send(bob.ID, &dto.SendMessageRequest{ReceiverID: alice.ID, Message: "Reply from Bob"})
	require.NoError(t, err)
	_, err = svc.Send(alice.ID, &dto.SendMessageRequest{ReceiverID: carol.ID, Message: "Hi Carol"})
	require.NoError(t, err)

	conversations, err := svc.Conversations(alice.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	byName := map[string]dto.ConversationView{}
	for _, conv := range conversations {
		byName[conv.OtherUserName] = conv
	}
	assert.Equal(t, "Reply from Bob", byName["Bob"].LastMessage)
	assert.Equal(t, "Hi Carol", byName["Carol"].LastMessage)
}
