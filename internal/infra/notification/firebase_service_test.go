package notification

import (
	"context"
	"strconv"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	multicast *messaging.MulticastMessage
	single    *messaging.Message
	response  *messaging.BatchResponse
	err       error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.single = message

	return "projects/p/messages/1", f.err
}

func (f *fakeMessagingClient) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.multicast = message

	return f.response, f.err
}

func TestFirebaseService_SendBatchNotification(t *testing.T) {
	client := &fakeMessagingClient{response: &messaging.BatchResponse{
		SuccessCount: 1,
		FailureCount: 1,
		Responses: []*messaging.SendResponse{
			{Success: true, MessageID: "m1"},
			{Error: errors.New("deadline exceeded")},
		},
	}}
	svc := &firebaseService{client: client}
	data := map[string]string{"event_type": "submission.created"}

	sent, failed, invalid, err := svc.SendBatchNotification(context.Background(), []string{"t1", "t2"}, "Nuevo negocio", "Panadería", data)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, failed)
	assert.Empty(t, invalid)
	assert.Equal(t, "Nuevo negocio", client.multicast.Notification.Title)
	assert.Equal(t, data, client.multicast.Data)
}

func TestFirebaseService_SendBatchNotification_Limits(t *testing.T) {
	svc := &firebaseService{client: &fakeMessagingClient{}}

	sent, failed, invalid, err := svc.SendBatchNotification(context.Background(), nil, "t", "b", nil)
	require.NoError(t, err)
	assert.Zero(t, sent+failed)
	assert.Nil(t, invalid)

	tokens := make([]string, maxMulticastTokens+1)
	for i := range tokens {
		tokens[i] = "token-" + strconv.Itoa(i)
	}
	_, _, _, err = svc.SendBatchNotification(context.Background(), tokens, "t", "b", nil)
	require.Error(t, err)
}

func TestFirebaseService_SendSingleNotification(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := &firebaseService{client: client}

	require.NoError(t, svc.SendSingleNotification(context.Background(), "t1", "Nueva consulta", "¿Horario?", nil))
	assert.Equal(t, "t1", client.single.Token)

	client.err = errors.New("unavailable")
	require.Error(t, svc.SendSingleNotification(context.Background(), "t1", "x", "y", nil))
}
